package hasher

import (
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
)

// Sum 计算文件内容的 xxHash 哈希值
func Sum(fs afero.Fs, path string) (uint64, error) {
	file, err := fs.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		return 0, err
	}

	return hash.Sum64(), nil
}

// Equal 比较两个文件的内容哈希是否一致
func Equal(fs afero.Fs, a, b string) (bool, error) {
	ha, err := Sum(fs, a)
	if err != nil {
		return false, err
	}

	hb, err := Sum(fs, b)
	if err != nil {
		return false, err
	}

	return ha == hb, nil
}
