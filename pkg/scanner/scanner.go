package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ErrNotDirectory 目标路径不存在或不是目录
var ErrNotDirectory = errors.New("目标路径不存在或不是目录")

// FileEntry 目录中一个顶层普通文件及其扫描时刻的元数据快照
type FileEntry struct {
	Path string
	Name string

	info os.FileInfo
}

func NewFileEntry(path string, info os.FileInfo) FileEntry {
	return FileEntry{
		Path: path,
		Name: info.Name(),
		info: info,
	}
}

func (e *FileEntry) Size() int64 {
	return e.info.Size()
}

func (e *FileEntry) ModTime() time.Time {
	return e.info.ModTime().UTC()
}

// Created 返回文件创建时间
// 第二个返回值表示是否为平台提供的真实创建时间；
// 在不支持的平台上退回到元数据变更时间，属于已记录的不精确行为
func (e *FileEntry) Created() (time.Time, bool) {
	t, exact := creationTime(e.info)
	return t.UTC(), exact
}

// Ext 返回小写、去掉前导点的扩展名
func (e *FileEntry) Ext() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name), "."))
}

type Scanner struct {
	fs  afero.Fs
	log zerolog.Logger
}

func New(fs afero.Fs, log zerolog.Logger) *Scanner {
	return &Scanner{fs: fs, log: log}
}

// Scan 列出目录中的顶层普通文件，不递归、不跟随符号链接。
// 目录不存在、不是目录或无权限读取都是致命错误，由调用方终止运行。
func (s *Scanner) Scan(dir string) ([]FileEntry, error) {
	info, err := s.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return nil, fmt.Errorf("访问目录失败 %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录失败 %s: %w", dir, err)
	}

	files := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			s.log.Debug().Str("name", entry.Name()).Msg("跳过非普通文件")
			continue
		}
		files = append(files, NewFileEntry(filepath.Join(dir, entry.Name()), entry))
	}

	if !birthTimeExact && len(files) > 0 {
		s.log.Debug().Msg("当前平台不提供文件创建时间，使用元数据变更时间代替")
	}

	s.log.Info().Int("count", len(files)).Str("dir", dir).Msg("目录扫描完成")
	return files, nil
}
