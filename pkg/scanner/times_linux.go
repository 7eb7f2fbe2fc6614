//go:build linux

package scanner

import (
	"os"
	"syscall"
	"time"
)

const birthTimeExact = false

// Linux 不暴露真实的创建时间，退回到元数据变更时间（ctime）
func creationTime(info os.FileInfo) (time.Time, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), false
	}
	return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)), false
}
