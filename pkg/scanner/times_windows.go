//go:build windows

package scanner

import (
	"os"
	"syscall"
	"time"
)

const birthTimeExact = true

func creationTime(info os.FileInfo) (time.Time, bool) {
	st, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime(), false
	}
	return time.Unix(0, st.CreationTime.Nanoseconds()), true
}
