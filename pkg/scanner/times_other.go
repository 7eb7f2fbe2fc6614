//go:build !linux && !darwin && !windows

package scanner

import (
	"os"
	"time"
)

const birthTimeExact = false

func creationTime(info os.FileInfo) (time.Time, bool) {
	return info.ModTime(), false
}
