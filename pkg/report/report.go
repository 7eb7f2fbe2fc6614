package report

import (
	"bytes"
	"fmt"

	"github.com/rish12345678/DeskManager/internal"
)

// Summary 一次整理运行的统计结果。
// 预览模式和实际执行使用完全相同的累加逻辑，区别只在是否真正修改文件。
type Summary struct {
	Moved      int
	Deleted    int
	Compressed int
	TotalSize  int64
}

// Record 按动作累加一个成功（或计划中）的文件
// compress 动作只声明不实现，不计入任何计数
func (s *Summary) Record(action internal.Action, size int64) {
	switch action {
	case internal.ActionMove:
		s.Moved++
		s.TotalSize += size
	case internal.ActionDelete:
		s.Deleted++
		s.TotalSize += size
	case internal.ActionCompress:
		// 未实现，不计数
	}
}

// Total 返回受影响的文件总数
func (s *Summary) Total() int {
	return s.Moved + s.Deleted + s.Compressed
}

func (s *Summary) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== 整理统计 ==========\n")
	buf.WriteString(fmt.Sprintf("已移动: %d\n", s.Moved))
	buf.WriteString(fmt.Sprintf("已删除: %d\n", s.Deleted))
	buf.WriteString(fmt.Sprintf("已压缩: %d\n", s.Compressed))
	buf.WriteString(fmt.Sprintf("涉及大小: %s\n", FormatBytes(s.TotalSize)))
	buf.WriteString("============================")

	return buf.String()
}

// FormatBytes 以 1024 进制格式化字节数，保留两位小数
func FormatBytes(size int64) string {
	if size == 0 {
		return "0B"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	value := float64(size)

	i := 0
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}

	return fmt.Sprintf("%.2f%s", value, units[i])
}
