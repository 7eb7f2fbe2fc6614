package executor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rish12345678/DeskManager/internal"
)

// Confirmer 删除确认通道，整批待删除文件只询问一次
type Confirmer interface {
	Confirm(pending int) bool
}

// TerminalConfirmer 从终端读取一行回答
// 只有不区分大小写的 "yes" 放行，其余输入、空输入或输入流被关闭都视为取消
type TerminalConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c *TerminalConfirmer) Confirm(pending int) bool {
	fmt.Fprintf(c.Out, "即将删除 %d 个文件，此操作不可恢复。输入 yes 确认: ", pending)

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	return strings.EqualFold(strings.TrimSpace(line), internal.ConfirmWord)
}

// ConfirmFunc 便于注入的函数式确认器
type ConfirmFunc func(pending int) bool

func (f ConfirmFunc) Confirm(pending int) bool {
	return f(pending)
}
