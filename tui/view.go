package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rish12345678/DeskManager/internal"
)

func (m *model) View() string {
	switch m.state {
	case StateBuild:
		return m.buildView()
	case StateDone:
		return m.doneView()
	default:
		return "未知状态"
	}
}

func (m *model) buildView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📋 DeskManager 规则构建器") + "\n\n")
	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	b.WriteString(labelStyle.Render("1. 选择动作：") + "\n")
	b.WriteString(m.renderSection(FocusAction, m.actionList.View()))

	b.WriteString(labelStyle.Render("2. 按大类填充扩展名（可选）：") + "\n")
	b.WriteString(m.renderSection(FocusCategory, m.categoryList.View()))

	b.WriteString(labelStyle.Render("3. 扩展名集合：") + "\n")
	b.WriteString(m.renderSection(FocusTypes, m.typesInput.View()))

	b.WriteString(labelStyle.Render("4. 修改时间范围（可选）：") + "\n")
	b.WriteString(m.renderSection(FocusModStart, m.modStart.View()))
	b.WriteString(m.renderSection(FocusModEnd, m.modEnd.View()))

	b.WriteString(labelStyle.Render("5. 创建时间范围（可选）：") + "\n")
	b.WriteString(m.renderSection(FocusCreatedStart, m.createdStart.View()))
	b.WriteString(m.renderSection(FocusCreatedEnd, m.createdEnd.View()))

	if m.action == internal.ActionMove {
		b.WriteString(labelStyle.Render("6. 移动目标子目录：") + "\n")
		b.WriteString(m.renderSection(FocusDestination, m.destInput.View()))
	}

	if m.errText != "" {
		b.WriteString(errorStyle.Render("规则校验失败: "+m.errText) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("操作提示：") + "\n")
	b.WriteString("  • Tab / Shift+Tab 切换焦点\n")
	b.WriteString("  • Enter 确认选择\n")
	b.WriteString("  • Ctrl+S 完成规则\n")
	b.WriteString("  • Esc / Ctrl+C 取消\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) renderSection(focus Focus, content string) string {
	if m.focus == focus {
		return focusedStyle.Render(content) + "\n\n"
	}
	return normalStyle.Render(content) + "\n\n"
}

func (m *model) doneView() string {
	var b strings.Builder

	b.WriteString(successTitleStyle.Render("✅ 规则已生成") + "\n\n")

	b.WriteString(fmt.Sprintf("  动作:     %s\n", m.rule.Action))
	if m.rule.Destination != "" {
		b.WriteString(fmt.Sprintf("  目标目录: %s\n", m.rule.Destination))
	}
	if len(m.rule.Types) > 0 {
		b.WriteString(fmt.Sprintf("  扩展名:   %s\n", strings.Join(m.rule.Types, ", ")))
	} else {
		b.WriteString("  扩展名:   （全部类型）\n")
	}
	if m.rule.DateRange != nil {
		if r := m.rule.DateRange.Modified; r != nil {
			b.WriteString(fmt.Sprintf("  修改时间: [%s, %s]\n", orUnbounded(r.Start), orUnbounded(r.End)))
		}
		if r := m.rule.DateRange.Created; r != nil {
			b.WriteString(fmt.Sprintf("  创建时间: [%s, %s]\n", orUnbounded(r.Start), orUnbounded(r.End)))
		}
	}

	b.WriteString("\n" + hintStyle.Render("规则将替换当前规则集并立即执行") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func orUnbounded(s string) string {
	if s == "" {
		return "不限"
	}
	return s
}
