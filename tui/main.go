package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rish12345678/DeskManager/logger"
	"github.com/rish12345678/DeskManager/pkg/rules"
)

type teaModel struct {
	m *model
}

func (tm teaModel) Init() tea.Cmd {
	return nil
}

func (tm teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return tm.m.Update(msg)
}

func (tm teaModel) View() string {
	return tm.m.View()
}

// RunBuilder 运行交互式规则构建器，返回构建好的单条规则。
// 取消（Esc/Ctrl+C）返回错误，调用方不再进入整理流程。
func RunBuilder() (rules.Rule, error) {
	logger.Get().Info().Msg("启动交互式规则构建器")

	m := initialModel()
	p := tea.NewProgram(teaModel{m: &m}, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Get().Error().Err(err).Msg("TUI 运行错误")
		return rules.Rule{}, err
	}

	if !m.built {
		logger.Get().Info().Msg("规则构建已取消")
		return rules.Rule{}, fmt.Errorf("规则构建已取消")
	}

	return m.rule, nil
}
