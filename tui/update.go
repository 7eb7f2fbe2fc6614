package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rish12345678/DeskManager/internal"
	"github.com/rish12345678/DeskManager/pkg/rules"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "tab":
			m.nextFocus()
			m.updateFocusState()
			return m, nil
		case "shift+tab":
			m.prevFocus()
			m.updateFocusState()
			return m, nil
		case "ctrl+s":
			return m, m.finish()
		case "enter":
			return m.handleEnterKey()
		}

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case builtMsg:
		m.rule = msg.rule
		m.built = true
		m.state = StateDone
		m.errText = ""
		return m, tea.Quit

	case errMsg:
		m.errText = msg.Error()
		return m, nil
	}

	if m.state == StateBuild {
		var cmd tea.Cmd
		m.actionList, cmd = m.actionList.Update(msg)
		cmds = append(cmds, cmd)

		m.categoryList, cmd = m.categoryList.Update(msg)
		cmds = append(cmds, cmd)

		for _, in := range m.inputs() {
			*in, cmd = in.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *model) inputs() []*textinput.Model {
	return []*textinput.Model{
		&m.typesInput,
		&m.modStart,
		&m.modEnd,
		&m.createdStart,
		&m.createdEnd,
		&m.destInput,
	}
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusAction:
		if item, ok := m.actionList.SelectedItem().(actionItem); ok {
			m.action = item.action
		}
		m.nextFocus()
		m.updateFocusState()
		return m, nil

	case FocusCategory:
		if item, ok := m.categoryList.SelectedItem().(categoryItem); ok && item.name != "" {
			m.typesInput.SetValue(strings.Join(rules.TypesForCategory(item.name), ","))
		}
		m.nextFocus()
		m.updateFocusState()
		return m, nil

	case FocusDestination, FocusCreatedEnd:
		// 最后一个可见输入项上按回车即完成构建
		if m.focus == FocusDestination || m.action != internal.ActionMove {
			return m, m.finish()
		}
		m.nextFocus()
		m.updateFocusState()
		return m, nil

	default:
		m.nextFocus()
		m.updateFocusState()
		return m, nil
	}
}

// finish 从表单字段组装规则并校验，校验失败只提示，不退出
func (m *model) finish() tea.Cmd {
	rule := rules.Rule{
		Action:      m.action,
		Destination: strings.TrimSpace(m.destInput.Value()),
	}

	for _, t := range strings.Split(m.typesInput.Value(), ",") {
		t = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(t), "."))
		if t != "" {
			rule.Types = append(rule.Types, t)
		}
	}

	modified := boundsFrom(m.modStart.Value(), m.modEnd.Value())
	created := boundsFrom(m.createdStart.Value(), m.createdEnd.Value())
	if modified != nil || created != nil {
		rule.DateRange = &rules.DateRange{Modified: modified, Created: created}
	}

	return func() tea.Msg {
		if err := rules.Validate(rule); err != nil {
			return errMsg(err)
		}
		return builtMsg{rule: rule}
	}
}

func boundsFrom(start, end string) *rules.Bounds {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" && end == "" {
		return nil
	}
	return &rules.Bounds{Start: start, End: end}
}

func (m *model) focusOrder() []Focus {
	order := []Focus{FocusAction, FocusCategory, FocusTypes, FocusModStart, FocusModEnd, FocusCreatedStart, FocusCreatedEnd}
	if m.action == internal.ActionMove {
		order = append(order, FocusDestination)
	}
	return order
}

func (m *model) nextFocus() {
	order := m.focusOrder()
	for i, f := range order {
		if f == m.focus {
			m.focus = order[(i+1)%len(order)]
			return
		}
	}
	m.focus = order[0]
}

func (m *model) prevFocus() {
	order := m.focusOrder()
	for i, f := range order {
		if f == m.focus {
			m.focus = order[(i+len(order)-1)%len(order)]
			return
		}
	}
	m.focus = order[0]
}

func (m *model) updateFocusState() {
	m.actionList.KeyMap.CursorUp.SetEnabled(m.focus == FocusAction)
	m.actionList.KeyMap.CursorDown.SetEnabled(m.focus == FocusAction)
	m.categoryList.KeyMap.CursorUp.SetEnabled(m.focus == FocusCategory)
	m.categoryList.KeyMap.CursorDown.SetEnabled(m.focus == FocusCategory)

	focusByInput := map[*textinput.Model]Focus{
		&m.typesInput:   FocusTypes,
		&m.modStart:     FocusModStart,
		&m.modEnd:       FocusModEnd,
		&m.createdStart: FocusCreatedStart,
		&m.createdEnd:   FocusCreatedEnd,
		&m.destInput:    FocusDestination,
	}

	for in, f := range focusByInput {
		if m.focus == f {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	width := msg.Width

	m.actionList.SetWidth(width - 4)
	m.categoryList.SetWidth(width - 4)
	for _, in := range m.inputs() {
		in.Width = width - 10
	}
}
