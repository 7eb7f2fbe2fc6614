package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rish12345678/DeskManager/internal"
	"github.com/rish12345678/DeskManager/pkg/rules"
)

type State int

const (
	StateBuild State = iota
	StateDone
)

type Focus int

const (
	FocusAction Focus = iota
	FocusCategory
	FocusTypes
	FocusModStart
	FocusModEnd
	FocusCreatedStart
	FocusCreatedEnd
	FocusDestination
)

type model struct {
	state  State
	focus  Focus
	action internal.Action

	actionList   list.Model
	categoryList list.Model
	typesInput   textinput.Model
	modStart     textinput.Model
	modEnd       textinput.Model
	createdStart textinput.Model
	createdEnd   textinput.Model
	destInput    textinput.Model

	errText  string
	rule     rules.Rule
	built    bool
	canceled bool
}

func initialModel() model {
	actionList := list.New([]list.Item{
		actionItem{action: internal.ActionMove, title: "移动到子目录", desc: "把命中的文件移动到 destination 指定的子目录"},
		actionItem{action: internal.ActionDelete, title: "删除文件", desc: "永久删除命中的文件（执行前整批确认）"},
		actionItem{action: internal.ActionCompress, title: "压缩文件", desc: "声明动作，当前版本不会实际压缩"},
	}, list.NewDefaultDelegate(), 0, 3)

	actionList.Title = "选择规则动作"
	actionList.SetShowStatusBar(false)
	actionList.SetFilteringEnabled(false)
	actionList.Styles.Title = titleStyle

	categoryItems := []list.Item{categoryItem{name: "", title: "手动输入扩展名"}}
	for _, name := range rules.CategoryNames() {
		categoryItems = append(categoryItems, categoryItem{name: name, title: name})
	}

	categoryList := list.New(categoryItems, list.NewDefaultDelegate(), 0, 6)
	categoryList.Title = "按大类填充扩展名（可选）"
	categoryList.SetShowStatusBar(false)
	categoryList.SetFilteringEnabled(false)
	categoryList.Styles.Title = titleStyle

	typesInput := textinput.New()
	typesInput.Placeholder = "扩展名，逗号分隔，留空匹配所有类型（例如：jpg,png）"
	typesInput.Prompt = "> "
	typesInput.PromptStyle = focusedPromptStyle
	typesInput.TextStyle = textStyle

	newDateInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = "> "
		in.PromptStyle = focusedPromptStyle
		in.TextStyle = textStyle
		return in
	}

	destInput := textinput.New()
	destInput.Placeholder = "相对目标目录的子目录（例如：images）"
	destInput.Prompt = "> "
	destInput.PromptStyle = focusedPromptStyle
	destInput.TextStyle = textStyle

	return model{
		state:        StateBuild,
		focus:        FocusAction,
		action:       internal.ActionMove,
		actionList:   actionList,
		categoryList: categoryList,
		typesInput:   typesInput,
		modStart:     newDateInput("修改时间下界（例如：2024-01-01T00:00:00，留空不限）"),
		modEnd:       newDateInput("修改时间上界（留空不限）"),
		createdStart: newDateInput("创建时间下界（留空不限）"),
		createdEnd:   newDateInput("创建时间上界（留空不限）"),
		destInput:    destInput,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

type actionItem struct {
	action internal.Action
	title  string
	desc   string
}

func (a actionItem) Title() string       { return a.title }
func (a actionItem) Description() string { return a.desc }
func (a actionItem) FilterValue() string { return a.title }

type categoryItem struct {
	name  string
	title string
}

func (c categoryItem) Title() string       { return c.title }
func (c categoryItem) Description() string { return "" }
func (c categoryItem) FilterValue() string { return c.title }
