package internal

// 规则动作
type Action string

const (
	ActionMove     Action = "move"
	ActionDelete   Action = "delete"
	ActionCompress Action = "compress"
)

// Valid 判断动作是否为已知动作
func (a Action) Valid() bool {
	switch a {
	case ActionMove, ActionDelete, ActionCompress:
		return true
	}
	return false
}
