package tui

import "github.com/rish12345678/DeskManager/pkg/rules"

type builtMsg struct {
	rule rules.Rule
}

type errMsg error
