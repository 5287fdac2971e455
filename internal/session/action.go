package session

import (
	"fmt"
	"strings"
)

// Action identifies one kind of scripted operation.
type Action string

const (
	ActionAdd          Action = "add"
	ActionBorrow       Action = "borrow"
	ActionReturn       Action = "return"
	ActionSearchTitle  Action = "search-title"
	ActionSearchAuthor Action = "search-author"
)

// ParseAction converts a library-file action string into an Action.
func ParseAction(s string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(s)))
	switch action {
	case ActionAdd, ActionBorrow, ActionReturn, ActionSearchTitle, ActionSearchAuthor:
		return action, nil
	default:
		return "", fmt.Errorf("unknown action %q", s)
	}
}
