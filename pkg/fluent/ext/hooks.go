package ext

import "github.com/ib-77/fluent/pkg/fluent"

var _ fluent.Extension = Hooks{}

// Hooks adapts plain funcs to fluent.Extension. Nil funcs are skipped.
type Hooks struct {
	Before func(method string, args []any)
	After  func(method string, result any)
}

func (h Hooks) BeforeCall(method string, args []any) {
	if h.Before != nil {
		h.Before(method, args)
	}
}

func (h Hooks) AfterCall(method string, result any) {
	if h.After != nil {
		h.After(method, result)
	}
}
