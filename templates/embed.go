// Package templates provides embedded file templates.
package templates

import _ "embed"

// SampleTodo is the starter board written by 'todui create'.
//
//go:embed sample_todo.md
var SampleTodo string
