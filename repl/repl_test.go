package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{`let x = 5;`, false},
		{`fn f() {`, true},
		{`fn f() {\n  return 1;`, true},
		{`fn f() { return 1; }`, false},
		{`print(1,`, true},
		{`print(1, 2)`, false},
		{`if x { while (y) {`, true},
		{`if x { while (y) { } }`, false},
		{``, false},
		// Over-closing does not demand more input; the parser reports it.
		{`}`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NeedsMoreInput(tt.input), "input: %s", tt.input)
	}
}
