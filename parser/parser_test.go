package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *Program {
	t.Helper()
	program, err := New(src).ParseProgram()
	require.NoError(t, err, "source: %s", src)
	return program
}

func TestParser_Declarations(t *testing.T) {
	program := parse(t, `let x = 5; const y = 2.5; let z;`)
	require.Len(t, program.Statements, 3)

	v, ok := program.Statements[0].(*VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name)
	_, ok = v.Value.(*NumberLiteral)
	assert.True(t, ok)

	c, ok := program.Statements[1].(*ConstDeclaration)
	require.True(t, ok)
	assert.Equal(t, "y", c.Name)

	z, ok := program.Statements[2].(*VariableDeclaration)
	require.True(t, ok)
	assert.Nil(t, z.Value)
}

func TestParser_Precedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`1 + 2 * 3;`, "(1 + (2 * 3))"},
		{`1 * 2 + 3;`, "((1 * 2) + 3)"},
		{`a || b && c;`, "(a || (b && c))"},
		{`a == b < c;`, "(a == (b < c))"},
		{`1 + 2 - 3;`, "((1 + 2) - 3)"},
		{`!a && b;`, "((!a) && b)"},
		{`(1 + 2) * 3;`, "((1 + 2) * 3)"},
		{`a + b % c;`, "(a + (b % c))"},
	}
	for _, tt := range tests {
		program := parse(t, tt.input)
		require.Len(t, program.Statements, 1, "input: %s", tt.input)
		assert.Equal(t, tt.expected, program.Statements[0].Literal(), "input: %s", tt.input)
	}
}

func TestParser_AssignmentTargets(t *testing.T) {
	program := parse(t, `x = 1; arr[0] = 2; x += 3;`)
	require.Len(t, program.Statements, 3)

	_, ok := program.Statements[0].(*Assignment)
	assert.True(t, ok)
	_, ok = program.Statements[1].(*AssignmentIndex)
	assert.True(t, ok)
	op, ok := program.Statements[2].(*AssignmentOp)
	require.True(t, ok)
	assert.Equal(t, "+=", op.Op)

	_, err := New(`1 + 2 = 3;`).ParseProgram()
	assert.Error(t, err)

	_, err = New(`arr[0] += 1;`).ParseProgram()
	assert.Error(t, err, "compound assignment requires an identifier")
}

func TestParser_FunctionDeclaration(t *testing.T) {
	program := parse(t, `fn greet(name, greeting = "Hello") { return greeting + ", " + name; }`)
	require.Len(t, program.Statements, 1)
	fn, ok := program.Statements[0].(*FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "greet", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "name", fn.Params[0].Name)
	assert.Nil(t, fn.Params[0].Default)
	assert.Equal(t, "greeting", fn.Params[1].Name)
	assert.NotNil(t, fn.Params[1].Default)
}

func TestParser_AnonymousFunctionLookahead(t *testing.T) {
	// (params) -> expr is an anonymous function.
	program := parse(t, `let f = (a, b) -> a + b;`)
	decl := program.Statements[0].(*VariableDeclaration)
	fn, ok := decl.Value.(*AnonymousFunction)
	require.True(t, ok)
	assert.Len(t, fn.Params, 2)

	// Zero-parameter form.
	program = parse(t, `let f = () -> 1;`)
	decl = program.Statements[0].(*VariableDeclaration)
	_, ok = decl.Value.(*AnonymousFunction)
	assert.True(t, ok)

	// Block body form.
	program = parse(t, `let f = (x) -> { return x; };`)
	decl = program.Statements[0].(*VariableDeclaration)
	fn, ok = decl.Value.(*AnonymousFunction)
	require.True(t, ok)
	_, ok = fn.Body.(*BlockStatement)
	assert.True(t, ok)

	// Default parameter in an anonymous function.
	program = parse(t, `let f = (x = 10) -> x;`)
	decl = program.Statements[0].(*VariableDeclaration)
	fn, ok = decl.Value.(*AnonymousFunction)
	require.True(t, ok)
	assert.NotNil(t, fn.Params[0].Default)

	// A parenthesized expression is NOT an anonymous function.
	program = parse(t, `let g = (a);`)
	decl = program.Statements[0].(*VariableDeclaration)
	_, ok = decl.Value.(*Identifier)
	assert.True(t, ok)

	program = parse(t, `let h = (1 + 2) * 3;`)
	decl = program.Statements[0].(*VariableDeclaration)
	_, ok = decl.Value.(*BinaryExpression)
	assert.True(t, ok)
}

func TestParser_CallArguments(t *testing.T) {
	program := parse(t, `greet("Ada", greeting = "Hi");`)
	call, ok := program.Statements[0].(*FunctionCall)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
	assert.Equal(t, "", call.Args[0].Name)
	assert.Equal(t, "greeting", call.Args[1].Name)

	// Immediate invocation of an anonymous function.
	program = parse(t, `((x) -> x + 1)(3);`)
	inv, ok := program.Statements[0].(*ImmediateInvocation)
	require.True(t, ok)
	_, ok = inv.Function.(*AnonymousFunction)
	assert.True(t, ok)
}

func TestParser_PostfixChains(t *testing.T) {
	program := parse(t, `obj.field.method(1)[2];`)
	idx, ok := program.Statements[0].(*IndexAccess)
	require.True(t, ok)
	_, ok = idx.Object.(*MethodCall)
	assert.True(t, ok)

	_, err := New(`f()++;`).ParseProgram()
	assert.Error(t, err, "'++' requires an identifier")

	program = parse(t, `i++; j--;`)
	require.Len(t, program.Statements, 2)
	inc, ok := program.Statements[0].(*PostfixUnaryExpression)
	require.True(t, ok)
	assert.Equal(t, "++", inc.Op)
	assert.Equal(t, "i", inc.Name)
}

func TestParser_ControlFlow(t *testing.T) {
	program := parse(t, `
		if x < 2 { return x; } else if x < 10 { return 1; } else { return 2; }
	`)
	stmt, ok := program.Statements[0].(*IfStatement)
	require.True(t, ok)
	_, ok = stmt.Else.(*IfStatement)
	assert.True(t, ok)

	program = parse(t, `while (x < 10) { x++; }`)
	_, ok = program.Statements[0].(*WhileStatement)
	assert.True(t, ok)

	program = parse(t, `for (let i = 0; i < 10; i++) { s += i; }`)
	f, ok := program.Statements[0].(*ForStatement)
	require.True(t, ok)
	assert.NotNil(t, f.Init)
	assert.NotNil(t, f.Cond)
	assert.NotNil(t, f.Step)

	program = parse(t, `for (;;) { break; }`)
	f, ok = program.Statements[0].(*ForStatement)
	require.True(t, ok)
	assert.Nil(t, f.Init)
	assert.Nil(t, f.Cond)
	assert.Nil(t, f.Step)
}

func TestParser_MatchExpression(t *testing.T) {
	program := parse(t, `match x { 0 => "zero", 1 => "one", _ => "many" };`)
	m, ok := program.Statements[0].(*MatchExpression)
	require.True(t, ok)
	require.Len(t, m.Arms, 3)
	assert.NotNil(t, m.Arms[0].Pattern)
	assert.NotNil(t, m.Arms[1].Pattern)
	assert.Nil(t, m.Arms[2].Pattern, "the `_` arm has no pattern")
}

func TestParser_Literals(t *testing.T) {
	program := parse(t, `[1, 2.5, "x", true, null];`)
	arr, ok := program.Statements[0].(*ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 5)

	program = parse(t, `let m = { name: "Ada", "age": 36 };`)
	decl := program.Statements[0].(*VariableDeclaration)
	h, ok := decl.Value.(*HashMapLiteral)
	require.True(t, ok)
	require.Len(t, h.Pairs, 2)
	assert.Equal(t, "name", h.Pairs[0].Key)
	assert.Equal(t, "age", h.Pairs[1].Key)
}

func TestParser_TernaryAndRange(t *testing.T) {
	program := parse(t, `let v = x > 0 ? "pos" : "neg";`)
	decl := program.Statements[0].(*VariableDeclaration)
	_, ok := decl.Value.(*TernaryExpression)
	assert.True(t, ok)

	program = parse(t, `let r = 1..10; let s = 1..=10;`)
	r := program.Statements[0].(*VariableDeclaration).Value.(*RangeExpression)
	assert.False(t, r.Inclusive)
	s := program.Statements[1].(*VariableDeclaration).Value.(*RangeExpression)
	assert.True(t, s.Inclusive)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		input string
		line  int
		col   int
	}{
		{`let = 5;`, 1, 5},
		{`1 +;`, 1, 4},
		{`fn f( { }`, 1, 7},
		{"let x = 1;\nlet 2;", 2, 5},
	}
	for _, tt := range tests {
		_, err := New(tt.input).ParseProgram()
		require.Error(t, err, "input: %s", tt.input)
		pe, ok := err.(*ParseError)
		require.True(t, ok)
		assert.Equal(t, tt.line, pe.Line, "input: %s", tt.input)
		assert.Equal(t, tt.col, pe.Column, "input: %s", tt.input)
	}
}

// TestParser_RoundTrip checks that printing an accepted program and parsing
// it again produces the same printed form.
func TestParser_RoundTrip(t *testing.T) {
	sources := []string{
		`let x = 5;`,
		`const pi = 3.14;`,
		`fn fib(n) { if n < 2 { return n; } return fib(n - 1) + fib(n - 2); }`,
		`let f = (a, b = 2) -> a + b;`,
		`print(greet(name = "Ada"), 1 + 2 * 3);`,
		`for (let i = 0; i < 10; i++) { if i % 2 == 0 { continue; } s += i; }`,
		`while (x < 10) { x = x + 1; }`,
		`let v = match x { 0 => "zero", _ => "many" };`,
		`let r = 1..=10;`,
		`let m = { name: "Ada" }; m["name"] = "Grace";`,
		`let t = x > 0 ? 1 : 2;`,
		`arr.push(4).map((x) -> x * 2);`,
	}
	for _, src := range sources {
		first := parse(t, src)
		printed := first.Literal()
		second, err := New(printed).ParseProgram()
		require.NoError(t, err, "printed: %s", printed)
		assert.Equal(t, printed, second.Literal(), "source: %s", src)
	}
}
