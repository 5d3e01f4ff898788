package std

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mi66mc/pluto/object"
)

// globals are the builtin functions bound directly in the default
// environment (modules are registered separately).
var globals = []*object.Builtin{
	{Name: "print", Fn: printFunc},        // Prints arguments space-separated with a newline
	{Name: "print_raw", Fn: printRawFunc}, // Prints detailed object forms (debugging)
	{Name: "type", Fn: typeFunc},          // Returns a value's type tag as a string
	{Name: "input", Fn: inputFunc},        // Reads one line from standard input
	{Name: "exit", Fn: exitFunc},          // Terminates the host process
	{Name: "format", Fn: formatFunc},      // Substitutes {} placeholders in a template
}

// splitEndArgs scans the argument list for the special trailing pair
// `"end", separator` which overrides print's terminator. The pair may appear
// anywhere; every occurrence is consumed, last one wins.
func splitEndArgs(args []object.Object) (values []object.Object, end string) {
	end = "\n"
	values = make([]object.Object, 0, len(args))
	i := 0
	for i < len(args) {
		if i+1 < len(args) {
			if marker, ok := args[i].(*object.String); ok && marker.Value == "end" {
				if sep, ok := args[i+1].(*object.String); ok {
					end = sep.Value
					i += 2
					continue
				}
			}
		}
		values = append(values, args[i])
		i++
	}
	return values, end
}

// printFunc writes the display forms of its arguments, space-separated,
// terminated by a newline unless overridden by a trailing `"end", sep` pair.
//
// Example:
//
//	print("a", 1, true);          -> a 1 true\n
//	print("a", "end", "");        -> a
func printFunc(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	values, end := splitEndArgs(args)
	for i, value := range values {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, value.ToString())
	}
	fmt.Fprint(w, end)
	return &object.Null{}
}

// printRawFunc is print with detailed object forms instead of display forms.
func printRawFunc(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	values, end := splitEndArgs(args)
	for i, value := range values {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, value.ToObject())
	}
	fmt.Fprint(w, end)
	return &object.Null{}
}

// typeFunc returns the type tag of its argument as a String.
func typeFunc(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	if len(args) == 0 {
		return &object.String{Value: "UNKNOWN"}
	}
	return &object.String{Value: string(args[0].GetType())}
}

// inputFunc reads one line from standard input, stripped of its trailing
// newline. An optional String argument is printed first as a prompt.
func inputFunc(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	if len(args) > 0 {
		if prompt, ok := args[0].(*object.String); ok {
			fmt.Fprint(w, prompt.Value)
		}
	}
	line, err := rt.InputReader().ReadString('\n')
	if err != nil && line == "" {
		return &object.String{Value: ""}
	}
	line = strings.TrimRight(line, "\r\n")
	return &object.String{Value: line}
}

// exitFunc terminates the host process with the given code (default 0).
func exitFunc(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	code := 0
	if len(args) > 0 {
		if n, ok := args[0].(*object.Number); ok {
			code = int(n.Value)
		}
	}
	os.Exit(code)
	return &object.Null{}
}

// formatFunc substitutes each `{}` placeholder in the template with the
// display form of the next argument, left to right. Placeholders beyond the
// argument list stay literal; extra arguments are discarded.
//
// Example:
//
//	format("{} + {} = {}", 1, 2, 3);  -> "1 + 2 = 3"
func formatFunc(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	if len(args) == 0 {
		return &object.String{Value: ""}
	}
	template, ok := args[0].(*object.String)
	if !ok {
		return &object.String{Value: ""}
	}

	var out strings.Builder
	next := 1
	src := template.Value
	for i := 0; i < len(src); i++ {
		if src[i] == '{' && i+1 < len(src) && src[i+1] == '}' {
			if next < len(args) {
				out.WriteString(args[next].ToString())
				next++
			} else {
				out.WriteString("{}")
			}
			i++
			continue
		}
		out.WriteByte(src[i])
	}
	return &object.String{Value: out.String()}
}
