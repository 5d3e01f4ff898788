package std

import (
	"io"
	"time"

	"github.com/mi66mc/pluto/object"
)

// timeModule builds the Time module: wall-clock reads and a blocking sleep.
func timeModule() *object.Module {
	return &object.Module{
		Name: "Time",
		Members: map[string]object.Object{
			"now":    &object.Builtin{Name: "now", Fn: timeNow},
			"now_ms": &object.Builtin{Name: "now_ms", Fn: timeNowMs},
			"sleep":  &object.Builtin{Name: "sleep", Fn: timeSleep},
		},
	}
}

// timeNow returns seconds since the Unix epoch.
func timeNow(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	return &object.Number{Value: time.Now().Unix()}
}

// timeNowMs returns milliseconds since the Unix epoch.
func timeNowMs(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	return &object.Number{Value: time.Now().UnixMilli()}
}

// timeSleep blocks the sole execution thread for the given number of
// milliseconds. There is no cancellation.
func timeSleep(rt object.Runtime, w io.Writer, args ...object.Object) object.Object {
	if len(args) > 0 {
		if ms, ok := args[0].(*object.Number); ok && ms.Value > 0 {
			time.Sleep(time.Duration(ms.Value) * time.Millisecond)
		}
	}
	return &object.Number{Value: 0}
}
