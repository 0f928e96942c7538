package fails

import (
	"errors"
	"maps"
	"strings"

	"github.com/quintans/stackfactory/internal/lib/values"
)

// Error annotates a cause with a message and key/value context.
type Error struct {
	cause  error
	msg    string
	values values.M
}

// Wrap annotates cause with msg. args are alternating keys and values.
func Wrap(cause error, msg string, args ...any) *Error {
	return &Error{
		cause:  cause,
		msg:    msg,
		values: values.ToMap(args),
	}
}

// With adds context and returns the same error.
func (e *Error) With(args ...any) *Error {
	maps.Copy(e.values, values.ToMap(args))
	return e
}

func (e *Error) Error() string {
	var str strings.Builder
	str.WriteString(e.msg)
	if len(e.values) > 0 {
		str.WriteString(" ")
		str.WriteString(values.ToStr(e.values))
	}

	if e.cause != nil {
		str.WriteString(": ")
		str.WriteString(e.cause.Error())
	}

	return str.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Values returns the context of e and of every annotated cause below it.
// Outer keys win.
func (e *Error) Values() values.M {
	m := ValuesOf(e.cause)
	maps.Copy(m, e.values)
	return m
}

// ValuesOf collects the context carried anywhere in err's chain. It never
// returns nil.
func ValuesOf(err error) values.M {
	var fe *Error
	if !errors.As(err, &fe) {
		return values.M{}
	}
	return fe.Values()
}
