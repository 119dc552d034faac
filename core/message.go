package core

import (
	"fmt"
)

// Loggable is implemented by values that render their own log message
// and contribute context. The contributed context wins over the
// caller's context on key collision.
type Loggable interface {
	LogMessage() string
	LogContext() Context
}

// Message is the resolved form of a log call's message argument. It is
// one of Scalar, Structured or Sequence.
type Message interface {
	isMessage()
}

// Scalar is a plain text message.
type Scalar string

// Structured wraps a Loggable message.
type Structured struct {
	Loggable
}

// Sequence is a list of messages, each logged on its own.
type Sequence []any

func (Scalar) isMessage()     {}
func (Structured) isMessage() {}
func (Sequence) isMessage()   {}

// MessageOf resolves an arbitrary message argument. Loggable values are
// checked first, so an error type that also implements Loggable is
// treated as structured.
func MessageOf(v any) Message {
	switch m := v.(type) {
	case Message:
		return m
	case Loggable:
		return Structured{m}
	case string:
		return Scalar(m)
	case []any:
		return Sequence(m)
	case []string:
		seq := make(Sequence, len(m))
		for i, s := range m {
			seq[i] = s
		}
		return seq
	case []Loggable:
		seq := make(Sequence, len(m))
		for i, s := range m {
			seq[i] = s
		}
		return seq
	case error:
		return Scalar(m.Error())
	case fmt.Stringer:
		return Scalar(m.String())
	case nil:
		return Scalar("")
	default:
		return Scalar(fmt.Sprint(m))
	}
}
