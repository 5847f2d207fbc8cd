package xlog

import "fmt"

// message is either an already realized value or a deferred producer.
// It is realized once, at emission, and only when the level is enabled.
type message struct {
	value    any
	producer func() any
}

func (m message) realize() any {
	if m.producer != nil {
		return m.producer()
	}
	return m.value
}

// Display renders a message or field value as text. A nil value renders as "null".
func Display(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
