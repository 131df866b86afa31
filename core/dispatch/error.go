package dispatch

import (
	"fmt"
	"log/slog"
)

// panicError carries a value recovered from a handler and the stack at the
// point of the panic.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Unwrap exposes the recovered value when it is an error.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// LogValue renders the value and the stack as a group.
func (e *panicError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("value", fmt.Sprint(e.value)),
		slog.String("stack", string(e.stack)),
	)
}
