// Package view implements the presentation core of the bug tracker as a
// headless view model: components render plain text fragments and expose the
// same contracts the page exercises, so the whole flow is testable without a
// browser or terminal runtime.
package view

import (
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// RenderFunc produces a component subtree. It may panic with any value; the
// boundary is responsible for containing that.
type RenderFunc func() string

const (
	fallbackHeading = "Something went wrong"
	fallbackGeneric = "An unexpected error occurred."
	fallbackControl = "[Try Again]"
)

// Boundary isolates rendering failures of its subtree. Once a render panics
// the boundary stays in the failed state, returning its fallback for every
// subsequent render, until Reset is called.
type Boundary struct {
	failed bool
	cause  interface{}
	logger *zap.Logger
}

func NewBoundary(logger *zap.Logger) *Boundary {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Boundary{logger: logger}
}

func (b *Boundary) Render(children RenderFunc) (out string) {
	if b.failed {
		return b.fallback()
	}

	defer func() {
		if cause := recover(); cause != nil {
			b.failed = true
			b.cause = cause
			b.report(cause)
			out = b.fallback()
		}
	}()

	return children()
}

// Failed reports whether the boundary holds a contained failure.
func (b *Boundary) Failed() bool {
	return b.failed
}

// Cause returns the value raised by the failing render, unmodified.
func (b *Boundary) Cause() interface{} {
	return b.cause
}

// Reset is the explicit recovery action: it clears the stored failure so the
// next Render attempts the children again. Nothing else leaves the failed
// state.
func (b *Boundary) Reset() {
	b.failed = false
	b.cause = nil
}

func (b *Boundary) fallback() string {
	var sb strings.Builder
	sb.WriteString(fallbackHeading)
	sb.WriteString("\n")
	sb.WriteString(describeFailure(b.cause))
	sb.WriteString("\n")
	sb.WriteString(fallbackControl)
	return sb.String()
}

// report sends the failure to the observability sink. It must never panic or
// change the render outcome, whatever the sink does.
func (b *Boundary) report(cause interface{}) {
	defer func() {
		_ = recover()
	}()

	b.logger.Error("render failure contained",
		zap.Any("cause", cause),
		zap.String("description", describeFailure(cause)),
	)
}

// describeFailure extracts readable text from an arbitrary panic value,
// falling back to a generic message when there is none. A typed-nil error or
// Stringer passes the interface nil check and then panics inside Error or
// String; that secondary panic must not escape the fallback path, so the
// whole extraction runs under its own recover.
func describeFailure(cause interface{}) (out string) {
	defer func() {
		if recover() != nil {
			out = fallbackGeneric
		}
	}()

	switch v := cause.(type) {
	case *runtime.PanicNilError:
		return fallbackGeneric
	case error:
		if v != nil && strings.TrimSpace(v.Error()) != "" {
			return v.Error()
		}
	case string:
		if strings.TrimSpace(v) != "" {
			return v
		}
	case fmt.Stringer:
		if v != nil && strings.TrimSpace(v.String()) != "" {
			return v.String()
		}
	}
	return fallbackGeneric
}
