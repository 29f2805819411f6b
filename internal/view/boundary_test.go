package view

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func failing(cause interface{}) RenderFunc {
	return func() string {
		panic(cause)
	}
}

func TestBoundary_ContainsAnyPanicValue(t *testing.T) {
	cases := []struct {
		name     string
		cause    interface{}
		wantText string
	}{
		{"error value", errors.New("data corrupted"), "data corrupted"},
		{"string value", "render blew up", "render blew up"},
		{"plain struct", struct{ X int }{42}, fallbackGeneric},
		{"nil value", nil, fallbackGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoundary(nil)

			out := b.Render(failing(tc.cause))

			if !b.Failed() {
				t.Fatal("expected boundary to enter the failed state")
			}
			if !strings.Contains(out, fallbackHeading) {
				t.Errorf("expected fallback heading in %q", out)
			}
			if !strings.Contains(out, tc.wantText) {
				t.Errorf("expected %q in fallback %q", tc.wantText, out)
			}
			if !strings.Contains(out, fallbackControl) {
				t.Errorf("expected recovery control in fallback %q", out)
			}
		})
	}
}

func TestBoundary_NormalRendersChildren(t *testing.T) {
	b := NewBoundary(nil)

	out := b.Render(func() string { return "all good" })

	if out != "all good" {
		t.Errorf("expected children output, got %q", out)
	}
	if b.Failed() {
		t.Error("expected boundary to stay in the normal state")
	}
}

func TestBoundary_StaysFailedWithoutReset(t *testing.T) {
	b := NewBoundary(nil)
	b.Render(failing("boom"))

	// New, non-failing children do not clear the failure by themselves.
	out := b.Render(func() string { return "healthy now" })

	if !b.Failed() {
		t.Error("expected boundary to remain failed")
	}
	if !strings.Contains(out, fallbackHeading) {
		t.Errorf("expected fallback, got %q", out)
	}
}

func TestBoundary_ResetRecovers(t *testing.T) {
	b := NewBoundary(nil)
	b.Render(failing("boom"))

	b.Reset()

	if b.Failed() {
		t.Fatal("expected reset to clear the failed state")
	}
	if b.Cause() != nil {
		t.Error("expected reset to clear the stored cause")
	}

	out := b.Render(func() string { return "healthy now" })
	if out != "healthy now" {
		t.Errorf("expected children after recovery, got %q", out)
	}
}

func TestBoundary_NestedInnerContainsFailure(t *testing.T) {
	outer := NewBoundary(nil)
	inner := NewBoundary(nil)

	out := outer.Render(func() string {
		return "sidebar\n" + inner.Render(failing("widget exploded"))
	})

	if outer.Failed() {
		t.Error("expected outer boundary to stay normal")
	}
	if !inner.Failed() {
		t.Error("expected inner boundary to contain the failure")
	}
	if !strings.Contains(out, "sidebar") {
		t.Errorf("expected content outside the inner boundary to survive, got %q", out)
	}
	if !strings.Contains(out, "widget exploded") {
		t.Errorf("expected inner fallback inline, got %q", out)
	}
}

func TestBoundary_DirectFailureReplacesOuterSubtree(t *testing.T) {
	outer := NewBoundary(nil)

	out := outer.Render(func() string {
		return "sidebar\n" + failing("widget exploded")()
	})

	if !outer.Failed() {
		t.Fatal("expected outer boundary to fail")
	}
	if strings.Contains(out, "sidebar") {
		t.Errorf("expected the whole outer subtree replaced by the fallback, got %q", out)
	}
}

func TestBoundary_ReportsToSinkOnce(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	b := NewBoundary(zap.New(core))

	b.Render(failing("boom"))
	b.Render(func() string { return "still failed" })

	if logs.Len() != 1 {
		t.Errorf("expected exactly one report, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Message != "render failure contained" {
		t.Errorf("unexpected report message %q", entry.Message)
	}
}

type nilMessageErr struct {
	msg string
}

func (e *nilMessageErr) Error() string {
	return e.msg
}

type nilStringer struct {
	msg string
}

func (s *nilStringer) String() string {
	return s.msg
}

func TestBoundary_TypedNilCauseStaysContained(t *testing.T) {
	cases := []struct {
		name  string
		cause interface{}
	}{
		{"typed-nil error", (*nilMessageErr)(nil)},
		{"typed-nil stringer", (*nilStringer)(nil)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoundary(nil)

			out := b.Render(failing(tc.cause))

			if !b.Failed() {
				t.Fatal("expected boundary to enter the failed state")
			}
			if !strings.Contains(out, fallbackHeading) {
				t.Errorf("expected fallback heading in %q", out)
			}
			if !strings.Contains(out, fallbackGeneric) {
				t.Errorf("expected generic description in %q", out)
			}

			// The fallback path must keep working on every later render,
			// not blow up on the stored cause.
			again := b.Render(func() string { return "healthy now" })
			if !strings.Contains(again, fallbackHeading) {
				t.Errorf("expected fallback while still failed, got %q", again)
			}

			b.Reset()
			if got := b.Render(func() string { return "healthy now" }); got != "healthy now" {
				t.Errorf("expected children after recovery, got %q", got)
			}
		})
	}
}

func TestBoundary_StoresRawCause(t *testing.T) {
	b := NewBoundary(nil)
	cause := struct{ Code int }{500}

	b.Render(failing(cause))

	if b.Cause() != cause {
		t.Errorf("expected raised value stored unmodified, got %v", b.Cause())
	}
}
