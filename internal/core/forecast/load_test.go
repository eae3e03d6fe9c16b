package forecast

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestLoad_Resolve(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := Pending("id-1", t0)
	if l.Status != StatusPending || l.Elapsed() != 0 || l.Reason() != "" {
		t.Fatalf("bad pending load: %+v", l)
	}

	entries := []Entry{{Code: 0, Description: "Clear sky"}}
	r := l.Resolve(entries, t0.Add(250*time.Millisecond))
	if r.Status != StatusResolved || len(r.Entries) != 1 {
		t.Fatalf("bad resolved load: %+v", r)
	}
	if r.Elapsed() != 250*time.Millisecond {
		t.Fatalf("Elapsed = %v", r.Elapsed())
	}
	// the original value is untouched
	if l.Status != StatusPending {
		t.Fatalf("Resolve mutated receiver")
	}
}

func TestLoad_FailAndSettleOnce(t *testing.T) {
	t0 := time.Unix(0, 0)
	f := Pending("id-2", t0).Fail(errors.New("dial tcp: refused"), t0.Add(time.Second))
	if f.Status != StatusFailed || f.Reason() != "dial tcp: refused" {
		t.Fatalf("bad failed load: %+v", f)
	}

	again := f.Resolve([]Entry{{}}, t0.Add(2*time.Second))
	if again.Status != StatusFailed || again.Entries != nil {
		t.Fatalf("settled load changed: %+v", again)
	}

	nilErr := Pending("id-3", t0).Fail(nil, t0)
	if nilErr.Reason() != "An unknown error occurred" {
		t.Fatalf("nil error reason = %q", nilErr.Reason())
	}
}

type displayErr struct{ msg, cause string }

func (e displayErr) Error() string   { return e.msg + ": " + e.cause }
func (e displayErr) Message() string { return e.msg }

func TestLoad_ReasonPrefersMessage(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	err := fmt.Errorf("fetch: %w", displayErr{msg: "open-meteo request failed", cause: "dial tcp: refused"})
	f := Pending("id-4", t0).Fail(err, t0)
	if got := f.Reason(); got != "open-meteo request failed" {
		t.Fatalf("Reason = %q", got)
	}
}

func TestStatus_String(t *testing.T) {
	want := map[Status]string{
		StatusPending:  "pending",
		StatusResolved: "resolved",
		StatusFailed:   "failed",
		Status(9):      "unknown",
	}
	for s, w := range want {
		if s.String() != w {
			t.Fatalf("Status(%d).String() = %q, want %q", s, s.String(), w)
		}
	}
}
