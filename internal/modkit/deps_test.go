package modkit

import (
	"testing"
	"time"

	"meteopage/internal/platform/config"
	ptime "meteopage/internal/platform/time"
)

func TestDeps_ZeroValue_UsesSystemClock(t *testing.T) {
	t.Parallel()
	var d Deps
	before := time.Now().UTC().Add(-time.Second)
	got := d.Now()
	if got.Before(before) || got.Location() != time.UTC {
		t.Fatalf("zero Deps.Now() = %v, want a recent UTC time", got)
	}
}

func TestDeps_InjectedClock(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	d := Deps{
		Cfg:   config.New().Prefix("WEB_"),
		Clock: ptime.Fixed(at),
	}
	if got := d.Now(); !got.Equal(at) {
		t.Fatalf("Deps.Now() = %v, want %v", got, at)
	}
}
