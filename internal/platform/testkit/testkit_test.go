package testkit

import "testing"

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {
		// no panic
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	haystack := "Loading weather data... Clear sky"
	MustContain(t, haystack, "Clear sky")
	MustNotContain(t, haystack, "Error:")
}

func TestMustOrder(t *testing.T) {
	t.Parallel()

	MustOrder(t, "a 0: Clear sky b 1: Mainly clear c", "Clear sky", "Mainly clear")
}

func TestMustJSON(t *testing.T) {
	t.Parallel()

	got := MustJSON[map[string]int](t, []byte(`{"code":61}`))
	if got["code"] != 61 {
		t.Fatalf("MustJSON = %v", got)
	}
}
