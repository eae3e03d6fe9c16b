package wmo

import (
	"strconv"
	"strings"
	"testing"
)

func TestStandard_KnownCodes(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{3, "Overcast"},
		{48, "Depositing rime fog"},
		{57, "Freezing Drizzle: Dense intensity"},
		{61, "Rain: Slight intensity"},
		{82, "Rain showers: Violent intensity"},
		{95, "Thunderstorm: Slight or moderate"},
		{99, "Thunderstorm with heavy hail"},
	}
	for _, c := range cases {
		if got := Describe(c.code); got != c.want {
			t.Fatalf("Describe(%d) = %q, want %q", c.code, got, c.want)
		}
	}
	if n := Standard().Len(); n != 28 {
		t.Fatalf("Standard().Len() = %d, want 28", n)
	}
}

func TestDescribe_UnknownEmbedsCode(t *testing.T) {
	if got := Describe(999); got != "Unknown code: 999" {
		t.Fatalf("Describe(999) = %q", got)
	}
	for _, code := range []int{-1, -42, 4, 50, 100, 1 << 20} {
		got := Describe(code)
		if !strings.HasPrefix(got, UnknownPrefix) {
			t.Fatalf("Describe(%d) = %q, want fallback", code, got)
		}
		if !strings.Contains(got, strconv.Itoa(code)) {
			t.Fatalf("Describe(%d) = %q, missing code", code, got)
		}
	}
}

func TestDescribe_Idempotent(t *testing.T) {
	for _, code := range append(Standard().Codes(), -5, 7, 1000) {
		if a, b := Describe(code), Describe(code); a != b {
			t.Fatalf("Describe(%d) not stable: %q vs %q", code, a, b)
		}
	}
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	src := map[int]string{1: "one"}
	c := NewCatalog(src)
	src[1] = "changed"
	src[2] = "two"

	if got := c.Describe(1); got != "one" {
		t.Fatalf("catalog saw caller mutation: %q", got)
	}
	if _, ok := c.Lookup(2); ok {
		t.Fatalf("catalog saw caller insert")
	}
}

func TestCatalog_ZeroValueAndCodes(t *testing.T) {
	var c Catalog
	if got := c.Describe(0); got != "Unknown code: 0" {
		t.Fatalf("zero Catalog Describe(0) = %q", got)
	}
	if c.Len() != 0 || len(c.Codes()) != 0 {
		t.Fatalf("zero Catalog should be empty")
	}

	codes := Standard().Codes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("Codes not ascending at %d: %v", i, codes)
		}
	}
	if codes[0] != 0 || codes[len(codes)-1] != 99 {
		t.Fatalf("Codes bounds = %d..%d", codes[0], codes[len(codes)-1])
	}
}
