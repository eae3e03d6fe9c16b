// Package wmo maps WMO weather interpretation codes to display text
package wmo

import (
	"slices"
	"strconv"
)

// UnknownPrefix starts the fallback text for codes missing from a catalog
const UnknownPrefix = "Unknown code: "

// Catalog is a read-only code to description table
// the zero value is usable and describes every code as unknown
type Catalog struct {
	m map[int]string
}

// NewCatalog builds a Catalog from entries, the map is copied so later
// writes by the caller do not leak in
func NewCatalog(entries map[int]string) Catalog {
	m := make(map[int]string, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return Catalog{m: m}
}

// Describe returns the text for code, or the fallback embedding the code
func (c Catalog) Describe(code int) string {
	if s, ok := c.m[code]; ok {
		return s
	}
	return UnknownPrefix + strconv.Itoa(code)
}

// Lookup returns the text for code and whether it is known
func (c Catalog) Lookup(code int) (string, bool) {
	s, ok := c.m[code]
	return s, ok
}

// Codes returns the known codes in ascending order
func (c Catalog) Codes() []int {
	out := make([]int, 0, len(c.m))
	for k := range c.m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Len reports the number of known codes
func (c Catalog) Len() int { return len(c.m) }

// https://open-meteo.com/en/docs (WMO Weather interpretation codes)
var standard = NewCatalog(map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Drizzle: Light intensity",
	53: "Drizzle: Moderate intensity",
	55: "Drizzle: Dense intensity",
	56: "Freezing Drizzle: Light intensity",
	57: "Freezing Drizzle: Dense intensity",
	61: "Rain: Slight intensity",
	63: "Rain: Moderate intensity",
	65: "Rain: Heavy intensity",
	66: "Freezing Rain: Light intensity",
	67: "Freezing Rain: Heavy intensity",
	71: "Snow fall: Slight intensity",
	73: "Snow fall: Moderate intensity",
	75: "Snow fall: Heavy intensity",
	77: "Snow grains",
	80: "Rain showers: Slight intensity",
	81: "Rain showers: Moderate intensity",
	82: "Rain showers: Violent intensity",
	85: "Snow showers: Slight intensity",
	86: "Snow showers: Heavy intensity",
	95: "Thunderstorm: Slight or moderate",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
})

// Standard returns the process-wide catalog of Open-Meteo daily codes
func Standard() Catalog { return standard }

// Describe is shorthand for Standard().Describe
func Describe(code int) string { return standard.Describe(code) }
