// Package holidays computes builtin public-holiday lists for the curated
// set of countries the roster supports.
package holidays

import (
	"fmt"
	"sort"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/de"
	"github.com/rickar/cal/v2/dk"
	"github.com/rickar/cal/v2/fi"
	"github.com/rickar/cal/v2/gb"
	"github.com/rickar/cal/v2/nl"
	"github.com/rickar/cal/v2/no"
	"github.com/rickar/cal/v2/se"

	"github.com/lsandini/OnCall/pkg/models"
)

// Country is a supported holiday calendar
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var countries = []Country{
	{Code: "FI", Name: "Finland"},
	{Code: "SE", Name: "Sweden"},
	{Code: "NO", Name: "Norway"},
	{Code: "DK", Name: "Denmark"},
	{Code: "DE", Name: "Germany"},
	{Code: "GB", Name: "United Kingdom"},
	{Code: "NL", Name: "Netherlands"},
}

var definitions = map[string][]*cal.Holiday{
	"FI": fi.Holidays,
	"SE": se.Holidays,
	"NO": no.Holidays,
	"DK": dk.Holidays,
	"DE": de.Holidays,
	"GB": gb.Holidays,
	"NL": nl.Holidays,
}

// SupportedCountries returns the curated country list
func SupportedCountries() []Country {
	return countries
}

// ForYear calculates the public holidays of one country for one year,
// sorted by date
func ForYear(code string, year int) ([]models.Holiday, error) {
	defs, ok := definitions[code]
	if !ok {
		return nil, fmt.Errorf("unsupported country %q", code)
	}

	out := make([]models.Holiday, 0, len(defs))
	for _, h := range defs {
		actual, _ := h.Calc(year)
		if actual.IsZero() {
			continue
		}
		out = append(out, models.Holiday{
			Date: fmt.Sprintf("%04d-%02d-%02d", actual.Year(), int(actual.Month()), actual.Day()),
			Name: h.Name,
			Type: "public",
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
