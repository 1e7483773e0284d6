package spaces

import (
	"fmt"
	"strings"
)

// Metric names one of the computable metric families.
type Metric string

const (
	MetricNArgs      Metric = "nargs"
	MetricNExits     Metric = "nexits"
	MetricCyclomatic Metric = "cyclomatic"
	MetricHalstead   Metric = "halstead"
	MetricLoc        Metric = "loc"
	MetricNom        Metric = "nom"
	MetricMi         Metric = "mi"
)

// AllMetrics lists every metric family in canonical order.
var AllMetrics = []Metric{
	MetricNArgs, MetricNExits, MetricCyclomatic,
	MetricHalstead, MetricLoc, MetricNom, MetricMi,
}

// ParseMetric resolves a metric name, case-insensitively.
func ParseMetric(name string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllMetrics {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", name)
}

// Selection is the set of metric families to compute. A nil or empty
// Selection selects everything.
//
// Nom is always computed regardless of the selection: it supplies the
// denominator of the nargs, nexits, and cyclomatic averages.
type Selection map[Metric]struct{}

// NewSelection builds a selection from the given metrics. Selecting mi pulls
// in cyclomatic, loc, and halstead, which its formulas read.
func NewSelection(selected ...Metric) Selection {
	if len(selected) == 0 {
		return nil
	}
	s := make(Selection, len(selected))
	for _, m := range selected {
		s[m] = struct{}{}
	}
	if _, ok := s[MetricMi]; ok {
		s[MetricCyclomatic] = struct{}{}
		s[MetricLoc] = struct{}{}
		s[MetricHalstead] = struct{}{}
	}
	return s
}

// ParseSelection builds a selection from metric names.
func ParseSelection(names []string) (Selection, error) {
	if len(names) == 0 {
		return nil, nil
	}
	selected := make([]Metric, 0, len(names))
	for _, name := range names {
		m, err := ParseMetric(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, m)
	}
	return NewSelection(selected...), nil
}

// Has reports whether a metric family is selected.
func (s Selection) Has(m Metric) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[m]
	return ok
}
