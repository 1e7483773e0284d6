package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Distribution describes how a per-file value is distributed across a run.
type Distribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary aggregates file-level metrics across an analysis run.
type Summary struct {
	Files      int          `json:"files"`
	Functions  float64      `json:"functions"`
	Sloc       float64      `json:"sloc"`
	Cyclomatic Distribution `json:"cyclomatic"`
	SlocDist   Distribution `json:"sloc_dist"`
	Mi         Distribution `json:"mi"`
}

// Summarize computes run-wide totals and per-file distributions. Files whose
// space tree is missing are skipped.
func Summarize(files []File) *Summary {
	s := &Summary{}

	var cyclomatic, sloc, mi []float64
	for _, f := range files {
		if f.Spaces == nil {
			continue
		}
		m := f.Spaces.Metrics
		s.Files++
		s.Functions += m.Nom.Total()
		s.Sloc += m.Loc.Sloc()

		cyclomatic = append(cyclomatic, m.Cyclomatic.Sum())
		sloc = append(sloc, m.Loc.Sloc())
		mi = append(mi, m.Mi.Original())
	}

	s.Cyclomatic = describe(cyclomatic)
	s.SlocDist = describe(sloc)
	s.Mi = describe(mi)
	return s
}

// describe reduces a sample to its distribution statistics. The standard
// deviation of fewer than two samples is 0, not NaN.
func describe(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	d := Distribution{
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		d.StdDev = stat.StdDev(sorted, nil)
	}
	return d
}
