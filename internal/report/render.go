package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kdvornik/metra/internal/output"
	"github.com/kdvornik/metra/pkg/spaces"
)

// Metrics builds the run report: one row per file plus a run summary.
// The structured data carries the full space trees.
func Metrics(files []File) *output.Report {
	sorted := append([]File(nil), files...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	summary := Summarize(sorted)

	rows := make([][]string, 0, len(sorted))
	for _, f := range sorted {
		if f.Spaces == nil {
			continue
		}
		m := f.Spaces.Metrics
		mi := m.Mi.Original()
		rows = append(rows, []string{
			f.Path,
			string(f.Language),
			fmt.Sprintf("%.0f", m.Nom.Total()),
			fmt.Sprintf("%.0f", m.Cyclomatic.Sum()),
			fmt.Sprintf("%.1f", m.Cyclomatic.Average()),
			fmt.Sprintf("%.0f", m.Loc.Sloc()),
			fmt.Sprintf("%.1f", mi),
			Rank(mi),
		})
	}

	return &output.Report{
		Title: "Code Metrics",
		Sections: []output.Renderable{
			output.NewTable(
				"Files",
				[]string{"File", "Language", "Functions", "CC", "CC/Fn", "SLOC", "MI", "Rank"},
				rows,
				nil,
				nil,
			),
			summarySection(summary),
		},
		Data: map[string]any{
			"files":   sorted,
			"summary": summary,
		},
	}
}

// Detail builds the per-space breakdown of a single file, one row per space
// in document order with nesting shown by indentation.
func Detail(f File) *output.Table {
	var rows [][]string
	var walk func(s *spaces.FuncSpace, depth int)
	walk = func(s *spaces.FuncSpace, depth int) {
		m := s.Metrics
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + s.Name,
			s.Kind.String(),
			fmt.Sprintf("%d-%d", s.StartLine, s.EndLine),
			fmt.Sprintf("%.0f", m.Cyclomatic.Sum()),
			fmt.Sprintf("%.0f", m.NExits.Total()),
			fmt.Sprintf("%.0f", m.NArgs.Total()),
			fmt.Sprintf("%.0f", m.Loc.Sloc()),
			fmt.Sprintf("%.1f", m.Halstead.Volume()),
			fmt.Sprintf("%.1f", m.Mi.Original()),
		})
		for _, child := range s.Spaces {
			walk(child, depth+1)
		}
	}
	if f.Spaces != nil {
		walk(f.Spaces, 0)
	}

	return output.NewTable(
		f.Path,
		[]string{"Space", "Kind", "Lines", "CC", "Exits", "Args", "SLOC", "Volume", "MI"},
		rows,
		nil,
		f,
	)
}

// Ops builds the operator and operand report, one row per space.
func Ops(files []OpsFile) *output.Report {
	sorted := append([]OpsFile(nil), files...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	var rows [][]string
	var walk func(o *spaces.Ops, depth int)
	walk = func(o *spaces.Ops, depth int) {
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + o.Name,
			o.Kind.String(),
			fmt.Sprintf("%d-%d", o.StartLine, o.EndLine),
			fmt.Sprintf("%d", len(o.Operators)),
			fmt.Sprintf("%d", len(o.Operands)),
		})
		for _, child := range o.Spaces {
			walk(child, depth+1)
		}
	}
	for _, f := range sorted {
		if f.Ops != nil {
			walk(f.Ops, 0)
		}
	}

	return &output.Report{
		Title: "Operators and Operands",
		Sections: []output.Renderable{
			output.NewTable(
				"Spaces",
				[]string{"Space", "Kind", "Lines", "Distinct Operators", "Distinct Operands"},
				rows,
				nil,
				nil,
			),
		},
		Data: map[string]any{"files": sorted},
	}
}

func summarySection(s *Summary) *output.Section {
	content := fmt.Sprintf(
		"Files: %d\nFunctions: %.0f\nTotal SLOC: %.0f\n"+
			"Cyclomatic per file: mean %.1f, median %.1f, max %.0f\n"+
			"MI per file: mean %.1f, min %.1f",
		s.Files, s.Functions, s.Sloc,
		s.Cyclomatic.Mean, s.Cyclomatic.Median, s.Cyclomatic.Max,
		s.Mi.Mean, s.Mi.Min,
	)
	return &output.Section{
		Title:   "Summary",
		Content: content,
		Data:    s,
	}
}
