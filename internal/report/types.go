// Package report assembles per-file analysis results into renderable
// reports: tables for the terminal and markdown, structured data for JSON
// and YAML.
package report

import (
	"github.com/kdvornik/metra/pkg/parser"
	"github.com/kdvornik/metra/pkg/spaces"
)

// File pairs a source file with its computed space tree.
type File struct {
	Path     string            `json:"path"`
	Language parser.Language   `json:"language"`
	Spaces   *spaces.FuncSpace `json:"spaces"`
}

// OpsFile pairs a source file with its operator and operand tree.
type OpsFile struct {
	Path     string          `json:"path"`
	Language parser.Language `json:"language"`
	Ops      *spaces.Ops     `json:"ops"`
}

// Maintainability rank thresholds on the original MI scale.
const (
	miGoodThreshold     = 85
	miModerateThreshold = 65
)

// Rank buckets an original-scale maintainability index into good, moderate,
// or low.
func Rank(mi float64) string {
	switch {
	case mi >= miGoodThreshold:
		return "good"
	case mi >= miModerateThreshold:
		return "moderate"
	default:
		return "low"
	}
}
