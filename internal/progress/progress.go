// Package progress renders a terminal progress bar while files are analyzed.
package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Tracker counts analyzed files against a known total. The bar draws on
// stderr so piped report output stays clean.
type Tracker struct {
	bar *progressbar.ProgressBar
}

// NewTracker creates a bar for the given number of files.
func NewTracker(label string, total int) *Tracker {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(label),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &Tracker{bar: bar}
}

// Tick records one analyzed file. Safe for concurrent use; fileproc workers
// call it directly.
func (t *Tracker) Tick() {
	t.bar.Add(1)
}

// FinishSuccess completes and clears the bar so the report starts on a clean
// line.
func (t *Tracker) FinishSuccess() {
	t.bar.Finish()
	t.bar.Clear()
}
