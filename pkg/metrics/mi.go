package metrics

import (
	"encoding/json"
	"math"
)

// Mi holds the maintainability score of a space in three formula variants.
//
// The score is not cumulative: it is recomputed for each space from that
// space's already-merged loc, cyclomatic, and halstead metrics, so Merge is a
// no-op kept only for symmetry with the other accumulators.
type Mi struct {
	original     float64
	sei          float64
	visualStudio float64
}

// Merge is a no-op: maintainability is never summed across spaces.
func (m *Mi) Merge(_ *Mi) {}

// ComputeMi derives the three maintainability variants from a space's merged
// line, branch, and token metrics. Degenerate inputs (zero volume or zero
// lines) contribute 0 to the logarithmic terms rather than -Inf.
func ComputeMi(loc *Loc, cyclomatic *Cyclomatic, halstead *Halstead, mi *Mi) {
	volume := halstead.Volume()
	sloc := loc.Sloc()
	branches := cyclomatic.Sum()

	lnVolume := safeLn(volume)
	lnSloc := safeLn(sloc)
	log2Volume := safeLog2(volume)
	log2Sloc := safeLog2(sloc)

	commentFraction := 0.0
	if sloc > 0 {
		commentFraction = loc.Cloc() / sloc
	}

	mi.original = 171 - 5.2*lnVolume - 0.23*branches - 16.2*lnSloc
	mi.sei = 171 - 5.2*log2Volume - 0.23*branches - 16.2*log2Sloc +
		50*math.Sin(math.Sqrt(2.4*commentFraction))
	mi.visualStudio = math.Max(0, (171-5.2*lnVolume-0.23*branches-16.2*lnSloc)*100/171)
}

// Original returns the classic three-factor maintainability index.
func (m Mi) Original() float64 { return m.original }

// Sei returns the SEI variant, which rewards comment density.
func (m Mi) Sei() float64 { return m.sei }

// VisualStudio returns the Visual Studio variant, rescaled to [0, 100].
func (m Mi) VisualStudio() float64 { return m.visualStudio }

func (m Mi) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		"mi_original":      m.Original(),
		"mi_sei":           m.Sei(),
		"mi_visual_studio": m.VisualStudio(),
	})
}

func safeLn(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log(x)
}

func safeLog2(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(x)
}
