package text

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/OpenAEC-Foundation/draft2d"
)

// directionalRun is a maximal run of text with a uniform base direction.
type directionalRun struct {
	text string
	rtl  bool
}

// splitDirectionalRuns splits a line into its bidi runs so that shaped
// measurement feeds every run to the shaper with the correct direction.
// Lines that fail bidi resolution measure as a single LTR run.
func splitDirectionalRuns(line string) []directionalRun {
	var p bidi.Paragraph
	if _, err := p.SetString(line); err != nil {
		draft2d.Logger().Warn("bidi resolution failed, measuring as LTR", "err", err)
		return []directionalRun{{text: line}}
	}
	order, err := p.Order()
	if err != nil || order.NumRuns() == 0 {
		return []directionalRun{{text: line}}
	}
	runs := make([]directionalRun, 0, order.NumRuns())
	for i := 0; i < order.NumRuns(); i++ {
		r := order.Run(i)
		runs = append(runs, directionalRun{
			text: r.String(),
			rtl:  r.Direction() == bidi.RightToLeft,
		})
	}
	return runs
}
