package pdf

import (
	"math"
	"strings"
)

// textRun is one positioned string from a page content stream
type textRun struct {
	X, Y, W float64
	S       string
}

// assembleText joins runs in content order, starting a new line when the
// baseline moves by more than YTolerance and inserting a space when the
// horizontal gap exceeds XTolerance.
func assembleText(runs []textRun, config *textExtractionConfig) string {
	var b strings.Builder
	var lastY, lastX1 float64
	var lastSpace, started bool

	for _, r := range runs {
		if r.S == "" {
			continue
		}

		if started {
			switch {
			case math.Abs(r.Y-lastY) > config.YTolerance:
				b.WriteByte('\n')
			case r.X-lastX1 > config.XTolerance && !lastSpace && !strings.HasPrefix(r.S, " "):
				b.WriteByte(' ')
			}
		}

		b.WriteString(r.S)
		started = true
		lastY = r.Y
		lastX1 = r.X + r.W
		lastSpace = strings.HasSuffix(r.S, " ")
	}

	return b.String()
}
