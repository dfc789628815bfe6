package platform

import (
	"regexp"
	"strconv"
	"strings"
)

// Progress is one parsed "[download]" status line
type Progress struct {
	Percent float64
	Total   string
	Speed   string
	ETA     string
}

// Fraction returns Percent scaled to 0..1
func (p Progress) Fraction() float64 {
	f := p.Percent / 100
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

var progressPattern = regexp.MustCompile(
	`^\[download\]\s+(\d+(?:\.\d+)?)%(?:\s+of\s+~?\s*(\S+))?(?:\s+in\s+\S+)?(?:\s+at\s+(\S+))?(?:\s+ETA\s+(\S+))?`,
)

// ParseProgress extracts download progress from a yt-dlp output line
func ParseProgress(line string) (Progress, bool) {
	m := progressPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Progress{}, false
	}

	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Progress{}, false
	}

	return Progress{
		Percent: pct,
		Total:   m[2],
		Speed:   m[3],
		ETA:     m[4],
	}, true
}
