package model

import (
	"strconv"
	"time"
)

// Well-known stat keys produced by the stats feed. The feed can carry
// arbitrary columns, these are the ones the scoring code cares about.
const (
	StatKDA         = "KDA"
	StatCSPerMin    = "CSM"
	StatVisionScore = "VSPM"
	StatGoldPerMin  = "GPM"
	StatWinRate     = "WR%"
)

type ProPlayer struct {
	// ID is the hex form of the document's MongoDB ObjectID. It is empty
	// for players that have not been stored yet.
	ID       string  `json:"id,omitempty"`
	Gamertag string  `json:"gamertag"`
	Team     string  `json:"team"`
	Region   *Region `json:"region,omitempty"`
	Country  string  `json:"country,omitempty"`
	// Stats holds the raw stat columns from the feed, keyed by the
	// feed's header names. Values are kept as strings because the feed
	// mixes numbers, percentages and dashes for missing data.
	Stats   map[string]string `json:"stats,omitempty"`
	Created time.Time         `json:"created,omitempty"`
	Updated time.Time         `json:"updated,omitempty"`
}

// Stat parses the named stat as a float. A trailing '%' is allowed so
// that win rates and kill participation parse directly.
func (p *ProPlayer) Stat(name string) (float64, bool) {
	raw, ok := p.Stats[name]
	if !ok {
		return 0, false
	}

	raw = trimPercent(raw)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (p *ProPlayer) KDA() (float64, bool) {
	return p.Stat(StatKDA)
}

func (p *ProPlayer) CSPerMin() (float64, bool) {
	return p.Stat(StatCSPerMin)
}

func (p *ProPlayer) VisionScore() (float64, bool) {
	return p.Stat(StatVisionScore)
}

func (p *ProPlayer) FormattedUpdatedTime() string {
	if p.Updated.IsZero() {
		return "never"
	}
	return p.Updated.Format(time.DateTime)
}

func trimPercent(s string) string {
	if len(s) > 0 && s[len(s)-1] == '%' {
		return s[:len(s)-1]
	}
	return s
}
