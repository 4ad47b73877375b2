package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Region struct {
	name  string
	title string
	nick  []string // Any other names used for the region, e.g. Korea for LCK
}

func (r *Region) String() string {
	return r.name
}

func (r *Region) Friendly() string {
	if r.title == "" {
		return r.name
	}
	return fmt.Sprintf("%s (%s)", r.name, r.title)
}

func (r *Region) Equals(o *Region) bool {
	if o == nil {
		return false
	}

	if r == o {
		return true
	}

	return r.name == o.name &&
		r.title == o.title &&
		arrayEquals(r.nick, o.nick)
}

func (r *Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.name)
}

func (r *Region) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	*r = *ParseRegion(name)
	return nil
}

var (
	// REGION_INTL is the catch-all for players without a known
	// competitive region.
	REGION_INTL *Region = &Region{name: "INTL", title: "International"}

	REGION_LCK   *Region = &Region{name: "LCK", title: "Korea", nick: []string{"Korea"}}
	REGION_LPL   *Region = &Region{name: "LPL", title: "China", nick: []string{"China"}}
	REGION_LEC   *Region = &Region{name: "LEC", title: "Europe", nick: []string{"EU", "Europe", "EULCS"}}
	REGION_LCS   *Region = &Region{name: "LCS", title: "North America", nick: []string{"NA", "NALCS"}}
	REGION_PCS   *Region = &Region{name: "PCS", title: "Pacific", nick: []string{"LMS"}}
	REGION_VCS   *Region = &Region{name: "VCS", title: "Vietnam", nick: []string{"Vietnam"}}
	REGION_CBLOL *Region = &Region{name: "CBLOL", title: "Brazil", nick: []string{"BR", "Brazil"}}
	REGION_LLA   *Region = &Region{name: "LLA", title: "Latin America", nick: []string{"LATAM"}}
	REGION_LJL   *Region = &Region{name: "LJL", title: "Japan", nick: []string{"Japan"}}

	regionMap map[string]*Region = buildRegionMap()
)

func ParseRegion(name string) *Region {
	r := regionMap[strings.ToLower(name)]
	if r == nil {
		return REGION_INTL
	}
	return r
}

func buildRegionMap() map[string]*Region {
	regions := []*Region{
		REGION_LCK, REGION_LPL, REGION_LEC, REGION_LCS, REGION_PCS,
		REGION_VCS, REGION_CBLOL, REGION_LLA, REGION_LJL,
		// Other
		REGION_INTL,
	}

	regionMap := make(map[string]*Region)
	for _, r := range regions {
		regionMap[strings.ToLower(r.name)] = r

		for _, n := range r.nick {
			regionMap[strings.ToLower(n)] = r
		}
	}
	return regionMap
}

func arrayEquals(a, b []string) bool {
	if a == nil && b == nil {
		return true
	}

	if (a == nil && b != nil) || (a != nil && b == nil) {
		return false
	}

	if len(a) != len(b) {
		return false
	}

	for i, v := range a {
		if v != b[i] {
			return false
		}
	}

	return true
}
