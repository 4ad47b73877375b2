package model

import (
	"strings"
)

type ScoringType string

const (
	SCORING_UNKNOWN   ScoringType = "UNK"
	SCORING_STANDARD  ScoringType = "standard"
	SCORING_KDA       ScoringType = "kda"
	SCORING_OBJECTIVE ScoringType = "objective"
)

func ParseScoringType(s string) ScoringType {
	s = strings.ToLower(s)
	switch s {
	case "standard":
		return SCORING_STANDARD
	case "kda":
		return SCORING_KDA
	case "objective", "obj":
		return SCORING_OBJECTIVE
	default:
		return SCORING_UNKNOWN
	}
}
