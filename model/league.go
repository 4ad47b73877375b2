package model

import (
	"slices"
	"time"
)

const (
	MinLeagueTeams = 2
	MaxLeagueTeams = 16
)

type League struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	AdminID   int64       `json:"admin_id"`
	MaxTeams  int         `json:"max_teams"`
	Public    bool        `json:"is_public"`
	DraftTime time.Time   `json:"draft_time"`
	Scoring   ScoringType `json:"scoring_type"`
	// Participants holds the user IDs of everyone in the league,
	// including the admin.
	Participants []int64 `json:"participants"`
	// DraftOrder is nil until the admin generates one. When set it is a
	// permutation of Participants.
	DraftOrder []int64   `json:"draft_order,omitempty"`
	Created    time.Time `json:"created"`
	Updated    time.Time `json:"updated"`
}

// LeagueUpdate holds the league settings an admin is allowed to change
// after the league has been created.
type LeagueUpdate struct {
	Name      string      `json:"name"`
	MaxTeams  int         `json:"max_teams"`
	Public    bool        `json:"is_public"`
	DraftTime time.Time   `json:"draft_time"`
	Scoring   ScoringType `json:"scoring_type"`
}

func (l *League) HasParticipant(userID int64) bool {
	return slices.Contains(l.Participants, userID)
}

func (l *League) IsFull() bool {
	return len(l.Participants) >= l.MaxTeams
}
