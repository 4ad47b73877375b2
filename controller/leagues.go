package controller

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/db"
	"github.com/YassineAssim23/eFantasyREPO/model"
)

func (c *controller) CreateLeague(ctx context.Context, adminID int64, name string, maxTeams int, public bool, draftTime time.Time, scoring string) (*model.League, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrValidation)
	}
	if maxTeams < model.MinLeagueTeams || maxTeams > model.MaxLeagueTeams {
		return nil, fmt.Errorf("%w: max teams must be between %d and %d", ErrValidation, model.MinLeagueTeams, model.MaxLeagueTeams)
	}
	if !draftTime.After(c.clock.Now()) {
		return nil, fmt.Errorf("%w: draft time must be in the future", ErrValidation)
	}
	st := model.ParseScoringType(scoring)
	if st == model.SCORING_UNKNOWN {
		return nil, fmt.Errorf("%w: unknown scoring type %q", ErrValidation, scoring)
	}

	l := &model.League{
		Name:         name,
		AdminID:      adminID,
		MaxTeams:     maxTeams,
		Public:       public,
		DraftTime:    draftTime.UTC(),
		Scoring:      st,
		Participants: []int64{adminID},
	}
	if err := c.db.AddLeague(ctx, l); err != nil {
		return nil, fmt.Errorf("error saving league: %w", err)
	}
	return l, nil
}

func (c *controller) GetLeague(ctx context.Context, id int64) (*model.League, error) {
	return c.db.GetLeague(ctx, id)
}

func (c *controller) ListLeagues(ctx context.Context, viewerID int64) ([]model.League, error) {
	return c.db.ListLeagues(ctx, viewerID)
}

func (c *controller) UpdateLeague(ctx context.Context, userID, leagueID int64, upd *model.LeagueUpdate) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if l.AdminID != userID {
		return nil, ErrNotLeagueAdmin
	}

	name := strings.TrimSpace(upd.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: league name is required", ErrValidation)
	}
	if upd.MaxTeams < model.MinLeagueTeams || upd.MaxTeams > model.MaxLeagueTeams {
		return nil, fmt.Errorf("%w: max teams must be between %d and %d", ErrValidation, model.MinLeagueTeams, model.MaxLeagueTeams)
	}
	if upd.MaxTeams < len(l.Participants) {
		return nil, fmt.Errorf("%w: max teams cannot be below the current participant count", ErrValidation)
	}
	if upd.Scoring == model.SCORING_UNKNOWN {
		return nil, fmt.Errorf("%w: unknown scoring type", ErrValidation)
	}

	l.Name = name
	l.MaxTeams = upd.MaxTeams
	l.Public = upd.Public
	l.DraftTime = upd.DraftTime.UTC()
	l.Scoring = upd.Scoring
	if err := c.db.UpdateLeague(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *controller) DeleteLeague(ctx context.Context, userID, leagueID int64) error {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return err
	}
	if l.AdminID != userID {
		return ErrNotLeagueAdmin
	}
	return c.db.DeleteLeague(ctx, leagueID)
}

func (c *controller) JoinLeague(ctx context.Context, leagueID, userID int64) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if l.HasParticipant(userID) {
		return nil, ErrAlreadyJoined
	}
	if !l.Public {
		return nil, ErrPrivateLeague
	}
	if l.IsFull() {
		return nil, ErrLeagueFull
	}
	if !c.clock.Now().Before(l.DraftTime) {
		return nil, ErrDraftStarted
	}

	return c.addParticipant(ctx, l, userID)
}

func (c *controller) InviteToLeague(ctx context.Context, leagueID, adminID, inviteeID int64) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if l.AdminID != adminID {
		return nil, ErrNotLeagueAdmin
	}
	if l.HasParticipant(inviteeID) {
		return nil, ErrAlreadyJoined
	}
	if l.IsFull() {
		return nil, ErrLeagueFull
	}
	if !c.clock.Now().Before(l.DraftTime) {
		return nil, ErrDraftStarted
	}
	// Only existing users can be invited.
	if _, err := c.db.GetUser(ctx, inviteeID); err != nil {
		return nil, err
	}

	return c.addParticipant(ctx, l, inviteeID)
}

// addParticipant commits a membership change. The capacity and
// duplicate checks the callers just made are only advisory, the append
// itself is guarded in the database so a concurrent join cannot take
// the same seat twice.
func (c *controller) addParticipant(ctx context.Context, l *model.League, userID int64) (*model.League, error) {
	if err := c.db.AddLeagueParticipant(ctx, l.ID, userID); err != nil {
		switch {
		case errors.Is(err, db.ErrAlreadyInLeague):
			return nil, ErrAlreadyJoined
		case errors.Is(err, db.ErrLeagueFull):
			return nil, ErrLeagueFull
		}
		return nil, err
	}

	l.Participants = append(l.Participants, userID)
	// The roster changed, so any generated draft order was cleared.
	l.DraftOrder = nil
	return l, nil
}

func (c *controller) LeaveLeague(ctx context.Context, leagueID, userID int64) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if l.AdminID == userID {
		return nil, ErrAdminCannotLeave
	}
	if !l.HasParticipant(userID) {
		return nil, ErrNotInLeague
	}

	if err := c.db.RemoveLeagueParticipant(ctx, leagueID, userID); err != nil {
		if errors.Is(err, db.ErrNotInLeague) {
			return nil, ErrNotInLeague
		}
		return nil, err
	}

	remaining := make([]int64, 0, len(l.Participants)-1)
	for _, p := range l.Participants {
		if p != userID {
			remaining = append(remaining, p)
		}
	}
	l.Participants = remaining
	l.DraftOrder = nil
	return l, nil
}

func (c *controller) GenerateDraftOrder(ctx context.Context, leagueID, userID int64) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if l.AdminID != userID {
		return nil, ErrNotLeagueAdmin
	}
	if !c.clock.Now().Before(l.DraftTime) {
		return nil, ErrDraftStarted
	}

	order := make([]int64, len(l.Participants))
	copy(order, l.Participants)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	if err := c.db.SetDraftOrder(ctx, leagueID, order); err != nil {
		return nil, err
	}
	l.DraftOrder = order
	return l, nil
}
