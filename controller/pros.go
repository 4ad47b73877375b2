package controller

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/model"
)

func (c *controller) GetProPlayer(ctx context.Context, id string) (*model.ProPlayer, error) {
	return c.pros.GetProPlayer(ctx, id)
}

func (c *controller) ListProPlayers(ctx context.Context) ([]model.ProPlayer, error) {
	return c.pros.ListProPlayers(ctx)
}

func (c *controller) InsertProPlayer(ctx context.Context, p *model.ProPlayer) (string, error) {
	if strings.TrimSpace(p.Gamertag) == "" {
		return "", fmt.Errorf("%w: gamertag is required", ErrValidation)
	}
	return c.pros.InsertProPlayer(ctx, p)
}

// InsertProPlayers inserts pros one at a time and stops at the first
// failure, returning the IDs inserted so far along with the error.
func (c *controller) InsertProPlayers(ctx context.Context, pros []model.ProPlayer) ([]string, error) {
	ids := make([]string, 0, len(pros))
	for i := range pros {
		id, err := c.InsertProPlayer(ctx, &pros[i])
		if err != nil {
			return ids, fmt.Errorf("error inserting pro player %q: %w", pros[i].Gamertag, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *controller) UpdateProPlayers(ctx context.Context) error {
	start := time.Now()
	log.Printf("pro player stats update starting at %v", start.Format(time.DateTime))

	pros, err := c.feed.LoadProPlayers()
	if err != nil {
		return err
	}

	for i := range pros {
		if err := c.pros.UpsertProPlayer(ctx, &pros[i]); err != nil {
			return fmt.Errorf("error upserting pro player (%s): %w", pros[i].Gamertag, err)
		}
	}

	log.Printf("pro player stats update finished, took %v", time.Since(start))
	return nil
}

func (c *controller) RunPeriodicStatsUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := c.UpdateProPlayers(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}
