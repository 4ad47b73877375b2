package statsfeed

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/YassineAssim23/eFantasyREPO/model"
)

// Client fetches the latest pro player statistics export from the
// stats provider.
type Client interface {
	LoadProPlayers() ([]model.ProPlayer, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(feedURL string) (Client, error) {
	if feedURL == "" {
		return nil, errors.New("stats feed url must be provided")
	}

	c := &client{
		url: feedURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:        url,
		httpClient: &http.Client{},
	}
}

func (c *client) LoadProPlayers() ([]model.ProPlayer, error) {
	req, err := http.NewRequest(http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	players, err := ParseExport(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing response from stats feed: %w", err)
	}

	return players, nil
}
