package mockfeed

import (
	"github.com/YassineAssim23/eFantasyREPO/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadProPlayers() ([]model.ProPlayer, error) {
	args := c.Called()

	var r []model.ProPlayer
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ProPlayer)
	}
	return r, args.Error(1)
}
