package session_test

import (
	"math/rand"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/ratel-online/uno/uno/session"
	"github.com/stretchr/testify/require"
)

func newBots(t *testing.T, amount int) []game.Player {
	t.Helper()
	bots, err := player.CreatePlayers(nil, player.Difficulties(amount, player.Easy, true), rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	return bots
}

func TestRun(t *testing.T) {
	bots := newBots(t, 4)
	s, err := session.New(bots, session.Settings{
		Rounds:  3,
		Options: []game.Option{game.WithRand(rand.New(rand.NewSource(9)))},
	})
	require.NoError(t, err)

	tally, err := s.Run()
	require.NoError(t, err)
	require.Equal(t, 3, tally.Rounds())

	wins := 0
	for _, standing := range tally.Standings() {
		wins += standing.Wins
	}
	require.Equal(t, 3, wins)
}

func TestNew(t *testing.T) {
	_, err := session.New(newBots(t, 2), session.Settings{Rounds: 0})
	require.ErrorIs(t, err, consts.ErrorsConfigInvalid)
}

func TestRunStopsOnInvalidMatch(t *testing.T) {
	s, err := session.New(newBots(t, 1), session.Settings{Rounds: 2})
	require.NoError(t, err)

	tally, err := s.Run()
	require.ErrorIs(t, err, consts.ErrorsGamePlayersInvalid)
	require.Equal(t, 0, tally.Rounds())
}
