package session_test

import (
	"bytes"
	"testing"

	"github.com/ratel-online/uno/uno/session"
	"github.com/stretchr/testify/require"
)

func TestTally(t *testing.T) {
	tally := session.NewTally([]string{"Annie", "Braum", "Caitlyn"})
	require.NoError(t, tally.Record("Caitlyn"))
	require.NoError(t, tally.Record("Braum"))
	require.NoError(t, tally.Record("Caitlyn"))
	require.Error(t, tally.Record("Nobody"))

	require.Equal(t, 3, tally.Rounds())
	require.Equal(t, 2, tally.Wins("Caitlyn"))
	require.Equal(t, 0, tally.Wins("Annie"))
	require.Equal(t, 0, tally.Wins("Nobody"))
	require.Equal(t, []session.Standing{
		{Name: "Caitlyn", Seat: 2, Wins: 2},
		{Name: "Braum", Seat: 1, Wins: 1},
		{Name: "Annie", Seat: 0, Wins: 0},
	}, tally.Standings())
}

func TestTallyRender(t *testing.T) {
	tally := session.NewTally([]string{"Annie", "Braum"})
	require.NoError(t, tally.Record("Braum"))

	output := &bytes.Buffer{}
	tally.Render(output)

	rendered := output.String()
	require.Contains(t, rendered, "PLAYER")
	require.Contains(t, rendered, "Braum")
	require.Contains(t, rendered, "Annie")
	require.Contains(t, rendered, "ROUNDS")
}
