package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	cycler := game.NewCycler(4, 3)
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 1, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 2, cycler.Current())
	cycler.Reverse()
	cycler.Next()
	assert.Equal(t, 3, cycler.Current())
	cycler.Next()
	assert.Equal(t, 0, cycler.Current())
}

func TestForEach(t *testing.T) {
	cycler := game.NewCycler(4, 2)
	cycler.Reverse()

	var seats []int
	cycler.ForEach(func(seat int) {
		seats = append(seats, seat)
	})

	require.Equal(t, []int{0, 1, 2, 3}, seats)
}

func TestNext(t *testing.T) {
	scenarios := []struct {
		description string
		reverse     bool
		expected    []int
	}{
		{
			description: "clockwise_wraps_to_first_seat",
			expected:    []int{1, 2, 3, 0},
		},
		{
			description: "counter_clockwise_wraps_to_last_seat",
			reverse:     true,
			expected:    []int{3, 2, 1, 0},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			cycler := game.NewCycler(4, 0)
			if scenario.reverse {
				cycler.Reverse()
			}

			var seats []int
			for range scenario.expected {
				seats = append(seats, cycler.Next())
			}
			require.Equal(t, scenario.expected, seats)
		})
	}
}

func TestPeek(t *testing.T) {
	cycler := game.NewCycler(3, 0)
	assert.Equal(t, 1, cycler.Peek())
	assert.Equal(t, 0, cycler.Current())
	cycler.Reverse()
	assert.Equal(t, 2, cycler.Peek())
	assert.Equal(t, 0, cycler.Current())
}

func TestReverse(t *testing.T) {
	t.Run("flips_direction", func(t *testing.T) {
		cycler := game.NewCycler(4, 3)
		assert.Equal(t, game.Clockwise, cycler.Direction())
		assert.Equal(t, game.CounterClockwise, cycler.Reverse())
		assert.Equal(t, game.Clockwise, cycler.Reverse())
	})

	t.Run("changes_the_following_seats", func(t *testing.T) {
		cycler := game.NewCycler(4, 3)
		assert.Equal(t, 0, cycler.Next())
		assert.Equal(t, 1, cycler.Next())
		cycler.Reverse()
		assert.Equal(t, 0, cycler.Next())
		assert.Equal(t, 3, cycler.Next())
		assert.Equal(t, 2, cycler.Next())
		cycler.Reverse()
		assert.Equal(t, 3, cycler.Next())
		assert.Equal(t, 0, cycler.Next())
	})

	t.Run("two_seats_alternate_in_both_directions", func(t *testing.T) {
		cycler := game.NewCycler(2, 0)
		cycler.Reverse()
		assert.Equal(t, 1, cycler.Next())
		assert.Equal(t, 0, cycler.Next())
	})
}
