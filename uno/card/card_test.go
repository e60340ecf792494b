package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestWithColor(t *testing.T) {
	t.Run("assigns_color_to_wild_card", func(t *testing.T) {
		colored, err := card.WithColor(card.NewWildCard(), color.Green)
		require.NoError(t, err)
		require.Equal(t, color.Green, colored.Color())
		require.Equal(t, card.KindWild, colored.Kind())
	})

	t.Run("assigns_color_to_wild_draw_four_card", func(t *testing.T) {
		colored, err := card.WithColor(card.NewWildDrawFourCard(), color.Yellow)
		require.NoError(t, err)
		require.Equal(t, color.Yellow, colored.Color())
		require.Equal(t, card.KindWildDrawFour, colored.Kind())
	})

	t.Run("rejects_colored_cards", func(t *testing.T) {
		for _, c := range []card.Card{
			card.NewNumberCard(color.Red, 3),
			card.NewSkipCard(color.Red),
			card.NewReverseCard(color.Red),
			card.NewDrawTwoCard(color.Red),
		} {
			result, err := card.WithColor(c, color.Blue)
			require.ErrorIs(t, err, card.ErrNotWild)
			require.Equal(t, c, result)
		}
	})

	t.Run("rejects_missing_color", func(t *testing.T) {
		_, err := card.WithColor(card.NewWildCard(), nil)
		require.ErrorIs(t, err, card.ErrNoColor)
	})

	t.Run("leaves_original_card_colorless", func(t *testing.T) {
		wild := card.NewWildCard()
		_, err := card.WithColor(wild, color.Red)
		require.NoError(t, err)
		require.Nil(t, wild.Color())
	})
}

func TestColorless(t *testing.T) {
	colored, err := card.WithColor(card.NewWildDrawFourCard(), color.Blue)
	require.NoError(t, err)
	require.Equal(t, card.NewWildDrawFourCard(), card.Colorless(colored))
	require.Equal(t, card.NewSkipCard(color.Red), card.Colorless(card.NewSkipCard(color.Red)))
}

func TestEqual(t *testing.T) {
	coloredWild, _ := card.WithColor(card.NewWildCard(), color.Red)
	otherColoredWild, _ := card.WithColor(card.NewWildCard(), color.Blue)
	coloredDrawFour, _ := card.WithColor(card.NewWildDrawFourCard(), color.Red)

	scenarios := []struct {
		description string
		left        card.Card
		right       card.Card
		expected    bool
	}{
		{"same_number_cards", card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Red, 5), true},
		{"number_cards_with_different_number", card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Red, 6), false},
		{"number_cards_with_different_color", card.NewNumberCard(color.Red, 5), card.NewNumberCard(color.Blue, 5), false},
		{"skip_cards_with_same_color", card.NewSkipCard(color.Green), card.NewSkipCard(color.Green), true},
		{"skip_cards_with_different_color", card.NewSkipCard(color.Green), card.NewSkipCard(color.Blue), false},
		{"skip_and_reverse", card.NewSkipCard(color.Green), card.NewReverseCard(color.Green), false},
		{"colored_wild_and_colorless_wild", coloredWild, card.NewWildCard(), true},
		{"wilds_with_different_colors", coloredWild, otherColoredWild, true},
		{"wild_and_draw_four", coloredWild, coloredDrawFour, false},
		{"colored_draw_four_and_colorless_draw_four", coloredDrawFour, card.NewWildDrawFourCard(), true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.left.Equal(scenario.right))
		})
	}
}

func TestActions(t *testing.T) {
	require.Empty(t, card.NewNumberCard(color.Red, 1).Actions())
	require.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.NewSkipCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.NewReverseCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewDrawCardsAction(2)}, card.NewDrawTwoCard(color.Red).Actions())
	require.Equal(t, []action.Action{action.NewPickColorAction()}, card.NewWildCard().Actions())
	require.Equal(t, []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
	}, card.NewWildDrawFourCard().Actions())
}

func TestKind(t *testing.T) {
	require.True(t, card.KindDrawTwo.Stackable())
	require.True(t, card.KindWildDrawFour.Stackable())
	require.False(t, card.KindSkip.Stackable())
	require.False(t, card.KindWild.Stackable())
	require.False(t, card.IsAction(card.NewNumberCard(color.Red, 0)))
	require.True(t, card.IsAction(card.NewWildCard()))
	require.Equal(t, "WildDrawFour", card.KindWildDrawFour.String())
}
