package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/ui"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*ui.Prompter, *bytes.Buffer) {
	output := &bytes.Buffer{}
	return ui.NewPrompter(strings.NewReader(input), ui.NewPrinter(output, 0)), output
}

func TestPromptIntegerInRange(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    int
		expectedErr error
		reprompts   []string
	}{
		{
			description: "accepts_a_number_in_range",
			input:       "3\n",
			expected:    3,
		},
		{
			description: "reprompts_on_text",
			input:       "three\n3\n",
			expected:    3,
			reprompts:   []string{"Input invalid. 'three' is not a number."},
		},
		{
			description: "reprompts_when_out_of_range",
			input:       "9\n-1\n2\n",
			expected:    2,
			reprompts:   []string{"Input invalid. Enter a number from 0 to 5."},
		},
		{
			description: "reprompts_on_empty_line",
			input:       "\n  \n1",
			expected:    1,
			reprompts:   []string{"Input invalid. Enter some text."},
		},
		{
			description: "closed_input_is_an_error",
			input:       "x\n",
			expectedErr: consts.ErrorsInputClosed,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			prompter, output := newPrompter(scenario.input)
			number, err := prompter.PromptIntegerInRange(0, 5, "Pick a number")
			if scenario.expectedErr != nil {
				require.ErrorIs(t, err, scenario.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expected, number)
			for _, reprompt := range scenario.reprompts {
				require.Contains(t, output.String(), reprompt)
			}
		})
	}
}

func TestPromptCardSelection(t *testing.T) {
	cards := []card.Card{
		card.NewNumberCard(color.Red, 3),
		card.NewWildCard(),
	}

	t.Run("numbers_select_cards", func(t *testing.T) {
		prompter, output := newPrompter("2\n")
		selected, err := prompter.PromptCardSelection(cards)
		require.NoError(t, err)
		require.Equal(t, card.NewWildCard(), selected)
		require.Contains(t, output.String(), "(enter 1)")
		require.Contains(t, output.String(), "Draw instead (enter 0)")
	})

	t.Run("zero_draws", func(t *testing.T) {
		prompter, _ := newPrompter("0\n")
		selected, err := prompter.PromptCardSelection(cards)
		require.NoError(t, err)
		require.Nil(t, selected)
	})

	t.Run("closed_input", func(t *testing.T) {
		prompter, _ := newPrompter("")
		_, err := prompter.PromptCardSelection(cards)
		require.ErrorIs(t, err, consts.ErrorsInputClosed)
	})
}

func TestPromptColor(t *testing.T) {
	prompter, output := newPrompter("purple\n  Yellow \n")
	chosen, err := prompter.PromptColor()
	require.NoError(t, err)
	require.Equal(t, color.Yellow, chosen)
	require.Contains(t, output.String(), consts.ErrorsInputInvalid.Msg+"Unknown color 'purple'.")
}
