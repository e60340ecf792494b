package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Prompter reads answers line by line. Malformed answers are asked again;
// only a closed input is returned as an error.
type Prompter struct {
	reader  *bufio.Reader
	printer *Printer
}

func NewPrompter(in io.Reader, printer *Printer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), printer: printer}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", consts.ErrorsInputClosed
		}
		return "", fmt.Errorf("%w %v", consts.ErrorsInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) PromptString(message string) (string, error) {
	for {
		p.printer.Println(message)
		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			p.printer.Println(consts.ErrorsInputInvalid.Msg + "Enter some text.")
			continue
		}
		return input, nil
	}
}

func (p *Prompter) promptInteger(message string) (int, error) {
	for {
		input, err := p.PromptString(message)
		if err != nil {
			return 0, err
		}
		number, err := strconv.Atoi(input)
		if err != nil {
			p.printer.Printfln("%s'%s' is not a number.", consts.ErrorsInputInvalid.Msg, input)
			continue
		}
		return number, nil
	}
}

func (p *Prompter) PromptIntegerInRange(minimum int, maximum int, message string) (int, error) {
	for {
		input, err := p.promptInteger(message)
		if err != nil {
			return 0, err
		}
		if input < minimum || input > maximum {
			p.printer.Printfln("%sEnter a number from %d to %d.", consts.ErrorsInputInvalid.Msg, minimum, maximum)
			continue
		}
		return input, nil
	}
}

// PromptCardSelection returns the chosen card, or nil when the player
// chooses to draw instead.
func (p *Prompter) PromptCardSelection(cards []card.Card) (card.Card, error) {
	cardSelectionLines := []string{"Select a card to play:"}
	for index, card := range cards {
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %d)", card, index+1))
	}
	cardSelectionLines = append(cardSelectionLines, "Draw instead (enter 0)")
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	selected, err := p.PromptIntegerInRange(0, len(cards), cardSelectionMessage)
	if err != nil {
		return nil, err
	}
	if selected == 0 {
		return nil, nil
	}
	return cards[selected-1], nil
}

func (p *Prompter) PromptColor() (color.Color, error) {
	colorMessage := fmt.Sprintf(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
	for {
		colorName, err := p.PromptString(colorMessage)
		if err != nil {
			return nil, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			p.printer.Printfln("%sUnknown color '%s'.", consts.ErrorsInputInvalid.Msg, colorName)
			continue
		}
		return chosenColor, nil
	}
}
