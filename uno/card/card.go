package card

import (
	"errors"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

var (
	ErrNotWild = errors.New("only wild cards take a color")
	ErrNoColor = errors.New("no color given")
)

type Card interface {
	Actions() []action.Action
	Color() color.Color
	Equal(other Card) bool
	Kind() Kind
	String() string
}

// Wildcard is implemented by the kinds whose color is chosen when played.
type Wildcard interface {
	Card
	WithColor(color color.Color) Card
	Colorless() Card
}

// WithColor assigns a color to a wild or draw four card.
func WithColor(c Card, cardColor color.Color) (Card, error) {
	wildcard, ok := c.(Wildcard)
	if !ok {
		return c, ErrNotWild
	}
	if cardColor == nil {
		return c, ErrNoColor
	}
	return wildcard.WithColor(cardColor), nil
}

// Colorless strips the assigned color from a wild card. Other cards are returned as is.
func Colorless(c Card) Card {
	if wildcard, ok := c.(Wildcard); ok {
		return wildcard.Colorless()
	}
	return c
}

func IsAction(c Card) bool {
	return c.Kind() != KindNumber
}
