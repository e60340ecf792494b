package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// WildCard has no color until one is picked as it is played.
type WildCard struct {
	color color.Color
}

func NewWildCard() WildCard {
	return WildCard{}
}

func (c WildCard) Actions() []action.Action {
	return []action.Action{
		action.NewPickColorAction(),
	}
}

func (c WildCard) Color() color.Color {
	return c.color
}

// Equal ignores the picked color, so a colored wild still finds its
// colorless copy in a hand.
func (c WildCard) Equal(other Card) bool {
	_, typeMatched := other.(WildCard)
	return typeMatched
}

func (c WildCard) Kind() Kind {
	return KindWild
}

func (c WildCard) WithColor(color color.Color) Card {
	return WildCard{color: color}
}

func (c WildCard) Colorless() Card {
	return WildCard{}
}

func (c WildCard) String() string {
	if c.color == nil {
		return "(*)"
	}
	return c.color.Paint("(*)") + fmt.Sprintf("(%s)", c.color.Name())
}
