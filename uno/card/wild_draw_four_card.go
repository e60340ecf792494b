package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type WildDrawFourCard struct {
	color color.Color
}

func NewWildDrawFourCard() WildDrawFourCard {
	return WildDrawFourCard{}
}

func (c WildDrawFourCard) Actions() []action.Action {
	return []action.Action{
		action.NewPickColorAction(),
		action.NewDrawCardsAction(4),
	}
}

func (c WildDrawFourCard) Color() color.Color {
	return c.color
}

func (c WildDrawFourCard) Equal(other Card) bool {
	_, typeMatched := other.(WildDrawFourCard)
	return typeMatched
}

func (c WildDrawFourCard) Kind() Kind {
	return KindWildDrawFour
}

func (c WildDrawFourCard) WithColor(color color.Color) Card {
	return WildDrawFourCard{color: color}
}

func (c WildDrawFourCard) Colorless() Card {
	return WildDrawFourCard{}
}

func (c WildDrawFourCard) String() string {
	if c.color == nil {
		return "+4!"
	}
	return c.color.Paint("+4!") + fmt.Sprintf("(%s)", c.color.Name())
}
