package card

import (
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type DrawTwoCard struct {
	color color.Color
}

func NewDrawTwoCard(color color.Color) DrawTwoCard {
	return DrawTwoCard{color: color}
}

// Actions only raises the penalty. The engine decides whether the next
// player stacks or absorbs it.
func (c DrawTwoCard) Actions() []action.Action {
	return []action.Action{
		action.NewDrawCardsAction(2),
	}
}

func (c DrawTwoCard) Color() color.Color {
	return c.color
}

func (c DrawTwoCard) Equal(other Card) bool {
	_, typeMatched := other.(DrawTwoCard)
	return typeMatched && c.color == other.Color()
}

func (c DrawTwoCard) Kind() Kind {
	return KindDrawTwo
}

func (c DrawTwoCard) String() string {
	return c.color.Paint("+2!")
}
