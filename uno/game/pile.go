package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile. Its last card is the one new plays must match.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.cards = append(p.cards, card)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// Recycle removes and returns every card except the top one.
func (p *Pile) Recycle() []card.Card {
	if len(p.cards) < 2 {
		return []card.Card{}
	}
	top := p.cards[len(p.cards)-1]
	recycled := make([]card.Card, len(p.cards)-1)
	copy(recycled, p.cards[:len(p.cards)-1])
	p.cards = append(p.cards[:0], top)
	return recycled
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Top() card.Card {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return nil
	}
	return p.cards[pileSize-1]
}
