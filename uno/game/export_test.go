package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Arrange replaces the dealt state so tests can start from a known table.
// The next PlayTurn goes to seat nextSeat.
func (g *Game) Arrange(hands [][]card.Card, deck []card.Card, pile []card.Card, pendingDraw int, nextSeat int) {
	for seat, hand := range hands {
		controller := g.players.players[seat]
		controller.hand = NewHand()
		controller.hand.AddCards(hand)
	}
	g.deck.cards = append([]card.Card{}, deck...)
	g.pile.cards = append([]card.Card{}, pile...)
	g.pendingDraw = pendingDraw
	g.players.cycler.current = (nextSeat + g.players.Len() - 1) % g.players.Len()
	g.stage = StageTurnInProgress
}
