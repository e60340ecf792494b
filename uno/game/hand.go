package game

import (
	"github.com/ratel-online/uno/uno/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(searchedCard card.Card) bool {
	return contains(h.cards, searchedCard)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card, pendingDraw int) []card.Card {
	return PlayableCards(h.cards, lastPlayedCard, pendingDraw)
}

// CanStack reports whether the hand holds a card of the same kind as lastPlayedCard.
func (h *Hand) CanStack(lastPlayedCard card.Card) bool {
	for _, cardInHand := range h.cards {
		if cardInHand.Kind() == lastPlayedCard.Kind() {
			return true
		}
	}
	return false
}

// RemoveCard removes a single copy of card and reports whether one was found.
func (h *Hand) RemoveCard(card card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(card) {
			h.cards = append(h.cards[:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func contains(cards []card.Card, searchedCard card.Card) bool {
	for _, card := range cards {
		if card.Equal(searchedCard) {
			return true
		}
	}
	return false
}
