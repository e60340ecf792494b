package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Playable reports whether candidateCard may be played on lastPlayedCard.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	switch candidateCard := candidateCard.(type) {
	case card.WildCard, card.WildDrawFourCard:
		return true
	case card.SkipCard, card.ReverseCard, card.DrawTwoCard:
		if candidateCard.Kind() == lastPlayedCard.Kind() {
			return true
		}
	case card.NumberCard:
		if lastPlayedCard, isNumberCard := lastPlayedCard.(card.NumberCard); isNumberCard {
			return candidateCard.Color() == lastPlayedCard.Color() || candidateCard.Number() == lastPlayedCard.Number()
		}
	}

	lastColor := lastPlayedCard.Color()
	return lastColor != nil && candidateCard.Color() == lastColor
}

// PlayableCards filters hand against lastPlayedCard. While a draw penalty is
// pending on a draw two or draw four, only cards of that kind may be stacked.
func PlayableCards(hand []card.Card, lastPlayedCard card.Card, pendingDraw int) []card.Card {
	playableCards := make([]card.Card, 0, len(hand))
	stacking := pendingDraw > 0 && lastPlayedCard.Kind().Stackable()
	for _, candidateCard := range hand {
		if stacking {
			if candidateCard.Kind() == lastPlayedCard.Kind() {
				playableCards = append(playableCards, candidateCard)
			}
			continue
		}
		if Playable(candidateCard, lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}
