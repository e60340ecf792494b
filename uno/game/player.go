package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Player is the contract every participant implements, human or bot.
type Player interface {
	Name() string
	// ExecuteTurn returns Played with a card from turn.PlayableCards, or Drew.
	// Wild cards must carry the picked color.
	ExecuteTurn(turn Turn) (Decision, error)
	// ObserveTurn is called on every player whenever anyone plays a card.
	ObserveTurn(playerName string, playedCard card.Card)
	// ObserveTurnSkip is called when this player was skipped or had to draw.
	// drawnCards is nil for a plain skip.
	ObserveTurnSkip(drawnCards []card.Card)
}

type Decision struct {
	card card.Card
}

func Played(playedCard card.Card) Decision {
	return Decision{card: playedCard}
}

func Drew() Decision {
	return Decision{}
}

func (d Decision) Card() card.Card {
	return d.card
}

func (d Decision) Drew() bool {
	return d.card == nil
}
