package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

type basicPlayer struct {
	name   string
	rng    *rand.Rand
	tuning Tuning
}

func (p *basicPlayer) Name() string {
	return p.name
}

func (p *basicPlayer) ObserveTurn(playerName string, playedCard card.Card) {
}

func (p *basicPlayer) ObserveTurnSkip(drawnCards []card.Card) {
}

// drawsInstead reports whether the bot draws this turn: always without a
// playable card, otherwise by the tuned chance.
func (p *basicPlayer) drawsInstead(turn game.Turn) bool {
	if len(turn.PlayableCards) == 0 {
		return true
	}
	return p.rng.Float64() < p.tuning.VoluntaryDrawChance
}
