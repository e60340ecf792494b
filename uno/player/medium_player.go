package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/game"
)

// mediumPlayer prefers action cards by weighted sampling and names the color
// it holds most of.
type mediumPlayer struct {
	basicPlayer
}

func NewMediumPlayer(name string, rng *rand.Rand) game.Player {
	return &mediumPlayer{basicPlayer: basicPlayer{name: name, rng: rng, tuning: DefaultTunings[Medium]}}
}

func (p *mediumPlayer) ExecuteTurn(turn game.Turn) (game.Decision, error) {
	if p.drawsInstead(turn) {
		return game.Drew(), nil
	}
	selected, found := pickWeighted(p.rng, turn.PlayableCards, p.tuning.KindWeights, p.tuning.SamplingAttempts)
	if !found {
		selected = pickUniform(p.rng, turn.PlayableCards)
	}
	return game.Played(withColor(selected, mostFrequentColor(turn.CurrentPlayerHand, nil))), nil
}
