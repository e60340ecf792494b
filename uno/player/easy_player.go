package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/game"
)

// easyPlayer plays a random playable card.
type easyPlayer struct {
	basicPlayer
}

func NewEasyPlayer(name string, rng *rand.Rand) game.Player {
	return &easyPlayer{basicPlayer: basicPlayer{name: name, rng: rng, tuning: DefaultTunings[Easy]}}
}

func (p *easyPlayer) ExecuteTurn(turn game.Turn) (game.Decision, error) {
	if p.drawsInstead(turn) {
		return game.Drew(), nil
	}
	selected := pickUniform(p.rng, turn.PlayableCards)
	return game.Played(withColor(selected, mostFrequentColor(turn.PlayableCards, nil))), nil
}
