package game

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
)

// StarterPolicy decides which cards may open the discard pile.
// Wild and draw four cards never may.
type StarterPolicy struct {
	AllowSkip bool
}

func (p StarterPolicy) Accepts(starter card.Card) bool {
	switch starter.Kind() {
	case card.KindWild, card.KindWildDrawFour:
		return false
	case card.KindSkip:
		return p.AllowSkip
	default:
		return true
	}
}

type Option func(*Game)

// WithRand sets the source used for every shuffle of the match.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithStarterPolicy(policy StarterPolicy) Option {
	return func(g *Game) {
		g.starterPolicy = policy
	}
}

func WithHandSize(handSize int) Option {
	return func(g *Game) {
		g.handSize = handSize
	}
}

// WithListener subscribes listener to the match events it implements.
func WithListener(listener interface{}) Option {
	return func(g *Game) {
		g.events.AddListener(listener)
	}
}
