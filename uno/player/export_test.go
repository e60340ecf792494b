package player

import (
	"github.com/ratel-online/uno/uno/game"
)

var (
	ActionKindWeights = actionKindWeights
	HighestNumber     = highestNumber
	LeastCounted      = leastCounted
	MostFrequentColor = mostFrequentColor
	SampleKind        = sampleKind
)

// Retune replaces the tuning of a bot built by this package.
func Retune(bot game.Player, adjust func(tuning *Tuning)) {
	switch bot := bot.(type) {
	case *easyPlayer:
		adjust(&bot.tuning)
	case *mediumPlayer:
		adjust(&bot.tuning)
	case *hardPlayer:
		adjust(&bot.tuning)
	}
}
