package player

import (
	"github.com/ratel-online/uno/uno/card"
)

type kindWeight struct {
	kind   card.Kind
	weight float64
}

// Tuning holds the numbers a bot plays by.
type Tuning struct {
	// VoluntaryDrawChance is the chance of drawing although a card could be played.
	VoluntaryDrawChance float64
	KindWeights         []kindWeight
	SamplingAttempts    int
	// ConvertHandSize is the hand size below which the hard bot never
	// converts the color with an action card.
	ConvertHandSize float64
}

var actionKindWeights = []kindWeight{
	{kind: card.KindDrawTwo, weight: 0.30},
	{kind: card.KindSkip, weight: 0.20},
	{kind: card.KindWildDrawFour, weight: 0.05},
	{kind: card.KindReverse, weight: 0.20},
	{kind: card.KindWild, weight: 0.25},
}

var DefaultTunings = map[Difficulty]Tuning{
	Easy: {
		VoluntaryDrawChance: 0.10,
	},
	Medium: {
		VoluntaryDrawChance: 0.05,
		KindWeights:         actionKindWeights,
		SamplingAttempts:    10,
	},
	Hard: {
		VoluntaryDrawChance: 0.02,
		KindWeights:         actionKindWeights,
		SamplingAttempts:    10,
		ConvertHandSize:     1.5,
	},
}
