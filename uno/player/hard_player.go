package player

import (
	"math"
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
)

// hardPlayer stacks penalties, changes the color with action cards while its
// hand is large and names the color its opponents have played least.
type hardPlayer struct {
	basicPlayer
	opponentColors []int
}

func NewHardPlayer(name string, rng *rand.Rand) game.Player {
	return &hardPlayer{
		basicPlayer:    basicPlayer{name: name, rng: rng, tuning: DefaultTunings[Hard]},
		opponentColors: make([]int, len(color.All)),
	}
}

// OnFirstCardPlayed starts a new match, so earlier rounds stop counting.
func (p *hardPlayer) OnFirstCardPlayed(event.FirstCardPlayedPayload) {
	p.opponentColors = make([]int, len(color.All))
}

func (p *hardPlayer) ObserveTurn(playerName string, playedCard card.Card) {
	if playerName == p.name {
		return
	}
	if index := color.Index(playedCard.Color()); index >= 0 {
		p.opponentColors[index]++
	}
}

func (p *hardPlayer) ExecuteTurn(turn game.Turn) (game.Decision, error) {
	if p.drawsInstead(turn) {
		return game.Drew(), nil
	}

	lastPlayedCard := turn.LastPlayedCard
	currentColor := lastPlayedCard.Color()

	// Only same-kind cards are playable while a penalty is pending.
	if turn.PendingDraw > 0 && lastPlayedCard.Kind().Stackable() {
		selected := turn.PlayableCards[0]
		return game.Played(withColor(selected, mostFrequentColor(turn.CurrentPlayerHand, currentColor))), nil
	}

	if p.rng.Float64() < p.convertChance(len(turn.CurrentPlayerHand)) {
		selected, found := pickWeighted(p.rng, turn.PlayableCards, p.tuning.KindWeights, p.tuning.SamplingAttempts)
		if found {
			return game.Played(withColor(selected, leastCounted(p.opponentColors))), nil
		}
	}

	if selected := highestNumber(turn.PlayableCards, currentColor); selected != nil {
		return game.Played(selected), nil
	}
	selected := pickUniform(p.rng, turn.PlayableCards)
	return game.Played(withColor(selected, leastCounted(p.opponentColors))), nil
}

// convertChance grows with the hand: 1 - min(1, ConvertHandSize/handSize).
func (p *hardPlayer) convertChance(handSize int) float64 {
	if handSize <= 0 {
		return 0
	}
	return 1 - math.Min(1, p.tuning.ConvertHandSize/float64(handSize))
}
