package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

func sampleKind(rng *rand.Rand, weights []kindWeight) card.Kind {
	total := 0.0
	for _, kindWeight := range weights {
		total += kindWeight.weight
	}
	roll := rng.Float64() * total
	for _, kindWeight := range weights {
		if roll < kindWeight.weight {
			return kindWeight.kind
		}
		roll -= kindWeight.weight
	}
	return weights[len(weights)-1].kind
}

// pickWeighted samples a kind and looks for a card of that kind, giving up
// after the given number of attempts.
func pickWeighted(rng *rand.Rand, cards []card.Card, weights []kindWeight, attempts int) (card.Card, bool) {
	if len(weights) == 0 {
		return nil, false
	}
	for attempt := 0; attempt < attempts; attempt++ {
		candidates := ofKind(cards, sampleKind(rng, weights))
		if len(candidates) > 0 {
			return candidates[rng.Intn(len(candidates))], true
		}
	}
	return nil, false
}

func pickUniform(rng *rand.Rand, cards []card.Card) card.Card {
	return cards[rng.Intn(len(cards))]
}

func ofKind(cards []card.Card, kind card.Kind) []card.Card {
	var matching []card.Card
	for _, c := range cards {
		if c.Kind() == kind {
			matching = append(matching, c)
		}
	}
	return matching
}

// highestNumber returns the highest number card of the given color, or nil.
func highestNumber(cards []card.Card, cardColor color.Color) card.Card {
	var highest card.NumberCard
	found := false
	for _, c := range cards {
		numberCard, isNumberCard := c.(card.NumberCard)
		if !isNumberCard || cardColor == nil || numberCard.Color() != cardColor {
			continue
		}
		if !found || numberCard.Number() > highest.Number() {
			highest = numberCard
			found = true
		}
	}
	if !found {
		return nil
	}
	return highest
}

// mostFrequentColor counts the colored cards, skipping excluded. Ties go to
// the earlier color in color.All. Without any count the first color that is
// not excluded wins.
func mostFrequentColor(cards []card.Card, excluded color.Color) color.Color {
	counts := make([]int, len(color.All))
	for _, c := range cards {
		if index := color.Index(c.Color()); index >= 0 && c.Color() != excluded {
			counts[index]++
		}
	}

	best, bestCount := -1, 0
	for index, count := range counts {
		if count > bestCount {
			best, bestCount = index, count
		}
	}
	if best >= 0 {
		return color.All[best]
	}
	for _, candidate := range color.All {
		if candidate != excluded {
			return candidate
		}
	}
	return color.Red
}

// leastCounted returns the color with the lowest count, ties to the earlier color.
func leastCounted(counts []int) color.Color {
	least := 0
	for index, count := range counts {
		if count < counts[least] {
			least = index
		}
	}
	return color.All[least]
}

// withColor colors wild cards and leaves every other card alone.
func withColor(c card.Card, cardColor color.Color) card.Card {
	if colored, err := card.WithColor(c, cardColor); err == nil {
		return colored
	}
	return c
}
