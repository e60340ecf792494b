package game

import (
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the face-down stack. The top card is at index 0.
type Deck struct {
	rng   *rand.Rand
	cards []card.Card
}

// NewDeck returns the 108 standard cards, unshuffled.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng}
	fillDeck(deck)
	return deck
}

func (d *Deck) Shuffle() {
	shuffleCards(d.rng, d.cards)
}

// DrawOne reports false only when the deck is exhausted.
func (d *Deck) DrawOne() (card.Card, bool) {
	cards := d.Draw(1)
	if len(cards) == 0 {
		return nil, false
	}
	return cards[0], true
}

// Draw takes up to amount cards, stopping early when the deck runs out.
func (d *Deck) Draw(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	if amount < 0 {
		amount = 0
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

// Reinsert shuffles cards and puts them beneath the remaining deck.
func (d *Deck) Reinsert(cards []card.Card) {
	batch := make([]card.Card, len(cards))
	copy(batch, cards)
	shuffleCards(d.rng, batch)
	d.cards = append(d.cards, batch...)
}

// ReinsertRandom puts c back at a uniformly random position.
func (d *Deck) ReinsertRandom(c card.Card) {
	position := d.rng.Intn(len(d.cards) + 1)
	d.cards = append(d.cards, nil)
	copy(d.cards[position+1:], d.cards[position:])
	d.cards[position] = c
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func fillDeck(deck *Deck) {
	cards := make([]card.Card, 0, consts.DeckSize)

	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)

	deck.cards = cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
