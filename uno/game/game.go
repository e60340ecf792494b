package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/event"
)

// starterReserve is one more than the number of cards a starter policy can
// reject (eight wilds and eight skips), so starter selection always ends.
const starterReserve = 17

type Game struct {
	id            string
	players       *PlayerIterator
	deck          *Deck
	pile          *Pile
	events        *event.Emitters
	rng           *rand.Rand
	starterPolicy StarterPolicy
	handSize      int
	stage         Stage
	pendingDraw   int
	winner        *playerController
}

func New(players []Player, opts ...Option) (*Game, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, fmt.Errorf("%w got %d, want %d to %d", consts.ErrorsGamePlayersInvalid, len(players), consts.MinPlayers, consts.MaxPlayers)
	}

	g := &Game{
		id:       uuid.NewString(),
		players:  newPlayerIterator(players),
		pile:     NewPile(),
		events:   event.NewEmitters(),
		handSize: consts.HandSize,
		stage:    StageDealInProgress,
	}
	// Players that keep per-match memory listen for the match events.
	g.players.ForEach(func(seated *playerController) {
		g.events.AddListener(seated.player)
	})
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.handSize < 1 || g.handSize*len(players) > consts.DeckSize-starterReserve {
		return nil, fmt.Errorf("%w hand size %d for %d players", consts.ErrorsGamePlayersInvalid, g.handSize, len(players))
	}
	g.deck = NewDeck(g.rng)
	return g, nil
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Events() *event.Emitters {
	return g.events
}

func (g *Game) Stage() Stage {
	return g.stage
}

// Winner returns the winner's name once the match is complete.
func (g *Game) Winner() (string, bool) {
	if g.winner == nil {
		return "", false
	}
	return g.winner.Name(), true
}

func (g *Game) Current() string {
	return g.players.Current().Name()
}

func (g *Game) Direction() Direction {
	return g.players.Direction()
}

func (g *Game) PendingDraw() int {
	return g.pendingDraw
}

func (g *Game) TopCard() card.Card {
	return g.pile.Top()
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

func (g *Game) PileSize() int {
	return g.pile.Size()
}

func (g *Game) HandSizes() []int {
	sizes := make([]int, 0, g.players.Len())
	g.players.ForEach(func(player *playerController) {
		sizes = append(sizes, player.hand.Size())
	})
	return sizes
}

// CardCount is the number of cards in the deck, the discard pile and all
// hands together. It stays at consts.DeckSize for the whole match.
func (g *Game) CardCount() int {
	count := g.deck.Size() + g.pile.Size()
	for _, size := range g.HandSizes() {
		count += size
	}
	return count
}

// Run sets the match up if needed and plays turns until someone wins.
func (g *Game) Run() (string, error) {
	if g.stage == StageDealInProgress {
		if err := g.Setup(); err != nil {
			return "", err
		}
	}
	for g.stage == StageTurnInProgress {
		if err := g.PlayTurn(); err != nil {
			return "", err
		}
	}
	winner, found := g.Winner()
	if !found {
		return "", consts.ErrorsGameFinished
	}
	return winner, nil
}

// Setup shuffles, deals and flips the starter card.
func (g *Game) Setup() error {
	if g.stage != StageDealInProgress {
		return consts.ErrorsGameStarted
	}
	g.deck.Shuffle()
	g.DealStartingCards()

	g.stage = StageStarterSelection
	if err := g.PlayFirstCard(); err != nil {
		return g.abort(err)
	}

	g.stage = StageTurnInProgress
	return nil
}

func (g *Game) DealStartingCards() {
	g.players.ForEach(func(player *playerController) {
		hand := g.deck.Draw(g.handSize)
		player.AddCards(hand)
	})
}

// PlayFirstCard draws until the starter policy accepts a card. Rejected
// cards go back into the deck at random.
func (g *Game) PlayFirstCard() error {
	for {
		firstCard, found := g.deck.DrawOne()
		if !found {
			return errors.New("deck exhausted while selecting the starter card")
		}
		if !g.starterPolicy.Accepts(firstCard) {
			g.deck.ReinsertRandom(firstCard)
			continue
		}
		g.pile.Add(firstCard)
		g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
			Card: firstCard,
		})
		return nil
	}
}

// PlayTurn advances to the next player and resolves their turn.
func (g *Game) PlayTurn() error {
	switch g.stage {
	case StageDealInProgress, StageStarterSelection:
		return consts.ErrorsGameNotStarted
	case StageMatchComplete, StageAborted:
		return consts.ErrorsGameFinished
	}

	player := g.players.Next()
	lastPlayedCard := g.pile.Top()

	if g.pendingDraw > 0 && lastPlayedCard.Kind().Stackable() && !player.hand.CanStack(lastPlayedCard) {
		g.drawCards(player, true)
		g.ensureDrawableDeck()
		return nil
	}

	decision, err := player.Play(g.ExtractTurn(player))
	if err != nil {
		return g.abort(err)
	}

	if decision.Drew() {
		g.drawCards(player, false)
		g.ensureDrawableDeck()
		return nil
	}

	playedCard := decision.Card()
	g.pile.Add(playedCard)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: player.Name(),
		Card:       playedCard,
	})
	g.players.ForEach(func(observer *playerController) {
		observer.player.ObserveTurn(player.Name(), playedCard)
	})
	g.PerformCardActions(player, playedCard)

	if player.NoCards() {
		g.finish(player)
		return nil
	}

	g.ensureDrawableDeck()
	return nil
}

func (g *Game) PerformCardActions(player *playerController, playedCard card.Card) {
	for _, cardAction := range playedCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			g.pendingDraw += cardAction.Amount()
		case action.ReverseTurnsAction:
			direction := g.players.Reverse()
			g.events.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
				PlayerName: player.Name(),
				Clockwise:  direction == Clockwise,
			})
		case action.SkipTurnAction:
			skippedPlayer := g.players.Skip()
			skippedPlayer.player.ObserveTurnSkip(nil)
			g.events.PlayerSkipped.Emit(event.PlayerSkippedPayload{
				PlayerName: skippedPlayer.Name(),
			})
		case action.PickColorAction:
			g.events.ColorPicked.Emit(event.ColorPickedPayload{
				PlayerName: player.Name(),
				Color:      playedCard.Color(),
			})
		}
	}
}

func (g *Game) ExtractTurn(player *playerController) Turn {
	lastPlayedCard := g.pile.Top()
	return Turn{
		PlayableCards: player.hand.PlayableCards(lastPlayedCard, g.pendingDraw),
		PendingDraw:   g.pendingDraw,
		State:         g.ExtractState(player),
	}
}

func (g *Game) ExtractState(player *playerController) State {
	playerSequence := make([]string, 0, g.players.Len())
	g.players.ForEach(func(seated *playerController) {
		playerSequence = append(playerSequence, seated.Name())
	})

	return State{
		LastPlayedCard:    g.pile.Top(),
		CurrentPlayerHand: player.Hand(),
		PlayerSequence:    playerSequence,
		PlayerHandCounts:  g.HandSizes(),
		Direction:         g.players.Direction(),
	}
}

// drawCards gives the player the pending penalty, or one card when nothing
// is pending, and clears the penalty.
func (g *Game) drawCards(player *playerController, forced bool) {
	amount := g.anticipatedDraw()
	g.ensureDrawableDeck()

	cards := g.deck.Draw(amount)
	if len(cards) < amount {
		log.Infof("match %s: %s should draw %d cards, only %d left\n", g.id, player.Name(), amount, len(cards))
	}
	player.AddCards(cards)
	player.player.ObserveTurnSkip(cards)
	g.events.PlayerDrew.Emit(event.PlayerDrewPayload{
		PlayerName: player.Name(),
		Count:      len(cards),
		Forced:     forced,
	})
	g.pendingDraw = 0
}

func (g *Game) anticipatedDraw() int {
	if g.pendingDraw < 1 {
		return 1
	}
	return g.pendingDraw
}

// ensureDrawableDeck moves the discard pile, except its top, back under the
// deck when the deck cannot cover the next draw. Wild cards lose their color.
// Nothing is emitted when the pile holds only its top card.
func (g *Game) ensureDrawableDeck() {
	amount := g.anticipatedDraw()
	if g.deck.Size() >= amount {
		return
	}

	recycled := g.pile.Recycle()
	if len(recycled) == 0 {
		return
	}
	for index, recycledCard := range recycled {
		recycled[index] = card.Colorless(recycledCard)
	}
	g.deck.Reinsert(recycled)

	shortfall := amount - g.deck.Size()
	if shortfall < 0 {
		shortfall = 0
	}
	g.events.DeckRecycled.Emit(event.DeckRecycledPayload{
		Count:     len(recycled),
		Shortfall: shortfall,
	})
}

func (g *Game) finish(winner *playerController) {
	g.stage = StageMatchComplete
	g.winner = winner
	g.events.WinnerFound.Emit(event.WinnerFoundPayload{
		PlayerName: winner.Name(),
	})
}

func (g *Game) abort(err error) error {
	g.stage = StageAborted
	log.Errorf("match %s aborted: %v\n", g.id, err)
	return err
}
