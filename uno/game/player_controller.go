package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

type playerController struct {
	player Player
	hand   *Hand
	seat   int
}

func newPlayerController(player Player, seat int) *playerController {
	return &playerController{
		player: player,
		hand:   NewHand(),
		seat:   seat,
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

// Play asks the player for a decision and takes a played card out of the hand.
// A decision that breaks the turn contract is returned as a fatal error.
func (c *playerController) Play(turn Turn) (Decision, error) {
	decision, err := c.player.ExecuteTurn(turn)
	if err != nil {
		return Decision{}, fmt.Errorf("%s failed to take a turn: %w", c.Name(), err)
	}
	if decision.Drew() {
		return decision, nil
	}

	selectedCard := decision.Card()
	if !c.hand.Contains(selectedCard) {
		return Decision{}, fmt.Errorf("%w card %s, player %s", consts.ErrorsCardNotInHand, selectedCard, c.Name())
	}
	if !contains(turn.PlayableCards, selectedCard) {
		return Decision{}, fmt.Errorf("%w card %s on %s, player %s", consts.ErrorsIllegalPlay, selectedCard, turn.LastPlayedCard, c.Name())
	}
	if _, isWildcard := selectedCard.(card.Wildcard); isWildcard && selectedCard.Color() == nil {
		return Decision{}, fmt.Errorf("%w player %s", consts.ErrorsColorNotPicked, c.Name())
	}

	c.hand.RemoveCard(selectedCard)
	return decision, nil
}
