package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
)

type humanPlayer struct {
	name     string
	prompter *ui.Prompter
	messages ui.MessageWriter
}

func NewHumanPlayer(name string, prompter *ui.Prompter, messages ui.MessageWriter) game.Player {
	return &humanPlayer{name: name, prompter: prompter, messages: messages}
}

func (p *humanPlayer) Name() string {
	return p.name
}

func (p *humanPlayer) ExecuteTurn(turn game.Turn) (game.Decision, error) {
	p.messages.HumanPlayerTurnStarted(p.name)
	p.messages.State(turn.State)

	if len(turn.PlayableCards) == 0 {
		p.messages.HumanPlayerHasNoMatchingCardsInHand(p.name, turn.LastPlayedCard, turn.CurrentPlayerHand)
		return game.Drew(), nil
	}
	if turn.PendingDraw > 0 {
		p.messages.PenaltyPending(turn.PendingDraw)
	}

	selected, err := p.prompter.PromptCardSelection(turn.PlayableCards)
	if err != nil {
		return game.Decision{}, err
	}
	if selected == nil {
		return game.Drew(), nil
	}

	if _, isWildcard := selected.(card.Wildcard); isWildcard {
		pickedColor, err := p.prompter.PromptColor()
		if err != nil {
			return game.Decision{}, err
		}
		if selected, err = card.WithColor(selected, pickedColor); err != nil {
			return game.Decision{}, err
		}
	}
	return game.Played(selected), nil
}

func (p *humanPlayer) ObserveTurn(playerName string, playedCard card.Card) {
}

func (p *humanPlayer) ObserveTurnSkip(drawnCards []card.Card) {
	if len(drawnCards) > 0 {
		p.messages.HumanPlayerDrewCards(drawnCards)
	}
}
