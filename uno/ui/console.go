package ui

import (
	"github.com/ratel-online/uno/uno/event"
)

// Console narrates match events to the terminal.
type Console struct {
	messages MessageWriter
}

func NewConsole(messages MessageWriter) *Console {
	return &Console{messages: messages}
}

func (c *Console) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	c.messages.FirstCardPlayed(payload.Card)
}

func (c *Console) OnCardPlayed(payload event.CardPlayedPayload) {
	c.messages.PlayerPlayedCard(payload.PlayerName, payload.Card)
}

func (c *Console) OnColorPicked(payload event.ColorPickedPayload) {
	c.messages.PlayerPickedColor(payload.PlayerName, payload.Color)
}

func (c *Console) OnPlayerDrew(payload event.PlayerDrewPayload) {
	c.messages.PlayerDrewCards(payload.PlayerName, payload.Count, payload.Forced)
}

func (c *Console) OnPlayerSkipped(payload event.PlayerSkippedPayload) {
	c.messages.PlayerTurnSkipped(payload.PlayerName)
}

func (c *Console) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	c.messages.TurnOrderReversed(payload.Clockwise)
}

func (c *Console) OnDeckRecycled(payload event.DeckRecycledPayload) {
	c.messages.DeckRecycled(payload.Count, payload.Shortfall)
}

func (c *Console) OnWinnerFound(payload event.WinnerFoundPayload) {
	c.messages.WinnerFound(payload.PlayerName)
}
