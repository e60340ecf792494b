package ui

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type MessageWriter struct {
	printer *Printer
}

func NewMessageWriter(printer *Printer) MessageWriter {
	return MessageWriter{printer: printer}
}

func (m MessageWriter) DeckRecycled(count int, shortfall int) {
	if count > 0 {
		m.printer.Printfln("The discard pile was shuffled back into the deck (%d cards)", count)
	}
	if shortfall > 0 {
		m.printer.Printfln("The deck is out of cards, %d card(s) could not be drawn", shortfall)
	}
}

func (m MessageWriter) FirstCardPlayed(card card.Card) {
	m.printer.Printfln("First card is %s", card)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) {
	m.printer.Printfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card, hand []card.Card) {
	m.printer.Printfln("%s, none of your cards match %s!", playerName, lastPlayedCard)
	m.printer.Printfln("Your hand is %s", hand)
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) {
	m.printer.Printfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) MatchStarted(round int, rounds int, playerNames []string) {
	m.printer.Printfln("Round %d of %d: %v", round, rounds, playerNames)
}

func (m MessageWriter) PenaltyPending(amount int) {
	m.printer.Printfln("Stack a matching card or draw %d!", amount)
}

func (m MessageWriter) PlayerDrewCards(playerName string, count int, forced bool) {
	switch {
	case forced:
		m.printer.Printfln("%s takes the penalty and draws %d cards!", playerName, count)
	case count == 1:
		m.printer.Printfln("%s drew a card!", playerName)
	default:
		m.printer.Printfln("%s drew %d cards!", playerName, count)
	}
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) {
	m.printer.Printfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) {
	m.printer.Printfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) {
	m.printer.Printfln("%s's turn skipped!", playerName)
}

// State shows the acting player their view of the table.
func (m MessageWriter) State(state fmt.Stringer) {
	m.printer.Println(state)
}

func (m MessageWriter) TurnOrderReversed(clockwise bool) {
	if clockwise {
		m.printer.Println("Turn order has been reversed! Play goes clockwise.")
		return
	}
	m.printer.Println("Turn order has been reversed! Play goes counter-clockwise.")
}

func (m MessageWriter) Welcome() {
	m.printer.Printfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) {
	m.printer.Printfln("%s wins!", playerName)
}
