package event

// Emitters fans match events out to listeners. Each match owns its own set.
type Emitters struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	PlayerDrew        *playerDrewEmitter
	PlayerSkipped     *playerSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	DeckRecycled      *deckRecycledEmitter
	WinnerFound       *winnerFoundEmitter
}

func NewEmitters() *Emitters {
	return &Emitters{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		PlayerDrew:        &playerDrewEmitter{},
		PlayerSkipped:     &playerSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		DeckRecycled:      &deckRecycledEmitter{},
		WinnerFound:       &winnerFoundEmitter{},
	}
}

// AddListener subscribes listener to every event whose listener interface it implements.
func (e *Emitters) AddListener(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		e.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		e.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		e.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(PlayerDrewListener); ok {
		e.PlayerDrew.AddListener(l)
	}
	if l, ok := listener.(PlayerSkippedListener); ok {
		e.PlayerSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		e.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(DeckRecycledListener); ok {
		e.DeckRecycled.AddListener(l)
	}
	if l, ok := listener.(WinnerFoundListener); ok {
		e.WinnerFound.AddListener(l)
	}
}
