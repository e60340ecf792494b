package event

type DeckRecycledPayload struct {
	Count     int
	// Shortfall is the number of penalty cards that could not be supplied.
	Shortfall int
}

type DeckRecycledListener interface {
	OnDeckRecycled(DeckRecycledPayload)
}

type deckRecycledEmitter struct {
	listeners []DeckRecycledListener
}

func (e *deckRecycledEmitter) AddListener(listener DeckRecycledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *deckRecycledEmitter) Emit(payload DeckRecycledPayload) {
	for _, listener := range e.listeners {
		listener.OnDeckRecycled(payload)
	}
}
