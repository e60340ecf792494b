package event

type TurnOrderReversedPayload struct {
	PlayerName string
	Clockwise  bool
}

type TurnOrderReversedListener interface {
	OnTurnOrderReversed(TurnOrderReversedPayload)
}

type turnOrderReversedEmitter struct {
	listeners []TurnOrderReversedListener
}

func (e *turnOrderReversedEmitter) AddListener(listener TurnOrderReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *turnOrderReversedEmitter) Emit(payload TurnOrderReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnOrderReversed(payload)
	}
}
