package event

type PlayerSkippedPayload struct {
	PlayerName string
}

type PlayerSkippedListener interface {
	OnPlayerSkipped(PlayerSkippedPayload)
}

type playerSkippedEmitter struct {
	listeners []PlayerSkippedListener
}

func (e *playerSkippedEmitter) AddListener(listener PlayerSkippedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerSkippedEmitter) Emit(payload PlayerSkippedPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerSkipped(payload)
	}
}
