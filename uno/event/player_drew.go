package event

type PlayerDrewPayload struct {
	PlayerName string
	Count      int
	// Forced is set when the player could not stack a pending penalty.
	Forced     bool
}

type PlayerDrewListener interface {
	OnPlayerDrew(PlayerDrewPayload)
}

type playerDrewEmitter struct {
	listeners []PlayerDrewListener
}

func (e *playerDrewEmitter) AddListener(listener PlayerDrewListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *playerDrewEmitter) Emit(payload PlayerDrewPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerDrew(payload)
	}
}
