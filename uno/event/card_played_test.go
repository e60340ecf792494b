package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

func TestCardPlayed(t *testing.T) {
	emitters := event.NewEmitters()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()

	emitters.CardPlayed.AddListener(listenerOne)
	emitters.CardPlayed.AddListener(listenerTwo)

	payloads := []event.CardPlayedPayload{
		{
			PlayerName: "Someone",
			Card:       card.NewWildCard(),
		},
		{
			PlayerName: "Somebody",
			Card:       card.NewDrawTwoCard(color.Green),
		},
	}

	for _, payload := range payloads {
		emitters.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}
