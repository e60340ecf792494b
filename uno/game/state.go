package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

type Stage int

const (
	StageDealInProgress Stage = iota
	StageStarterSelection
	StageTurnInProgress
	StageMatchComplete
	StageAborted
)

var stageNames = map[Stage]string{
	StageDealInProgress:   "DealInProgress",
	StageStarterSelection: "StarterSelection",
	StageTurnInProgress:   "TurnInProgress",
	StageMatchComplete:    "MatchComplete",
	StageAborted:          "Aborted",
}

func (s Stage) String() string {
	return stageNames[s]
}

// State is the public part of a match as seen by the player about to act.
type State struct {
	LastPlayedCard    card.Card
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  []int
	Direction         Direction
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for seat, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[seat])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", s.Direction, strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))

	return strings.Join(lines, "\n")
}

// Turn is what a player gets when it is asked to act.
type Turn struct {
	PlayableCards []card.Card
	PendingDraw   int
	State
}
