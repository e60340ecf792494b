package session

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/ui"
)

type Settings struct {
	Rounds int
	// Options are applied to every match, listeners included.
	Options []game.Option
	// Messages announces each round when set.
	Messages *ui.MessageWriter
}

// Session plays a number of matches with the same players. The first seat
// moves one place along every round.
type Session struct {
	players  []game.Player
	settings Settings
	tally    *Tally
}

func New(players []game.Player, settings Settings) (*Session, error) {
	if settings.Rounds < 1 {
		return nil, fmt.Errorf("%w rounds must be at least 1, got %d", consts.ErrorsConfigInvalid, settings.Rounds)
	}
	names := make([]string, 0, len(players))
	for _, player := range players {
		names = append(names, player.Name())
	}
	return &Session{
		players:  players,
		settings: settings,
		tally:    NewTally(names),
	}, nil
}

func (s *Session) Tally() *Tally {
	return s.tally
}

// Run plays every round and stops at the first failed match.
func (s *Session) Run() (*Tally, error) {
	for round := 1; round <= s.settings.Rounds; round++ {
		if err := s.playRound(round); err != nil {
			return s.tally, fmt.Errorf("round %d: %w", round, err)
		}
	}
	return s.tally, nil
}

func (s *Session) playRound(round int) error {
	players := rotate(s.players, round-1)
	g, err := game.New(players, s.settings.Options...)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(players))
	for _, player := range players {
		names = append(names, player.Name())
	}
	log.Infof("round %d/%d: match %s started with %v\n", round, s.settings.Rounds, g.ID(), names)
	if s.settings.Messages != nil {
		s.settings.Messages.MatchStarted(round, s.settings.Rounds, names)
	}

	winner, err := g.Run()
	if err != nil {
		return err
	}
	log.Infof("round %d/%d: match %s won by %s\n", round, s.settings.Rounds, g.ID(), winner)
	return s.tally.Record(winner)
}

func rotate(players []game.Player, offset int) []game.Player {
	rotated := make([]game.Player, 0, len(players))
	for index := range players {
		rotated = append(rotated, players[(index+offset)%len(players)])
	}
	return rotated
}
