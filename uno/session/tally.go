package session

import (
	"fmt"
	"io"
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/jedib0t/go-pretty/v6/table"
)

type Standing struct {
	Name string
	Seat int
	Wins int
}

// Tally counts match wins per player name across a session.
type Tally struct {
	rounds    int
	standing  func(name string) (*Standing, bool)
	standings func() []*Standing
}

func NewTally(names []string) *Tally {
	entries := hashmap.New()
	for seat, name := range names {
		entries.Set(name, &Standing{Name: name, Seat: seat})
	}
	return &Tally{
		standing: func(name string) (*Standing, bool) {
			if v, ok := entries.Get(name); ok {
				return v.(*Standing), true
			}
			return nil, false
		},
		standings: func() []*Standing {
			list := make([]*Standing, 0, len(names))
			entries.Foreach(func(e *hashmap.Entry) {
				list = append(list, e.Value().(*Standing))
			})
			return list
		},
	}
}

// Record counts a finished round. Unknown names are rejected.
func (t *Tally) Record(winner string) error {
	standing, ok := t.standing(winner)
	if !ok {
		return fmt.Errorf("unknown winner %s", winner)
	}
	standing.Wins++
	t.rounds++
	return nil
}

func (t *Tally) Rounds() int {
	return t.rounds
}

func (t *Tally) Wins(name string) int {
	if standing, ok := t.standing(name); ok {
		return standing.Wins
	}
	return 0
}

// Standings orders players by wins, then by seat.
func (t *Tally) Standings() []Standing {
	list := t.standings()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Wins != list[j].Wins {
			return list[i].Wins > list[j].Wins
		}
		return list[i].Seat < list[j].Seat
	})
	standings := make([]Standing, 0, len(list))
	for _, standing := range list {
		standings = append(standings, *standing)
	}
	return standings
}

func (t *Tally) Render(out io.Writer) {
	writer := table.NewWriter()
	writer.SetOutputMirror(out)
	writer.AppendHeader(table.Row{"#", "Player", "Wins"})
	for rank, standing := range t.Standings() {
		writer.AppendRow(table.Row{rank + 1, standing.Name, standing.Wins})
	}
	writer.AppendFooter(table.Row{"", "Rounds", t.rounds})
	writer.SetStyle(table.StyleRounded)
	writer.Render()
}
