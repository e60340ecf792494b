package game

type PlayerIterator struct {
	players []*playerController
	cycler  *Cycler
}

// newPlayerIterator starts on the last seat so the first Next lands on seat 0.
func newPlayerIterator(players []Player) *PlayerIterator {
	controllers := make([]*playerController, 0, len(players))
	for seat, player := range players {
		controllers = append(controllers, newPlayerController(player, seat))
	}
	return &PlayerIterator{
		players: controllers,
		cycler:  NewCycler(len(controllers), len(controllers)-1),
	}
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) Direction() Direction {
	return i.cycler.Direction()
}

// ForEach visits players in seat order, independent of the turn direction.
func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	i.cycler.ForEach(func(seat int) {
		function(i.players[seat])
	})
}

func (i *PlayerIterator) Len() int {
	return len(i.players)
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() Direction {
	return i.cycler.Reverse()
}

// Skip moves past the next player and returns them.
func (i *PlayerIterator) Skip() *playerController {
	return i.Next()
}
