package action

type Action interface{}

// DrawCardsAction adds its amount to the pending draw penalty.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

// PickColorAction marks a card whose color was chosen by the player who played it.
type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}
