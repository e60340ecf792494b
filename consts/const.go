package consts

const (
	MinPlayers = 2
	MaxPlayers = 10

	DeckSize = 108
	HandSize = 7

	// MaxBots leaves a seat for the human player.
	MaxBots = MaxPlayers - 1
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// Errors with Exit set abort the running match.
var (
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
	ErrorsInputClosed        = NewErr(1, true, "Input closed. ")
	ErrorsConfigInvalid      = NewErr(2, true, "Config invalid. ")
	ErrorsGamePlayersInvalid = NewErr(3, true, "Game players invalid. ")
	ErrorsGameNotStarted     = NewErr(3, false, "Game not started. ")
	ErrorsGameStarted        = NewErr(3, false, "Game already started. ")
	ErrorsGameFinished       = NewErr(3, false, "Game already finished. ")
	ErrorsCardNotInHand      = NewErr(4, true, "Card is not in player's hand. ")
	ErrorsIllegalPlay        = NewErr(4, true, "Card cannot be played on the active card. ")
	ErrorsColorNotPicked     = NewErr(4, true, "Wild card played without a color. ")
	ErrorsDifficultyInvalid  = NewErr(5, false, "Difficulty invalid. ")
)
