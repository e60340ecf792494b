package player

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

func NewBot(difficulty Difficulty, name string, rng *rand.Rand) (game.Player, error) {
	switch difficulty {
	case Easy:
		return NewEasyPlayer(name, rng), nil
	case Medium:
		return NewMediumPlayer(name, rng), nil
	case Hard:
		return NewHardPlayer(name, rng), nil
	default:
		return nil, fmt.Errorf("%w %d", consts.ErrorsDifficultyInvalid, difficulty)
	}
}

// CreatePlayers seats the human first, if there is one, followed by the bots.
// Each bot gets its own random source seeded from rng.
func CreatePlayers(human game.Player, difficulties []Difficulty, rng *rand.Rand) ([]game.Player, error) {
	players := make([]game.Player, 0, len(difficulties)+1)
	taken := ""
	if human != nil {
		players = append(players, human)
		taken = human.Name()
	}

	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if name != taken {
			names = append(names, name)
		}
	}
	if len(difficulties) > len(names) {
		return nil, fmt.Errorf("%w %d bots requested", consts.ErrorsGamePlayersInvalid, len(difficulties))
	}
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })

	for index, difficulty := range difficulties {
		bot, err := NewBot(difficulty, names[index], rand.New(rand.NewSource(rng.Int63())))
		if err != nil {
			return nil, err
		}
		players = append(players, bot)
	}
	return players, nil
}

// Difficulties returns amount copies of difficulty, or the tiers in turn when mixed is set.
func Difficulties(amount int, difficulty Difficulty, mixed bool) []Difficulty {
	difficulties := make([]Difficulty, 0, amount)
	for index := 0; index < amount; index++ {
		if mixed {
			difficulties = append(difficulties, Difficulty(index%len(difficultyNames)))
			continue
		}
		difficulties = append(difficulties, difficulty)
	}
	return difficulties
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
