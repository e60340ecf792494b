package player

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/consts"
)

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

func (d Difficulty) String() string {
	return difficultyNames[d]
}

func ParseDifficulty(text string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	for difficulty, difficultyName := range difficultyNames {
		if difficultyName == name {
			return difficulty, nil
		}
	}
	return Easy, fmt.Errorf("%w '%s'", consts.ErrorsDifficultyInvalid, text)
}
