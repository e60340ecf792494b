package card

type Kind int

const (
	KindNumber Kind = iota
	KindSkip
	KindReverse
	KindDrawTwo
	KindWild
	KindWildDrawFour
)

var kindNames = map[Kind]string{
	KindNumber:       "Number",
	KindSkip:         "Skip",
	KindReverse:      "Reverse",
	KindDrawTwo:      "DrawTwo",
	KindWild:         "Wild",
	KindWildDrawFour: "WildDrawFour",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Stackable reports whether a pending draw penalty may be passed on with a card of this kind.
func (k Kind) Stackable() bool {
	return k == KindDrawTwo || k == KindWildDrawFour
}
