package game

type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// Cycler walks seat indices in the current direction.
type Cycler struct {
	count     int
	current   int
	direction Direction
}

func NewCycler(count int, start int) *Cycler {
	return &Cycler{
		count:     count,
		current:   start,
		direction: Clockwise,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() Direction {
	return c.direction
}

func (c *Cycler) ForEach(function func(int)) {
	for index := 0; index < c.count; index++ {
		function(index)
	}
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

// Peek returns the index Next would move to without moving.
func (c *Cycler) Peek() int {
	switch c.direction {
	case CounterClockwise:
		if c.current == 0 {
			return c.count - 1
		}
		return c.current - 1
	default:
		return (c.current + 1) % c.count
	}
}

func (c *Cycler) Reverse() Direction {
	switch c.direction {
	case Clockwise:
		c.direction = CounterClockwise
	case CounterClockwise:
		c.direction = Clockwise
	}
	return c.direction
}
