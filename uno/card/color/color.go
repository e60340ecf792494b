package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(format string, args ...interface{}) string {
	return c.colorFunction(format, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

// All lists the colors in enumeration order. Tie-breaks follow this order.
var All = []Color{Red, Green, Blue, Yellow}

var Stdout io.Writer = color.Output

// Disable turns off terminal escape codes for every color.
func Disable() {
	color.NoColor = true
}

var colors = map[string]Color{
	Red.name:    Red,
	Green.name:  Green,
	Blue.name:   Blue,
	Yellow.name: Yellow,
}

func ByName(name string) (Color, error) {
	color := colors[strings.ToLower(strings.TrimSpace(name))]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}

// Index returns the enumeration position of c, or -1 for nil.
func Index(c Color) int {
	for i, candidate := range All {
		if candidate == c {
			return i
		}
	}
	return -1
}
