package ui

import (
	"fmt"
	"io"
	"time"
)

// Printer writes narration lines, pausing after each so a human can follow.
type Printer struct {
	out   io.Writer
	delay time.Duration
}

func NewPrinter(out io.Writer, delay time.Duration) *Printer {
	return &Printer{out: out, delay: delay}
}

func (p *Printer) Printfln(format string, args ...interface{}) {
	p.Println(fmt.Sprintf(format, args...))
}

func (p *Printer) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(p.out, args...)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}
