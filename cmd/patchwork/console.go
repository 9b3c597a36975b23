package main

import (
	"fmt"

	"github.com/jroimartin/gocui"
)

// All status console output funnels through a string channel so that
// other goroutines can log without touching gocui directly.

var consoleOut chan string

func initConsole(g *gocui.Gui) {
	consoleOut = make(chan string, 16)
	go func() {
		for s := range consoleOut {
			msg := s
			g.Update(func(g *gocui.Gui) error {
				v, err := g.View("status")
				if err != nil {
					return nil
				}
				fmt.Fprintf(v, "%s\n", msg)
				return nil
			})
		}
	}()
}

func writeConsole(msg string) {
	consoleOut <- msg
}
