package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/sirupsen/logrus"

	"github.com/patchwork-emu/patchwork-dmg/internal/cpu"
	"github.com/patchwork-emu/patchwork-dmg/pkg/log"
)

var (
	romPath = flag.String("rom", "", "flat binary image to load into memory")
	org     = flag.Int("org", 0, "load address for the image")
	hz      = flag.Int("hz", 30, "instructions per second while running")
	debug   = flag.Bool("debug", false, "enable debug logging")
)

// monitor drives the CPU strictly from outside, one Cycle at a time, and
// mirrors its state into the gocui views.
type monitor struct {
	cpu     *cpu.CPU
	running bool
	ticker  *time.Ticker
}

func main() {
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logger := log.New()

	m := &monitor{cpu: cpu.New(logger)}
	if *romPath != "" {
		if err := m.loadImage(*romPath, *org); err != nil {
			logrus.Fatalf("loading %s: %v", *romPath, err)
		}
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		logrus.Fatalf("couldn't create gui: %v", err)
	}
	defer g.Close()

	g.SetManagerFunc(layout)
	initConsole(g)

	if err := m.keybindings(g); err != nil {
		logrus.Fatalf("keybindings: %v", err)
	}

	m.ticker = time.NewTicker(time.Second / time.Duration(*hz))
	go m.runLoop(g)

	g.Update(func(g *gocui.Gui) error {
		writeConsole(fmt.Sprintf("Patchwork DMG monitor. rom=%q org=%#04x", *romPath, *org))
		writeConsole("s: step  r: run/halt  x: reset  Ctrl-C: quit")
		return m.updateViews(g)
	})

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		logrus.Fatalf("main loop: %v", err)
	}
}

func (m *monitor) loadImage(path string, start int) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return m.cpu.WriteBytes(image, start)
}

func (m *monitor) keybindings(g *gocui.Gui) error {
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return err
	}
	if err := g.SetKeybinding("", 's', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		m.step(g)
		return m.updateViews(g)
	}); err != nil {
		return err
	}
	if err := g.SetKeybinding("", 'r', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		m.running = !m.running
		if m.running {
			writeConsole("running")
		} else {
			writeConsole("halted")
		}
		return m.updateViews(g)
	}); err != nil {
		return err
	}
	return g.SetKeybinding("", 'x', gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		m.running = false
		m.cpu = cpu.New(log.New())
		if *romPath != "" {
			if err := m.loadImage(*romPath, *org); err != nil {
				writeConsole(fmt.Sprintf("reset: %v", err))
			}
		}
		writeConsole("reset")
		return m.updateViews(g)
	})
}

// runLoop executes cycles at the configured rate while the monitor is in
// the running state. All view updates go through gocui's Execute.
func (m *monitor) runLoop(g *gocui.Gui) {
	for range m.ticker.C {
		if !m.running {
			continue
		}
		g.Update(func(g *gocui.Gui) error {
			m.step(g)
			return m.updateViews(g)
		})
	}
}

func (m *monitor) step(g *gocui.Gui) {
	if err := m.cpu.Cycle(); err != nil {
		m.running = false
		writeConsole(fmt.Sprintf("halted: %v", err))
	}
}

func (m *monitor) updateViews(g *gocui.Gui) error {
	rv, err := g.View("registers")
	if err != nil {
		// layout has not placed the views yet
		return nil
	}
	rv.Clear()
	m.cpu.DumpRegisters(rv)
	fmt.Fprintf(rv, " mem: %016x\n", m.cpu.MemoryChecksum())

	mv, err := g.View("memory")
	if err != nil {
		return nil
	}
	mv.Clear()
	m.dumpMemory(mv)
	return nil
}

// dumpMemory prints eight rows of sixteen bytes around the program
// counter, through the side-effect-free read surface.
func (m *monitor) dumpMemory(v *gocui.View) {
	base := m.cpu.PC &^ 0x000F
	for row := 0; row < 8; row++ {
		addr := base + uint16(row*16)
		fmt.Fprintf(v, " %04x:", addr)
		for i := 0; i < 16; i++ {
			fmt.Fprintf(v, " %02x", uint8(m.cpu.ReadMemory(cpu.AddressSixteen(addr+uint16(i)))))
		}
		fmt.Fprintln(v)
	}
}

// gocui layout
func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView("memory", 0, 0, maxX-1, 9); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Memory"
	}
	if v, err := g.SetView("registers", 0, 10, maxX-1, 14); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Registers"
	}
	if v, err := g.SetView("status", 0, 15, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Autoscroll = true
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
