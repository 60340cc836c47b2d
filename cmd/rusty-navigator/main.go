package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/doublescale/rusty-navigator/constants"
	"github.com/doublescale/rusty-navigator/core"
	"github.com/doublescale/rusty-navigator/engine"
	"github.com/doublescale/rusty-navigator/input"
	"github.com/doublescale/rusty-navigator/render"
	"github.com/doublescale/rusty-navigator/vmath"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

var debugFlag = flag.Bool("d", false, "Enable debug logging to logs/")

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	err := run(*debugFlag)
	if err != nil {
		log.Printf("fatal: %v", err)
	}
	closeLog(logFile)

	if err != nil {
		fmt.Fprintf(os.Stderr, "rusty-navigator: %v\n", err)
		os.Exit(1)
	}
}

// newScreen creates and initializes the tcell screen on an interactive terminal
func newScreen() (tcell.Screen, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

func run(debugMode bool) error {
	screen, err := newScreen()
	if err != nil {
		return err
	}

	// Normal exit terminal cleanup
	defer screen.Fini()

	core.SetCrashScreen(screen)
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sim := engine.NewSimulation(vmath.NewFastRand(constants.DefaultSeed))
	handler := input.NewHandler(engine.SystemClock{}, debugMode)
	renderer := render.NewTerminalRenderer(screen)

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil once the screen is finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.RenderFrame(sim)

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				renderer.Resize()
			}
			cmd := handler.HandleEvent(ev)
			if !sim.Apply(cmd) {
				log.Printf("quit at frame %d", sim.Frame)
				return nil
			}

		case <-frameTicker.C:
			prev := sim.Phase
			sim.Tick(handler.Controls())
			if debugMode {
				log.Println(sim.Snapshot())
				if sim.Phase != prev {
					log.Printf("phase %s -> %s", prev, sim.Phase)
				}
			}
			renderer.RenderFrame(sim)
		}
	}
}
