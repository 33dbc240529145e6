// Command arix-term renders the morphing particle tree in a terminal.
// Space or Enter toggles; q or Esc quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/arix"
	"github.com/phanxgames/arix/chime"
	"github.com/phanxgames/arix/gemini"
	"github.com/phanxgames/arix/internal/app"
	"github.com/phanxgames/arix/termview"
)

func main() {
	var f app.Flags
	f.Register(flag.CommandLine)
	logPath := flag.String("log", "", "append log output to this file")
	flag.Parse()

	closeLog, err := redirectLog(*logPath)
	if err != nil {
		fatal(err)
	}
	defer closeLog()
	// Per-frame stats go to stderr, which the screen owns.
	f.Debug = false

	a, err := app.New(f, gemini.APIKeyFromEnv())
	if err != nil {
		fatal(err)
	}

	if !f.Mute {
		player := chime.NewPlayer(a.Config.ChimeVolume)
		if err := player.Initialize(); err != nil {
			log.Printf("arix: audio unavailable: %v", err)
		} else {
			defer player.Close()
			a.Controller.OnToggle(func(s arix.TreeState) { player.Play(s) })
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(err)
	}
	if err := screen.Init(); err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a.Controller.SetContext(ctx)

	err = termview.New(screen, a.Scene, a.Controller).Run(ctx)
	screen.Fini()
	stop()
	a.Greeter.Wait()
	if err != nil {
		fatal(err)
	}
}

// redirectLog sends the standard logger to path, or discards it when path is
// empty, since the terminal owns stdout and stderr while running. The logger
// is left untouched when the file cannot be opened.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	lf, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(lf)
	return func() { lf.Close() }, nil
}

func fatal(err error) {
	report(os.Stderr, err)
	os.Exit(1)
}

func report(w io.Writer, err error) {
	_, _ = io.WriteString(w, "arix-term: "+err.Error()+"\n")
}
