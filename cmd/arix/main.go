// Command arix opens a window with the morphing particle tree. Click the
// button or press Space to toggle between the scattered and assembled scene.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/arix"
	"github.com/phanxgames/arix/chime"
	"github.com/phanxgames/arix/ebitenview"
	"github.com/phanxgames/arix/gemini"
	"github.com/phanxgames/arix/internal/app"
)

const (
	windowTitle = "ARIX"
	screenW     = 1280
	screenH     = 800
)

func main() {
	var f app.Flags
	f.Register(flag.CommandLine)
	showFPS := flag.Bool("fps", false, "show the FPS counter")
	scriptPath := flag.String("script", "", "run a YAML or JSON demo script")
	shotDir := flag.String("shots", "screenshots", "directory for script screenshots")
	flag.Parse()

	a, err := app.New(f, gemini.APIKeyFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	defer a.Greeter.Wait()

	if !f.Mute {
		player := chime.NewPlayer(a.Config.ChimeVolume)
		if err := player.Initialize(); err != nil {
			log.Printf("arix: audio unavailable: %v", err)
		} else {
			defer player.Close()
			a.Controller.OnToggle(func(s arix.TreeState) { player.Play(s) })
		}
	}

	font, err := a.FontData()
	if err != nil {
		log.Fatal(err)
	}
	if font == nil {
		log.Printf("arix: no fontPath configured; Chinese overlay text needs a CJK font")
	}

	var script *ebitenview.Script
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatal(err)
		}
		if script, err = ebitenview.LoadScript(data); err != nil {
			log.Fatal(err)
		}
	}

	game, err := ebitenview.NewGame(a.Scene, a.Controller, ebitenview.Options{
		FontData:      font,
		ShowFPS:       *showFPS,
		Script:        script,
		ScreenshotDir: *shotDir,
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := ebitenview.Run(game, windowTitle, screenW, screenH); err != nil {
		log.Fatal(err)
	}
}
