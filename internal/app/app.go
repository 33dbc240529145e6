// Package app wires configuration, scene, greeting provider and controller
// for the arix programs.
package app

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/phanxgames/arix"
	"github.com/phanxgames/arix/gemini"
)

// Flags are the command-line options shared by every front end.
type Flags struct {
	Config string
	Seed   uint64
	Debug  bool
	Mute   bool
}

// Register binds the shared flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "path to a YAML config file")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed for particle layout (0 picks one)")
	fs.BoolVar(&f.Debug, "debug", false, "print per-frame stats to stderr")
	fs.BoolVar(&f.Mute, "mute", false, "disable the toggle chime")
}

// App holds the wired core objects.
type App struct {
	Config     arix.Config
	Scene      *arix.Scene
	Controller *arix.Controller
	Greeter    *arix.Greeter
}

// New loads the config named by f (or the defaults) and builds the scene.
// apiKey may be empty, in which case every greeting is the fallback.
func New(f Flags, apiKey string) (*App, error) {
	cfg := arix.DefaultConfig()
	if f.Config != "" {
		var err error
		if cfg, err = arix.LoadConfig(f.Config); err != nil {
			return nil, err
		}
	}

	var rng *rand.Rand
	if f.Seed != 0 {
		rng = rand.New(rand.NewPCG(f.Seed, f.Seed))
	}
	scene, err := arix.NewScene(cfg, rng)
	if err != nil {
		return nil, err
	}
	scene.SetDebugMode(f.Debug)

	provider := gemini.NewProvider(apiKey, cfg.GreetingPrompt)
	provider.Model = cfg.GreetingModel
	greeter := arix.NewGreeter(provider, cfg.GreetingTimeout)

	return &App{
		Config:     cfg,
		Scene:      scene,
		Controller: arix.NewController(scene, greeter, cfg.RegenerateChance, rng),
		Greeter:    greeter,
	}, nil
}

// FontData reads the configured overlay font, or returns nil when none is set.
func (a *App) FontData() ([]byte, error) {
	if a.Config.FontPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(a.Config.FontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return data, nil
}
