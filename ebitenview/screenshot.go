package ebitenview

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/arix"
)

// capture copies the rendered frame. Ebiten pixels are premultiplied, which is
// what image.RGBA holds, so the bytes are used as is.
func capture(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	return img
}

// shotName builds "<frame>-<state>-<label>.png" so a sorted directory listing
// follows the script.
func shotName(frame int, state arix.TreeState, label string) string {
	slug := strings.Trim(strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, label), "-")
	if slug == "" {
		slug = "frame"
	}
	return fmt.Sprintf("%05d-%s-%s.png", frame, strings.ToLower(state.String()), slug)
}

func saveShot(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// saveShots writes one PNG per pending label. Failures are logged; a capture
// never stops the game.
func (g *Game) saveShots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	defer func() { g.shots = g.shots[:0] }()
	if err := os.MkdirAll(g.shotDir, 0o755); err != nil {
		log.Printf("arix: screenshots disabled: %v", err)
		return
	}
	img := capture(screen)
	state := g.ctrl.State()
	for _, label := range g.shots {
		if err := saveShot(filepath.Join(g.shotDir, shotName(g.frame, state, label)), img); err != nil {
			log.Printf("arix: %v", err)
		}
	}
}
