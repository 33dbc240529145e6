package arix

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Palette. Hex values match the scene's art direction.
var (
	EmeraldDeep    = mustHex("#002411")
	EmeraldLight   = mustHex("#005c2f")
	GoldMetallic   = mustHex("#FFD700")
	GoldRose       = mustHex("#E0BFB8")
	RedVelvet      = mustHex("#8a0000")
	RoyalBlue      = mustHex("#001a4d")
	Silver         = mustHex("#C0C0C0")
	BackgroundDark = mustHex("#010502")
)

// giftPalette is the set of wrapping colors a gift picks from.
var giftPalette = [...]Color{RedVelvet, RoyalBlue, GoldMetallic, Silver, EmeraldDeep}

// ParseHexColor parses "#rrggbb" or "rrggbb" into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("parse hex color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	return Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}

func mustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lerp linearly interpolates each channel of c toward o by t.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
		A: lerp(c.A, o.A, t),
	}
}

// RGBA8 returns the color as 8-bit channels, clamped.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Range is a general-purpose min/max range. Random draws from [Min, Max).
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Category tags a particle group. The renderer picks geometry and material
// from it; the engine only uses it to select placement and attribute rules.
type Category uint8

const (
	CategoryNeedle   Category = iota // tetrahedral needles forming the cone
	CategoryOrnament                 // metallic baubles
	CategoryGift                     // boxes clustered around the base
	CategoryStar                     // small octahedral stars
	CategoryTopStar                  // the single crowning star
	CategorySnow                     // ambient flakes, not part of the tree
	CategorySky                      // background star shell

	categoryCount = int(CategorySky) + 1
)

// Categories lists the instanced categories in draw order.
var Categories = [...]Category{CategoryNeedle, CategoryOrnament, CategoryStar, CategoryGift}

func (c Category) String() string {
	switch c {
	case CategoryNeedle:
		return "NEEDLE"
	case CategoryOrnament:
		return "ORNAMENT"
	case CategoryGift:
		return "GIFT"
	case CategoryStar:
		return "STAR"
	case CategoryTopStar:
		return "TOP_STAR"
	case CategorySnow:
		return "SNOW"
	case CategorySky:
		return "SKY"
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// TreeState is the single user-facing switch of the scene.
type TreeState uint8

const (
	StateScattered TreeState = iota // particles dispersed in the sphere
	StateTreeShape                  // particles assembled into the cone
)

func (s TreeState) String() string {
	if s == StateTreeShape {
		return "TREE_SHAPE"
	}
	return "SCATTERED"
}

// Target returns the morph target for the state: 1 when assembled, else 0.
func (s TreeState) Target() float64 {
	if s == StateTreeShape {
		return 1
	}
	return 0
}

// Tick carries frame timing in seconds. Delta is the time since the previous
// frame; Elapsed is the scene clock used by the periodic motion terms.
type Tick struct {
	Delta   float64
	Elapsed float64
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
