package arix

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Descriptor is the fixed record of one particle: where it sits in each
// arrangement and how it looks. Descriptors are never mutated after
// GenerateParticles returns them; only the owning group's MorphState changes.
type Descriptor struct {
	TreePosition    mgl64.Vec3
	ScatterPosition mgl64.Vec3
	// Rotation is a fixed Euler orientation (XYZ order, radians).
	Rotation mgl64.Vec3
	Scale    float64
	Color    Color
}

const (
	// treeJitter is the half-width of the uniform noise added to tree x/z.
	treeJitter = 0.1
	// giftBand is the fraction of the tree height band gifts are drawn from.
	giftBand = 0.15
	// giftRise maps the gift band onto world height above the floor.
	giftRise = 4.0
)

// goldenAngle is the spiral increment 2π·φ. Successive needles land at
// irrational fractions of a turn so no two rows line up.
var goldenAngle = 2 * math.Pi * (1 + math.Sqrt(5)) / 2

// attribute ranges per category.
var (
	needleScale   = Range{0.5, 1.0}
	ornamentScale = Range{0.8, 2.0}
	giftScale     = Range{1.5, 3.0}
	starScale     = Range{0.6, 1.2}
	ornamentBlend = Range{0, 0.3}
	giftRadius    = Range{1.2, 1.7}
)

// NewRand returns a random source seeded from the clock. Pass a seeded
// rand.New(rand.NewPCG(a, b)) instead when reproducibility matters.
func NewRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now^0x9e3779b97f4a7c15))
}

// GenerateParticles builds count descriptors for cat. A non-positive count
// yields an empty slice. A nil rng uses NewRand.
//
// Needles, ornaments and stars are placed on a golden-angle spiral that
// sweeps the cone bottom to top; gifts are scattered around the base just
// outside the cone. Every category gets an independent uniform point inside
// the scatter sphere.
func GenerateParticles(rng *rand.Rand, count int, cat Category, geo TreeGeometry) []Descriptor {
	if count <= 0 {
		return []Descriptor{}
	}
	if rng == nil {
		rng = NewRand()
	}

	out := make([]Descriptor, count)
	for i := range out {
		d := &out[i]
		d.TreePosition = treePosition(rng, i, count, cat, geo)
		d.ScatterPosition = scatterPosition(rng, geo.ScatterRadius)
		d.Rotation = mgl64.Vec3{
			rng.Float64() * math.Pi,
			rng.Float64() * math.Pi,
			rng.Float64() * math.Pi,
		}
		d.Scale, d.Color = attributes(rng, cat)
	}
	return out
}

// treePosition places particle i of count on the assembled tree.
func treePosition(rng *rand.Rand, i, count int, cat Category, geo TreeGeometry) mgl64.Vec3 {
	var y, radius, angle float64
	if cat == CategoryGift {
		t := rng.Float64() * giftBand
		y = -geo.Height/2 + t*giftRise
		radius = geo.BaseRadius * giftRadius.Random(rng)
		angle = rng.Float64() * 2 * math.Pi
	} else {
		t := float64(i) / float64(count)
		y = -geo.Height/2 + t*geo.Height
		radius = geo.BaseRadius * (1 - t)
		angle = float64(i) * goldenAngle
	}

	sin, cos := math.Sincos(angle)
	return mgl64.Vec3{
		cos*radius + (rng.Float64()-0.5)*2*treeJitter,
		y,
		sin*radius + (rng.Float64()-0.5)*2*treeJitter,
	}
}

// scatterPosition draws a point uniformly from the volume of a sphere. The
// cube root spreads radii by volume and acos(2u-1) keeps the poles from
// bunching.
func scatterPosition(rng *rand.Rand, radius float64) mgl64.Vec3 {
	r := radius * math.Cbrt(rng.Float64())
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)

	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	return mgl64.Vec3{
		r * sinPhi * cosTheta,
		r * sinPhi * sinTheta,
		r * cosPhi,
	}
}

// attributes picks the fixed scale and color for one particle of cat.
func attributes(rng *rand.Rand, cat Category) (float64, Color) {
	switch cat {
	case CategoryNeedle:
		return needleScale.Random(rng), EmeraldDeep.Lerp(EmeraldLight, rng.Float64())
	case CategoryOrnament:
		return ornamentScale.Random(rng), GoldMetallic.Lerp(GoldRose, ornamentBlend.Random(rng))
	case CategoryGift:
		return giftScale.Random(rng), giftPalette[rng.IntN(len(giftPalette))]
	case CategoryStar:
		return starScale.Random(rng), GoldMetallic
	default:
		return 1, GoldMetallic
	}
}
