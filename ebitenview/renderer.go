// Package ebitenview renders an arix scene in an Ebitengine window.
package ebitenview

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/arix"
)

// Apparent world-space size of one unit of particle scale, per category.
var spriteSize = map[arix.Category]float64{
	arix.CategoryNeedle:   0.12,
	arix.CategoryOrnament: 0.2,
	arix.CategoryGift:     0.35,
	arix.CategoryStar:     0.18,
	arix.CategoryTopStar:  0.9,
	arix.CategorySnow:     1.0,
	arix.CategorySky:      0.1,
}

// Categories drawn with additive blending so overlaps glow.
var additive = map[arix.Category]bool{
	arix.CategoryStar:    true,
	arix.CategoryTopStar: true,
	arix.CategorySky:     true,
}

// drawOrder puts the sky first and translucent and additive layers after the
// opaque ones.
var drawOrder = [...]arix.Category{
	arix.CategorySky,
	arix.CategoryGift,
	arix.CategoryNeedle,
	arix.CategoryOrnament,
	arix.CategoryStar,
	arix.CategoryTopStar,
	arix.CategorySnow,
}

// sprite is one projected particle.
type sprite struct {
	x, y  float32
	half  float32
	angle float64
	depth float64
	color arix.Color
}

// Renderer projects scene particles to screen-space quads and draws each
// category with a single DrawTriangles32 call. It implements arix.FrameSink.
type Renderer struct {
	colors  map[arix.Category][]arix.Color
	sprites map[arix.Category][]sprite

	vp     mgl64.Mat4
	offset mgl64.Vec3
	w, h   float64
	focal  float64

	verts []ebiten.Vertex
	inds  []uint32
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		colors:  make(map[arix.Category][]arix.Color),
		sprites: make(map[arix.Category][]sprite),
	}
}

// Begin captures the camera for a w x h target and drops last frame's sprites.
func (r *Renderer) Begin(scene *arix.Scene, w, h int) {
	r.w, r.h = float64(w), float64(h)
	aspect := 1.0
	if h > 0 {
		aspect = r.w / r.h
	}
	cam := scene.Camera()
	r.vp = cam.ViewProjection(aspect)
	r.offset = scene.Offset()
	fov := mgl64.DegToRad(scene.Config().Camera.FOV)
	r.focal = r.h / (2 * math.Tan(fov/2))
	for cat := range r.sprites {
		r.sprites[cat] = r.sprites[cat][:0]
	}
}

// InitGroup implements arix.FrameSink.
func (r *Renderer) InitGroup(cat arix.Category, colors []arix.Color) {
	r.colors[cat] = colors
}

// SubmitGroup implements arix.FrameSink. Transforms are projected
// immediately; the slice is not retained.
func (r *Renderer) SubmitGroup(cat arix.Category, transforms []arix.Transform) {
	colors := r.colors[cat]
	size := spriteSize[cat]
	offset := r.offset
	if cat == arix.CategorySnow || cat == arix.CategorySky {
		offset = mgl64.Vec3{}
	}
	out := r.sprites[cat][:0]
	for i := range transforms {
		t := &transforms[i]
		sx, sy, depth, ok := arix.Project(r.vp, t.Position.Add(offset), r.w, r.h)
		if !ok {
			continue
		}
		angle := 0.0
		if cat != arix.CategorySnow && cat != arix.CategorySky {
			angle = r.screenAngle(t, offset, sx, sy)
		}
		half := t.Scale * size * r.focal / depth / 2
		if half < 0.5 {
			half = 0.5
		}
		col := arix.ColorWhite
		if i < len(colors) {
			col = colors[i]
		}
		out = append(out, sprite{
			x:     float32(sx),
			y:     float32(sy),
			half:  float32(half),
			angle: angle,
			depth: depth,
			color: col,
		})
	}
	r.sprites[cat] = out
}

// screenAngle returns the on-screen direction of the particle's local X axis,
// so sprites turn with the 3D orientation.
func (r *Renderer) screenAngle(t *arix.Transform, offset mgl64.Vec3, sx, sy float64) float64 {
	tip := t.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3().Add(offset)
	tx, ty, _, ok := arix.Project(r.vp, tip, r.w, r.h)
	if !ok || (tx == sx && ty == sy) {
		return 0
	}
	return math.Atan2(ty-sy, tx-sx)
}

// Count returns the number of sprites projected for cat this frame.
func (r *Renderer) Count(cat arix.Category) int { return len(r.sprites[cat]) }

// Draw sorts each category back to front and submits it in one batch.
func (r *Renderer) Draw(target *ebiten.Image) {
	for _, cat := range drawOrder {
		sprites := r.sprites[cat]
		if len(sprites) == 0 {
			continue
		}
		sortBackToFront(sprites)
		src := textureFor(cat)
		r.buildQuads(sprites, src.Bounds().Dx(), src.Bounds().Dy())

		var op ebiten.DrawTrianglesOptions
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		if additive[cat] {
			op.Blend = ebiten.BlendLighter
		}
		target.DrawTriangles32(r.verts, r.inds, src, &op)
	}
}

func sortBackToFront(s []sprite) {
	sort.Slice(s, func(i, j int) bool { return s[i].depth > s[j].depth })
}

// buildQuads fills the vertex and index buffers with one rotated quad per
// sprite sampling a tw x th source.
func (r *Renderer) buildQuads(sprites []sprite, tw, th int) {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	su, sv := float32(tw), float32(th)
	corners := [4][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	uvs := [4][2]float32{{0, 0}, {su, 0}, {0, sv}, {su, sv}}

	for i := range sprites {
		sp := &sprites[i]
		sin, cos := math.Sincos(sp.angle)
		s, c := float32(sin)*sp.half, float32(cos)*sp.half
		cr, cg, cb, ca := premultiplied(sp.color)

		base := uint32(len(r.verts))
		for j, k := range corners {
			r.verts = append(r.verts, ebiten.Vertex{
				DstX:   sp.x + k[0]*c - k[1]*s,
				DstY:   sp.y + k[0]*s + k[1]*c,
				SrcX:   uvs[j][0],
				SrcY:   uvs[j][1],
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		r.inds = append(r.inds,
			base+0, base+1, base+2,
			base+1, base+3, base+2,
		)
	}
}

func premultiplied(c arix.Color) (r, g, b, a float32) {
	a = float32(c.A)
	return float32(c.R) * a, float32(c.G) * a, float32(c.B) * a, a
}

// --- Textures ---

var (
	whitePixel *ebiten.Image
	softDot    *ebiten.Image
)

// textureFor returns the sprite texture for cat: a hard square for gifts and
// needles, a soft disc for everything that should sparkle.
func textureFor(cat arix.Category) *ebiten.Image {
	if cat == arix.CategoryGift || cat == arix.CategoryNeedle {
		if whitePixel == nil {
			whitePixel = ebiten.NewImage(1, 1)
			whitePixel.Fill(color.White)
		}
		return whitePixel
	}
	if softDot == nil {
		softDot = newSoftDot(32)
	}
	return softDot
}

// newSoftDot draws a disc whose alpha falls off quadratically to the rim.
func newSoftDot(size int) *ebiten.Image {
	pix := make([]byte, size*size*4)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - r) / r
			dy := (float64(y) + 0.5 - r) / r
			a := 1 - (dx*dx + dy*dy)
			if a < 0 {
				a = 0
			}
			v := byte(a * 255)
			i := (y*size + x) * 4
			// Premultiplied white.
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}
