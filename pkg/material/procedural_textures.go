package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates improved gradient noise from a shuffled permutation table
type Perlin struct {
	perm [perlinPointCount * 2]int
}

// NewPerlin builds the permutation table from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	shuffled := random.Perm(perlinPointCount)
	for i, v := range shuffled {
		p.perm[i] = v
		p.perm[i+perlinPointCount] = v
	}
	return p
}

// Noise returns smooth noise in [0, 1] at point
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	x, y, z := point.X-fx, point.Y-fy, point.Z-fz

	xi := int(fx) & 255
	yi := int(fy) & 255
	zi := int(fz) & 255

	u, v, w := fade(x), fade(y), fade(z)

	perm := &p.perm
	a := perm[xi] + yi
	aa := perm[a] + zi
	ab := perm[a+1] + zi
	b := perm[xi+1] + yi
	ba := perm[b] + zi
	bb := perm[b+1] + zi

	res := lerp(w,
		lerp(v,
			lerp(u, grad(perm[aa], x, y, z), grad(perm[ba], x-1, y, z)),
			lerp(u, grad(perm[ab], x, y-1, z), grad(perm[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(perm[aa+1], x, y, z-1), grad(perm[ba+1], x-1, y, z-1)),
			lerp(u, grad(perm[ab+1], x, y-1, z-1), grad(perm[bb+1], x-1, y-1, z-1))),
	)
	return (res + 1.0) / 2.0
}

// Turbulence sums depth octaves of noise, halving the weight and doubling the frequency each time
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return accum
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	v := z
	if h < 4 {
		v = y
	} else if h == 12 || h == 14 {
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// NoiseTexture is a grey marble pattern driven by Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture with the given stripe frequency
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(random), Scale: scale}
}

// Evaluate returns 0.5·(1 + sin(scale·z + 10·turb(p))) as grey
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	t := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.noise.Turbulence(point, 7)))
	return core.NewVec3(t, t, t)
}

// WoodTexture mixes light and dark sources in turbulent rings along x
type WoodTexture struct {
	noise       *Perlin
	Scale       float64
	Light, Dark ColorSource
}

// NewWoodTexture creates a wood texture with the given ring frequency
func NewWoodTexture(scale float64, light, dark ColorSource, random *rand.Rand) *WoodTexture {
	return &WoodTexture{noise: NewPerlin(random), Scale: scale, Light: light, Dark: dark}
}

// Evaluate blends light and dark by the ring pattern at point
func (w *WoodTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	n := w.noise.Turbulence(point.Multiply(w.Scale), 8) * 0.5
	rings := point.X*w.Scale + 10.0*n
	t := 0.5 * (1.0 + math.Sin(rings))
	return w.Light.Evaluate(uv, point).Multiply(1 - t).Add(w.Dark.Evaluate(uv, point).Multiply(t))
}
