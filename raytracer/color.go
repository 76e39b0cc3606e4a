package raytracer

// ColorRGB is an unbounded, non-negative light accumulator. Unlike the
// teacher's 8-bit Color, components here can exceed 1 during shading and are
// only brought into range once, at the end of a pixel's evaluation.
type ColorRGB struct {
	R, G, B float64
}

// Black is the zero color, the starting point for light accumulation.
var Black = ColorRGB{}

// White is full-intensity white.
var White = ColorRGB{R: 1, G: 1, B: 1}

// Add returns c+other.
func (c ColorRGB) Add(other ColorRGB) ColorRGB {
	return ColorRGB{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns c scaled by s.
func (c ColorRGB) Scale(s float64) ColorRGB {
	return ColorRGB{c.R * s, c.G * s, c.B * s}
}

// Mul returns the component-wise product of c and other.
func (c ColorRGB) Mul(other ColorRGB) ColorRGB {
	return ColorRGB{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Max returns the largest of the three channels.
func (c ColorRGB) Max() float64 {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	return m
}

// MaxToOne divides every channel by the largest channel when that channel
// exceeds 1, preserving the r:g:b ratio; colors already within range are
// left untouched.
func (c ColorRGB) MaxToOne() ColorRGB {
	m := c.Max()
	if m <= 1 {
		return c
	}
	inv := 1.0 / m
	return c.Scale(inv)
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b ColorRGB, t float64) ColorRGB {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// ToBytes packs c (expected already in [0,1] per channel) into 8-bit RGB.
func (c ColorRGB) ToBytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func toByte(v float64) uint8 {
	v = clamp(v, 0, 1)
	return uint8(v*255 + 0.5)
}
