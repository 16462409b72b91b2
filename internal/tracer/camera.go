package tracer

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Sampling maps a pixel index to a screen coordinate in [-1,1].
type Sampling int

const (
	// SampleCenter uses the pixel center: (i+0.5)/n*2-1.
	SampleCenter Sampling = iota
	// SampleCorner uses the pixel's top-left corner relative to the screen middle: (i-n/2)/(n/2).
	SampleCorner
	// SampleLinspace spreads n samples evenly over [-1,1], both ends included.
	SampleLinspace
)

// Coord returns the screen coordinate of pixel i out of n.
func (s Sampling) Coord(i, n int) float64 {
	switch s {
	case SampleCorner:
		half := float64(n) / 2
		return (float64(i) - half) / half
	case SampleLinspace:
		if n < 2 {
			return 0
		}
		return -1 + 2*float64(i)/float64(n-1)
	default:
		return (float64(i)+0.5)/float64(n)*2 - 1
	}
}

// Camera is a fixed pinhole camera looking along the Z axis.
// Pixel (0,0) is the top-left of the image.
type Camera struct {
	Origin vec3.T
	// Forward is the Z component of the view direction: -1 looks down -Z, +1 down +Z.
	Forward float64
	// FOV is the vertical field of view in radians. Zero means 90 degrees.
	FOV      float64
	Sampling Sampling
	Width    int
	Height   int
}

func (c Camera) tanHalf() float64 {
	if c.FOV <= 0 {
		return 1
	}
	return math.Tan(c.FOV / 2)
}

func (c Camera) forward() float64 {
	if c.Forward == 0 {
		return -1
	}
	return c.Forward
}

// RayFor returns the unit-direction primary ray through pixel (x, y).
func (c Camera) RayFor(x, y int) Ray {
	th := c.tanHalf()
	aspect := float64(c.Width) / float64(c.Height)
	u := c.Sampling.Coord(x, c.Width) * th * aspect
	v := -c.Sampling.Coord(y, c.Height) * th
	dir := vec3.T{u, v, c.forward()}
	return NewRay(c.Origin, dir.Normalized())
}

// Rays returns the primary rays for every pixel in row-major order.
func (c Camera) Rays() []Ray {
	rays := make([]Ray, 0, c.Width*c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			rays = append(rays, c.RayFor(x, y))
		}
	}
	return rays
}

// Scaled returns a copy of c with the resolution multiplied by k.
func (c Camera) Scaled(k int) Camera {
	c.Width *= k
	c.Height *= k
	return c
}
