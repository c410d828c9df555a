// Package lighting holds the Phong light and material model the viewer
// feeds to its shaders.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/cowviewer/pkg/math"
)

// Light is a single point light with per-channel RGBA colors.
type Light struct {
	Position [3]float32
	Ambient  [4]float32
	Diffuse  [4]float32
	Specular [4]float32
}

// Material describes how a surface reflects each light channel.
type Material struct {
	Ambient   [4]float32
	Diffuse   [4]float32
	Specular  [4]float32
	Shininess float32
}

// Products holds the light ⊙ material products uploaded as uniforms.
type Products struct {
	Ambient   [4]float32
	Diffuse   [4]float32
	Specular  [4]float32
	Shininess float32
}

// Spotlight is a light that only illuminates inside a cone.
type Spotlight struct {
	Light
	Direction [3]float32
	// CutoffDeg is the cone half-angle in degrees.
	CutoffDeg float32
	// Exponent sharpens the falloff toward the cone edge.
	Exponent float32
}

// ComputeProducts returns the element-wise products of light and material
// colors for each channel.
func ComputeProducts(l Light, m Material) Products {
	return Products{
		Ambient:   mul4(l.Ambient, m.Ambient),
		Diffuse:   mul4(l.Diffuse, m.Diffuse),
		Specular:  mul4(l.Specular, m.Specular),
		Shininess: m.Shininess,
	}
}

// CutoffCosine returns the cosine of the spotlight half-angle, the value
// the fragment shader compares against.
func CutoffCosine(halfAngleDeg float32) float32 {
	return float32(gomath.Cos(float64(halfAngleDeg) * gomath.Pi / 180.0))
}

// DefaultLight returns a white light with a dim ambient term.
func DefaultLight(position [3]float32) Light {
	return Light{
		Position: position,
		Ambient:  [4]float32{0.2, 0.2, 0.2, 1.0},
		Diffuse:  [4]float32{1.0, 1.0, 1.0, 1.0},
		Specular: [4]float32{1.0, 1.0, 1.0, 1.0},
	}
}

// MaterialFromColor derives a material from a base surface color.
func MaterialFromColor(c [4]float32) Material {
	return Material{
		Ambient:   c,
		Diffuse:   [4]float32{clamp01(c[0] * 8), clamp01(c[1] * 8), clamp01(c[2] * 8), c[3]},
		Specular:  [4]float32{0.3, 0.3, 0.3, 1.0},
		Shininess: 20.0,
	}
}

func mul4(a, b [4]float32) [4]float32 {
	return math.Vec4(a).Mul(math.Vec4(b))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
