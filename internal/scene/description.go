// Package scene holds the animated scene: what it contains, its mutable
// state, the per-frame updater, input handling and uniform composition.
package scene

import (
	"fmt"
	"sort"

	"github.com/Faultbox/cowviewer/internal/engine/camera"
	"github.com/Faultbox/cowviewer/internal/engine/lighting"
	"github.com/Faultbox/cowviewer/internal/engine/mesh"
)

// CowColor is the uniform color the cow is painted with.
var CowColor = [4]float32{0.067, 0.039, 0.012, 1.0}

// SpinDesc configures the flick-and-decay spin of the model.
type SpinDesc struct {
	InitialSpeed float32 // deg/s at startup
	FlickSpeed   float32 // deg/s set by a flick
	Decay        float32 // deg/s lost per second
}

// PointLightDesc configures the orbiting point light and its cube marker.
type PointLightDesc struct {
	Light      lighting.Light
	OrbitSpeed float32 // deg/s around +Y
	Orbiting   bool
	MarkerSize float32 // cube half-size
	Marker     [4]float32
}

// SpotlightDesc configures the panning spotlight and its cone marker.
type SpotlightDesc struct {
	Spot     lighting.Spotlight
	Tilt     float32 // deg the cone leans away from straight down
	PanSpeed float32 // deg/s
	PanLimit float32 // pan reverses at ±PanLimit
	Panning  bool
	Cone     mesh.ConeSpec
	Solid    bool // draw the cone as a fan instead of lines
}

// Description is an immutable value saying what a scene contains.
type Description struct {
	Name       string
	ModelColor [4]float32
	Material   lighting.Material
	Camera     camera.Fixed
	Spin       SpinDesc
	PointLight *PointLightDesc
	Spotlight  *SpotlightDesc
}

// Lit reports whether the model is shaded by any light.
func (d Description) Lit() bool {
	return d.PointLight != nil || d.Spotlight != nil
}

// DefaultSpin returns the spin settings: a quick initial turn that slows
// down at 100 deg/s².
func DefaultSpin() SpinDesc {
	return SpinDesc{
		InitialSpeed: 180,
		FlickSpeed:   360,
		Decay:        100,
	}
}

// DefaultPointLight returns the light at (8, 5, 5) marked by a unit cube.
func DefaultPointLight() PointLightDesc {
	return PointLightDesc{
		Light:      lighting.DefaultLight([3]float32{8, 5, 5}),
		OrbitSpeed: 45,
		Orbiting:   true,
		MarkerSize: 1,
		Marker:     CowColor,
	}
}

// DefaultSpotlight returns a spotlight hanging above the model.
func DefaultSpotlight() SpotlightDesc {
	spot := lighting.Spotlight{
		Light: lighting.Light{
			Position: [3]float32{0, 12, 0},
			Ambient:  [4]float32{0.1, 0.1, 0.1, 1.0},
			Diffuse:  [4]float32{1.0, 1.0, 0.8, 1.0},
			Specular: [4]float32{1.0, 1.0, 1.0, 1.0},
		},
		Direction: [3]float32{0, -1, 0},
		CutoffDeg: 20,
		Exponent:  8,
	}
	return SpotlightDesc{
		Spot:     spot,
		Tilt:     25,
		PanSpeed: 40,
		PanLimit: 100,
		Panning:  true,
		Cone: mesh.ConeSpec{
			Radius:   1,
			Height:   2,
			Segments: 24,
			Color:    [4]float32{0.9, 0.8, 0.1, 1.0},
		},
	}
}

// Builder assembles a Description.
type Builder struct {
	desc Description
}

// NewBuilder starts a scene with only the model in it.
func NewBuilder(name string) *Builder {
	return &Builder{desc: Description{
		Name:       name,
		ModelColor: CowColor,
		Material:   lighting.MaterialFromColor(CowColor),
		Camera:     camera.NewFixed(),
		Spin:       DefaultSpin(),
	}}
}

// WithModelColor sets the model color and derives the material from it.
func (b *Builder) WithModelColor(c [4]float32) *Builder {
	b.desc.ModelColor = c
	b.desc.Material = lighting.MaterialFromColor(c)
	return b
}

// WithMaterial overrides the model material.
func (b *Builder) WithMaterial(m lighting.Material) *Builder {
	b.desc.Material = m
	return b
}

// WithCamera overrides the camera.
func (b *Builder) WithCamera(c camera.Fixed) *Builder {
	b.desc.Camera = c
	return b
}

// WithSpin overrides the spin settings.
func (b *Builder) WithSpin(s SpinDesc) *Builder {
	b.desc.Spin = s
	return b
}

// WithPointLight adds the orbiting point light.
func (b *Builder) WithPointLight(p PointLightDesc) *Builder {
	b.desc.PointLight = &p
	return b
}

// WithSpotlight adds the panning spotlight.
func (b *Builder) WithSpotlight(s SpotlightDesc) *Builder {
	b.desc.Spotlight = &s
	return b
}

// Build returns the finished description.
func (b *Builder) Build() Description {
	d := b.desc
	if d.PointLight != nil {
		p := *d.PointLight
		d.PointLight = &p
	}
	if d.Spotlight != nil {
		s := *d.Spotlight
		d.Spotlight = &s
	}
	return d
}

// Preset names.
const (
	PresetPlain     = "plain"
	PresetLightCube = "light-cube"
	PresetSpotlight = "spotlight"
	PresetFull      = "full"
)

var presets = map[string]func() *Builder{
	PresetPlain: func() *Builder {
		return NewBuilder(PresetPlain)
	},
	PresetLightCube: func() *Builder {
		return NewBuilder(PresetLightCube).WithPointLight(DefaultPointLight())
	},
	PresetSpotlight: func() *Builder {
		return NewBuilder(PresetSpotlight).WithSpotlight(DefaultSpotlight())
	},
	PresetFull: func() *Builder {
		return NewBuilder(PresetFull).
			WithPointLight(DefaultPointLight()).
			WithSpotlight(DefaultSpotlight())
	},
}

// Preset returns a builder pre-loaded with a named scene layout.
func Preset(name string) (*Builder, error) {
	mk, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene preset %q (have %v)", name, PresetNames())
	}
	return mk(), nil
}

// PresetNames lists the known presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TunePointLight adjusts the point light if the scene has one.
func (b *Builder) TunePointLight(fn func(*PointLightDesc)) *Builder {
	if b.desc.PointLight != nil {
		fn(b.desc.PointLight)
	}
	return b
}

// TuneSpotlight adjusts the spotlight if the scene has one.
func (b *Builder) TuneSpotlight(fn func(*SpotlightDesc)) *Builder {
	if b.desc.Spotlight != nil {
		fn(b.desc.Spotlight)
	}
	return b
}
