package scene

import (
	"github.com/Faultbox/cowviewer/internal/engine/lighting"
	"github.com/Faultbox/cowviewer/pkg/math"
)

// DrawUniforms are the per-object matrices uploaded before a draw call.
type DrawUniforms struct {
	Transform math.Mat4 // Projection × View × Model
	Model     math.Mat4
	Normal    [9]float32
	Lit       bool
}

// LightUniforms carry the point light.
type LightUniforms struct {
	Enabled  bool
	Position [3]float32
	Products lighting.Products
}

// SpotUniforms carry the spotlight.
type SpotUniforms struct {
	Enabled   bool
	Position  [3]float32
	Direction [3]float32
	Cutoff    float32 // cosine of the half-angle
	Exponent  float32
	Products  lighting.Products
}

// Frame is everything the renderer uploads for one frame.
type Frame struct {
	Eye   [3]float32
	Model DrawUniforms
	Cube  *DrawUniforms
	Cone  *DrawUniforms
	Light LightUniforms
	Spot  SpotUniforms
}

// Compose builds the uniforms for the current state and viewport size.
// Everything is recomputed each frame.
func Compose(s *State, width, height int) Frame {
	cam := s.Desc.Camera
	viewProj := cam.ViewProjection(width, height)

	f := Frame{
		Eye:   cam.Eye.Array(),
		Model: drawUniforms(viewProj, ModelMatrix(s), s.Desc.Lit()),
	}

	if p := s.Desc.PointLight; p != nil {
		cube := drawUniforms(viewProj, LightMarkerMatrix(s), false)
		f.Cube = &cube

		f.Light = LightUniforms{
			Enabled:  true,
			Position: LightPosition(s).Array(),
			Products: lighting.ComputeProducts(p.Light, s.Desc.Material),
		}
	}

	if sp := s.Desc.Spotlight; sp != nil {
		m := SpotMatrix(s)
		cone := drawUniforms(viewProj, m, false)
		f.Cone = &cone

		f.Spot = SpotUniforms{
			Enabled:   true,
			Position:  sp.Spot.Position,
			Direction: SpotDirection(s).Array(),
			Cutoff:    lighting.CutoffCosine(sp.Spot.CutoffDeg),
			Exponent:  sp.Spot.Exponent,
			Products:  lighting.ComputeProducts(sp.Spot.Light, s.Desc.Material),
		}
	}

	return f
}

// ModelMatrix composes RotY(spin) × T(translation) × RotX × RotY × RotZ.
func ModelMatrix(s *State) math.Mat4 {
	t := s.Transform
	return math.RotateY(math.Radians(s.Spin.Angle)).
		Mul(math.Translate(t.TranslationX, t.TranslationY, t.TranslationZ)).
		Mul(math.RotateX(math.Radians(t.RotationX))).
		Mul(math.RotateY(math.Radians(t.RotationY))).
		Mul(math.RotateZ(math.Radians(t.RotationZ)))
}

// LightMarkerMatrix rotates the cube marker, whose vertices already sit at
// the light's base position, by the orbit angle.
func LightMarkerMatrix(s *State) math.Mat4 {
	return math.RotateY(math.Radians(s.Light.Angle))
}

// LightPosition returns the point light's world position.
func LightPosition(s *State) math.Vec3 {
	if s.Desc.PointLight == nil {
		return math.Vec3{}
	}
	return LightMarkerMatrix(s).TransformVec3(math.V3(s.Desc.PointLight.Light.Position))
}

// SpotMatrix places the cone: T(position) × RotY(pan) × RotX(tilt).
// The cone opens down its local -Y.
func SpotMatrix(s *State) math.Mat4 {
	sp := s.Desc.Spotlight
	if sp == nil {
		return math.Identity()
	}
	pos := sp.Spot.Position
	return math.Translate(pos[0], pos[1], pos[2]).
		Mul(math.RotateY(math.Radians(s.Spot.Angle))).
		Mul(math.RotateX(math.Radians(sp.Tilt)))
}

// SpotDirection returns the unit direction the spotlight points in.
func SpotDirection(s *State) math.Vec3 {
	sp := s.Desc.Spotlight
	if sp == nil {
		return math.Vec3{}
	}
	return SpotMatrix(s).TransformDirection(math.V3(sp.Spot.Direction)).Normalize()
}

func drawUniforms(viewProj, model math.Mat4, lit bool) DrawUniforms {
	return DrawUniforms{
		Transform: viewProj.Mul(model),
		Model:     model,
		Normal:    model.NormalMatrix(),
		Lit:       lit,
	}
}
