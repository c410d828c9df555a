package scene

import (
	gomath "math"
	"time"
)

// Transform is the user-controlled placement of the model.
// Rotations are in degrees.
type Transform struct {
	TranslationX, TranslationY, TranslationZ float32
	RotationX, RotationY, RotationZ          float32
}

// Reset puts the model back at the origin with no rotation.
func (t *Transform) Reset() {
	*t = Transform{}
}

// Spin is the decaying rotation of the model about +Y.
type Spin struct {
	Angle        float32 // degrees, [0,360)
	AngularSpeed float32 // deg/s, never negative
	Decay        float32 // deg/s²
}

// Orbit is the point light's rotation about +Y.
type Orbit struct {
	Angle   float32 // degrees, [0,360)
	Speed   float32 // deg/s
	Enabled bool
}

// Pan is the spotlight's back-and-forth sweep.
type Pan struct {
	Angle     float32 // degrees, within ±Limit
	Speed     float32 // deg/s
	Limit     float32
	Direction float32 // +1 or -1
	Enabled   bool
}

// State is everything that changes while the scene runs. It is owned by the
// frame loop and mutated only by Advance and the Controller.
type State struct {
	Desc      Description
	Transform Transform
	Spin      Spin
	Light     Orbit
	Spot      Pan

	previous time.Time
	started  bool
}

// NewState creates the initial state for a scene.
func NewState(desc Description) *State {
	s := &State{
		Desc: desc,
		Spin: Spin{
			AngularSpeed: desc.Spin.InitialSpeed,
			Decay:        desc.Spin.Decay,
		},
	}
	if p := desc.PointLight; p != nil {
		s.Light = Orbit{Speed: p.OrbitSpeed, Enabled: p.Orbiting}
	}
	if sp := desc.Spotlight; sp != nil {
		s.Spot = Pan{
			Speed:     sp.PanSpeed,
			Limit:     sp.PanLimit,
			Direction: 1,
			Enabled:   sp.Panning,
		}
	}
	return s
}

// Advance moves the animation forward to now. The first call only records
// the timestamp. A clock that goes backwards counts as no time passing.
func (s *State) Advance(now time.Time) {
	if !s.started {
		s.previous = now
		s.started = true
	}

	elapsed := float32(now.Sub(s.previous).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	s.previous = now

	s.Spin.Angle, s.Spin.AngularSpeed = StepSpin(s.Spin.Angle, s.Spin.AngularSpeed, s.Spin.Decay, elapsed)

	if s.Desc.PointLight != nil && s.Light.Enabled {
		s.Light.Angle = WrapDegrees(s.Light.Angle + s.Light.Speed*elapsed)
	}

	if s.Desc.Spotlight != nil && s.Spot.Enabled {
		s.Spot.Angle, s.Spot.Direction = PingPong(s.Spot.Angle, s.Spot.Direction, s.Spot.Speed*elapsed, s.Spot.Limit)
	}
}

// Flick sets the spin speed, restarting the decay.
func (s *State) Flick(speed float32) {
	if speed < 0 {
		speed = 0
	}
	s.Spin.AngularSpeed = speed
}

// ToggleLightOrbit starts or stops the point light orbit.
func (s *State) ToggleLightOrbit() bool {
	s.Light.Enabled = !s.Light.Enabled
	return s.Light.Enabled
}

// ToggleSpotPan starts or stops the spotlight sweep.
func (s *State) ToggleSpotPan() bool {
	s.Spot.Enabled = !s.Spot.Enabled
	return s.Spot.Enabled
}

// StepSpin advances a spin by elapsed seconds: the angle moves at the
// current speed and wraps into [0,360), then the speed drops by
// decay*elapsed without going below zero.
func StepSpin(angle, speed, decay, elapsed float32) (float32, float32) {
	angle = WrapDegrees(angle + speed*elapsed)
	speed -= decay * elapsed
	if speed < 0 {
		speed = 0
	}
	return angle, speed
}

// WrapDegrees maps any angle into [0,360).
func WrapDegrees(angle float32) float32 {
	a := float64(angle)
	a -= gomath.Floor(a/360.0) * 360.0
	w := float32(a)
	if w >= 360 {
		// float32 rounding can land on 360
		w = 0
	}
	return w
}

// PingPong moves angle by delta in direction dir and reflects off ±limit.
// It returns the new angle and direction.
func PingPong(angle, dir, delta, limit float32) (float32, float32) {
	if limit <= 0 {
		return 0, dir
	}
	if dir == 0 {
		dir = 1
	}

	// Fold the excess travel back across the bounds; a full period is 4*limit.
	delta = float32(gomath.Mod(float64(delta), float64(4*limit)))
	angle += dir * delta
	for angle > limit || angle < -limit {
		if angle > limit {
			angle = 2*limit - angle
			dir = -1
		} else {
			angle = -2*limit - angle
			dir = 1
		}
	}
	return angle, dir
}
