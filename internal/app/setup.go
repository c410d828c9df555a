package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/Faultbox/cowviewer/internal/assets"
	"github.com/Faultbox/cowviewer/internal/config"
	"github.com/Faultbox/cowviewer/internal/engine/mesh"
	"github.com/Faultbox/cowviewer/internal/engine/renderer"
	"github.com/Faultbox/cowviewer/internal/scene"
	"github.com/Faultbox/cowviewer/pkg/formats"
)

// ErrInvalidScene reports scene tuning that cannot animate sensibly.
var ErrInvalidScene = errors.New("invalid scene config")

// Assets are the files the viewer needs before it opens a window.
type Assets struct {
	Shaders assets.ShaderSources
	Model   *formats.OBJ
}

// LoadAssets reads the shader pair and the model. Configured paths replace
// the embedded copies.
func LoadAssets(ctx context.Context, ac config.AssetsConfig) (*Assets, error) {
	mgr := assets.NewManager()
	defer mgr.Close()

	if ac.ShaderDir != "" {
		if err := mgr.AddDir(ac.ShaderDir); err != nil {
			return nil, err
		}
	}

	shaders, err := mgr.LoadShaders(ctx, assets.VertexShader, assets.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("loading shaders: %w", err)
	}

	var obj *formats.OBJ
	if ac.ModelPath != "" {
		obj, err = formats.LoadOBJ(ac.ModelPath)
	} else {
		obj, err = mgr.LoadModel(assets.CowModel)
	}
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}

	return &Assets{Shaders: shaders, Model: obj}, nil
}

// BuildDescription turns the scene config into a scene description.
func BuildDescription(sc config.SceneConfig) (scene.Description, error) {
	switch {
	case sc.SpinDecay < 0:
		return scene.Description{}, fmt.Errorf("%w: spin_decay %v is negative", ErrInvalidScene, sc.SpinDecay)
	case sc.InitialSpin < 0 || sc.FlickSpeed < 0:
		return scene.Description{}, fmt.Errorf("%w: spin speeds must not be negative", ErrInvalidScene)
	case sc.SpotPanLimit <= 0:
		return scene.Description{}, fmt.Errorf("%w: spot_pan_limit %v must be positive", ErrInvalidScene, sc.SpotPanLimit)
	case sc.SpotCutoff <= 0 || sc.SpotCutoff >= 90:
		return scene.Description{}, fmt.Errorf("%w: spot_cutoff %v outside (0, 90)", ErrInvalidScene, sc.SpotCutoff)
	}

	b, err := scene.Preset(sc.Preset)
	if err != nil {
		return scene.Description{}, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	b.WithModelColor(sc.ModelColor).
		WithSpin(scene.SpinDesc{
			InitialSpeed: sc.InitialSpin,
			FlickSpeed:   sc.FlickSpeed,
			Decay:        sc.SpinDecay,
		}).
		TunePointLight(func(p *scene.PointLightDesc) {
			p.OrbitSpeed = sc.LightOrbitSpeed
		}).
		TuneSpotlight(func(s *scene.SpotlightDesc) {
			s.PanSpeed = sc.SpotPanSpeed
			s.PanLimit = sc.SpotPanLimit
			s.Spot.CutoffDeg = sc.SpotCutoff
			s.Tilt = sc.SpotTilt
			s.Solid = sc.SolidCone
		})

	return b.Build(), nil
}

// BuildMeshes expands the model and generates the markers the scene needs.
func BuildMeshes(obj *formats.OBJ, desc scene.Description) (renderer.Meshes, error) {
	model, err := mesh.Build(obj.Vertices, obj.Faces, desc.ModelColor)
	if err != nil {
		return renderer.Meshes{}, fmt.Errorf("building model %q: %w", obj.Name, err)
	}

	m := renderer.Meshes{Model: model}
	if p := desc.PointLight; p != nil {
		m.Cube = mesh.Cube(p.Light.Position, p.MarkerSize, p.Marker)
	}
	if sp := desc.Spotlight; sp != nil {
		if sp.Solid {
			m.Cone = mesh.ConeFan(sp.Cone)
		} else {
			m.Cone = mesh.ConeLines(sp.Cone)
		}
	}
	return m, nil
}
