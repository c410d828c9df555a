package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/cowviewer/internal/config"
	"github.com/Faultbox/cowviewer/internal/engine/mesh"
	"github.com/Faultbox/cowviewer/internal/scene"
	"github.com/Faultbox/cowviewer/pkg/formats"
)

func TestLoadAssetsEmbedded(t *testing.T) {
	a, err := LoadAssets(context.Background(), config.AssetsConfig{})
	if err != nil {
		t.Fatalf("LoadAssets: %v", err)
	}
	if a.Shaders.Vertex == "" || a.Shaders.Fragment == "" {
		t.Error("shader sources empty")
	}
	if a.Model.Name != "cow" {
		t.Errorf("model = %q, want cow", a.Model.Name)
	}
}

func TestLoadAssetsOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.frag"), []byte("custom frag"), 0644); err != nil {
		t.Fatal(err)
	}
	model := filepath.Join(dir, "tri.obj")
	if err := os.WriteFile(model, []byte("o tri\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := LoadAssets(context.Background(), config.AssetsConfig{ShaderDir: dir, ModelPath: model})
	if err != nil {
		t.Fatalf("LoadAssets: %v", err)
	}
	if a.Shaders.Fragment != "custom frag" {
		t.Errorf("fragment = %q, want the on-disk copy", a.Shaders.Fragment)
	}
	if a.Shaders.Vertex == "" {
		t.Error("vertex shader should fall back to the embedded copy")
	}
	if a.Model.Name != "tri" || len(a.Model.Faces) != 1 {
		t.Errorf("model = %+v, want the single triangle", a.Model)
	}
}

func TestLoadAssetsErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.obj")
	if err := os.WriteFile(bad, []byte("v 0 0 0\nf 1 2 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		cfg    config.AssetsConfig
		target error
	}{
		{"missing shader dir", config.AssetsConfig{ShaderDir: filepath.Join(dir, "none")}, os.ErrNotExist},
		{"missing model", config.AssetsConfig{ModelPath: filepath.Join(dir, "none.obj")}, os.ErrNotExist},
		{"bad model", config.AssetsConfig{ModelPath: bad}, formats.ErrOBJIndexRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAssets(context.Background(), tt.cfg)
			if !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestBuildDescriptionPresets(t *testing.T) {
	tests := []struct {
		preset     string
		pointLight bool
		spotlight  bool
	}{
		{scene.PresetPlain, false, false},
		{scene.PresetLightCube, true, false},
		{scene.PresetSpotlight, false, true},
		{scene.PresetFull, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			sc := config.Default().Scene
			sc.Preset = tt.preset
			desc, err := BuildDescription(sc)
			if err != nil {
				t.Fatalf("BuildDescription: %v", err)
			}
			if (desc.PointLight != nil) != tt.pointLight {
				t.Errorf("point light present = %v, want %v", desc.PointLight != nil, tt.pointLight)
			}
			if (desc.Spotlight != nil) != tt.spotlight {
				t.Errorf("spotlight present = %v, want %v", desc.Spotlight != nil, tt.spotlight)
			}
		})
	}
}

func TestBuildDescriptionTuning(t *testing.T) {
	sc := config.Default().Scene
	sc.Preset = scene.PresetFull
	sc.SpinDecay = 25
	sc.LightOrbitSpeed = 90
	sc.SpotPanLimit = 45
	sc.SpotCutoff = 30
	sc.SolidCone = true
	sc.ModelColor = [4]float32{1, 1, 1, 1}

	desc, err := BuildDescription(sc)
	if err != nil {
		t.Fatalf("BuildDescription: %v", err)
	}
	if desc.Spin.Decay != 25 {
		t.Errorf("decay = %v, want 25", desc.Spin.Decay)
	}
	if desc.PointLight.OrbitSpeed != 90 {
		t.Errorf("orbit speed = %v, want 90", desc.PointLight.OrbitSpeed)
	}
	if desc.Spotlight.PanLimit != 45 || desc.Spotlight.Spot.CutoffDeg != 30 || !desc.Spotlight.Solid {
		t.Errorf("spotlight not tuned: %+v", desc.Spotlight)
	}
	if desc.ModelColor != sc.ModelColor {
		t.Errorf("model color = %v, want %v", desc.ModelColor, sc.ModelColor)
	}
}

func TestBuildDescriptionRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.SceneConfig)
	}{
		{"unknown preset", func(sc *config.SceneConfig) { sc.Preset = "barn" }},
		{"negative decay", func(sc *config.SceneConfig) { sc.SpinDecay = -1 }},
		{"negative flick", func(sc *config.SceneConfig) { sc.FlickSpeed = -10 }},
		{"zero pan limit", func(sc *config.SceneConfig) { sc.SpotPanLimit = 0 }},
		{"wide cutoff", func(sc *config.SceneConfig) { sc.SpotCutoff = 90 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := config.Default().Scene
			tt.modify(&sc)
			if _, err := BuildDescription(sc); !errors.Is(err, ErrInvalidScene) {
				t.Errorf("err = %v, want ErrInvalidScene", err)
			}
		})
	}
}

func TestBuildMeshes(t *testing.T) {
	a, err := LoadAssets(context.Background(), config.AssetsConfig{})
	if err != nil {
		t.Fatal(err)
	}

	sc := config.Default().Scene
	sc.Preset = scene.PresetFull
	desc, err := BuildDescription(sc)
	if err != nil {
		t.Fatal(err)
	}

	m, err := BuildMeshes(a.Model, desc)
	if err != nil {
		t.Fatalf("BuildMeshes: %v", err)
	}
	if got, want := m.Model.VertexCount(), len(a.Model.Faces)*3; got != want {
		t.Errorf("model vertices = %d, want %d", got, want)
	}
	if m.Cube == nil || m.Cube.VertexCount() != mesh.CubeVertexCount {
		t.Errorf("cube = %v, want %d line vertices", m.Cube, mesh.CubeVertexCount)
	}
	if m.Cone == nil || m.Cone.Primitive != mesh.Lines {
		t.Errorf("cone should be a line mesh by default")
	}

	sc.Preset = scene.PresetPlain
	desc, _ = BuildDescription(sc)
	m, err = BuildMeshes(a.Model, desc)
	if err != nil {
		t.Fatal(err)
	}
	if m.Cube != nil || m.Cone != nil {
		t.Error("plain scene should have no markers")
	}
}
