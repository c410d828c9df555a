// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Assets   AssetsConfig   `yaml:"assets"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// SceneConfig selects a scene preset and tunes its motion.
// Angles are degrees, speeds degrees per second.
type SceneConfig struct {
	Preset          string     `yaml:"preset"`
	ModelColor      [4]float32 `yaml:"model_color"`
	InitialSpin     float32    `yaml:"initial_spin"`
	FlickSpeed      float32    `yaml:"flick_speed"`
	SpinDecay       float32    `yaml:"spin_decay"`
	LightOrbitSpeed float32    `yaml:"light_orbit_speed"`
	SpotPanSpeed    float32    `yaml:"spot_pan_speed"`
	SpotPanLimit    float32    `yaml:"spot_pan_limit"`
	SpotCutoff      float32    `yaml:"spot_cutoff"`
	SpotTilt        float32    `yaml:"spot_tilt"`
	SolidCone       bool       `yaml:"solid_cone"`
}

// AssetsConfig points at on-disk replacements for the embedded assets.
// Empty paths mean the embedded copy is used.
type AssetsConfig struct {
	ModelPath string `yaml:"model_path"`
	ShaderDir string `yaml:"shader_dir"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Scene: SceneConfig{
			Preset:          "light-cube",
			ModelColor:      [4]float32{0.067, 0.039, 0.012, 1.0},
			InitialSpin:     180,
			FlickSpeed:      360,
			SpinDecay:       100,
			LightOrbitSpeed: 45,
			SpotPanSpeed:    40,
			SpotPanLimit:    100,
			SpotCutoff:      20,
			SpotTilt:        25,
		},
		Assets: AssetsConfig{},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
