// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Navigation NavigationConfig `yaml:"navigation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// NavigationConfig holds camera navigation settings applied at startup.
type NavigationConfig struct {
	FirstPerson       bool `yaml:"first_person"`
	PlanView          bool `yaml:"plan_view"`
	Pivoting          bool `yaml:"pivoting"`
	DollyToPointer    bool `yaml:"dolly_to_pointer"`
	DollyToPivot      bool `yaml:"dolly_to_pivot"`
	ConstrainVertical bool `yaml:"constrain_vertical"`
	DoublePickFlyTo   bool `yaml:"double_pick_fly_to"`
	PanRightClick     bool `yaml:"pan_right_click"`

	RotationInertia float32 `yaml:"rotation_inertia"`
	DollyInertia    float32 `yaml:"dolly_inertia"`

	DollyRate         float32 `yaml:"dolly_rate"`
	MousePanRate      float32 `yaml:"mouse_pan_rate"`
	KeyboardPanRate   float32 `yaml:"keyboard_pan_rate"`
	KeyboardOrbitRate float32 `yaml:"keyboard_orbit_rate"`
	TouchRotateRate   float32 `yaml:"touch_rotate_rate"`
	TouchPanRate      float32 `yaml:"touch_pan_rate"`
	TouchZoomRate     float32 `yaml:"touch_zoom_rate"`

	KeyboardLayout string `yaml:"keyboard_layout"`
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
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Navigation: NavigationConfig{
			Pivoting:          true,
			DollyToPointer:    true,
			DoublePickFlyTo:   true,
			PanRightClick:     true,
			RotationInertia:   0,
			DollyInertia:      0,
			DollyRate:         1.0,
			MousePanRate:      1.0,
			KeyboardPanRate:   5.0,
			KeyboardOrbitRate: 90.0,
			TouchRotateRate:   1.0,
			TouchPanRate:      1.0,
			TouchZoomRate:     1.0,
			KeyboardLayout:    "qwerty",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
