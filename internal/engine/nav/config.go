package nav

// KeyboardLayout selects the physical key bindings for keyboard navigation.
type KeyboardLayout string

const (
	LayoutQWERTY KeyboardLayout = "qwerty"
	LayoutAZERTY KeyboardLayout = "azerty"
)

// inertiaSoftCap keeps decay factors strictly below 1 so residual motion is
// guaranteed to converge to the epsilon-zeroed state.
const inertiaSoftCap = 0.995

// Default option values. Rates reset to these when a setter receives a
// non-positive value.
const (
	DefaultDollyRate            = 1.0
	DefaultMousePanRate         = 1.0
	DefaultKeyboardPanRate      = 5.0
	DefaultKeyboardOrbitRate    = 90.0
	DefaultTouchRotateRate      = 1.0
	DefaultTouchPanRate         = 1.0
	DefaultTouchZoomRate        = 1.0
	DefaultTapInterval          = 150.0 // ms
	DefaultDoubleTapInterval    = 325.0 // ms
	DefaultTapDistanceThreshold = 4.0   // px
)

// Config is the navigation option table. Fields are mutated only through the
// validating setters on CameraControl; handlers read it once per invocation.
type Config struct {
	Active         bool
	PointerEnabled bool

	FirstPerson bool
	PlanView    bool
	Pivoting    bool

	DollyToPointer    bool
	DollyToPivot      bool
	ConstrainVertical bool

	RotationInertia float32
	DollyInertia    float32

	DollyRate         float32
	MousePanRate      float32
	KeyboardPanRate   float32
	KeyboardOrbitRate float32
	TouchRotateRate   float32
	TouchPanRate      float32
	TouchZoomRate     float32

	TapInterval          float64
	DoubleTapInterval    float64
	TapDistanceThreshold float32

	DoublePickFlyTo bool
	PanRightClick   bool
	KeyboardLayout  KeyboardLayout
}

// DefaultConfig returns the option table with viewer defaults: navigation
// enabled, orbit mode, no inertia.
func DefaultConfig() Config {
	return Config{
		Active:               true,
		PointerEnabled:       true,
		Pivoting:             false,
		DollyRate:            DefaultDollyRate,
		MousePanRate:         DefaultMousePanRate,
		KeyboardPanRate:      DefaultKeyboardPanRate,
		KeyboardOrbitRate:    DefaultKeyboardOrbitRate,
		TouchRotateRate:      DefaultTouchRotateRate,
		TouchPanRate:         DefaultTouchPanRate,
		TouchZoomRate:        DefaultTouchZoomRate,
		TapInterval:          DefaultTapInterval,
		DoubleTapInterval:    DefaultDoubleTapInterval,
		TapDistanceThreshold: DefaultTapDistanceThreshold,
		KeyboardLayout:       LayoutQWERTY,
	}
}
