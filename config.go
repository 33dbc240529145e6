package arix

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// TreeGeometry describes the cone the particles assemble into and the sphere
// they disperse into.
type TreeGeometry struct {
	// Height is the cone height; the tree spans [-Height/2, Height/2] on Y.
	Height float64 `yaml:"height"`
	// BaseRadius is the cone radius at the bottom of the tree.
	BaseRadius float64 `yaml:"baseRadius"`
	// ScatterRadius is the radius of the sphere used when scattered.
	ScatterRadius float64 `yaml:"scatterRadius"`
}

// Counts holds the number of particles per instanced category.
type Counts struct {
	Needles   int `yaml:"needles"`
	Ornaments int `yaml:"ornaments"`
	Gifts     int `yaml:"gifts"`
	Stars     int `yaml:"stars"`
}

// Of returns the configured count for cat. TopStar is always 1.
func (c Counts) Of(cat Category) int {
	switch cat {
	case CategoryNeedle:
		return c.Needles
	case CategoryOrnament:
		return c.Ornaments
	case CategoryGift:
		return c.Gifts
	case CategoryStar:
		return c.Stars
	case CategoryTopStar:
		return 1
	}
	return 0
}

// CameraConfig drives the CameraRig.
type CameraConfig struct {
	FOV float64 `yaml:"fov"` // vertical field of view in degrees
	// Height and Distance of the eye for each state.
	TreeHeight        float64 `yaml:"treeHeight"`
	TreeDistance      float64 `yaml:"treeDistance"`
	ScatteredHeight   float64 `yaml:"scatteredHeight"`
	ScatteredDistance float64 `yaml:"scatteredDistance"`
	// Glide is the seconds the rig takes to move between the two poses.
	Glide float64 `yaml:"glide"`
	// OrbitSpeed is the auto-orbit rate in radians per second while assembled.
	OrbitSpeed float64 `yaml:"orbitSpeed"`
}

// Config is the full runtime configuration. Zero-valued fields in a loaded
// file keep their defaults.
type Config struct {
	Counts   Counts       `yaml:"counts"`
	Geometry TreeGeometry `yaml:"geometry"`

	// TransitionTime is the damping time constant in seconds.
	TransitionTime float64 `yaml:"transitionTime"`
	// RotationSpeed scales the assembling yaw, in radians per second at full morph.
	RotationSpeed float64 `yaml:"rotationSpeed"`
	// SceneOffset shifts the whole tree group in world space.
	SceneOffset [3]float64 `yaml:"sceneOffset"`

	SnowCount int          `yaml:"snowCount"`
	SkyCount  int          `yaml:"skyCount"`
	Camera    CameraConfig `yaml:"camera"`

	// RegenerateChance is the probability a greeting is requested again on a
	// later transition into the assembled state.
	RegenerateChance float64       `yaml:"regenerateChance"`
	GreetingTimeout  time.Duration `yaml:"greetingTimeout"`
	GreetingModel    string        `yaml:"greetingModel"`
	GreetingPrompt   string        `yaml:"greetingPrompt"`

	// FontPath optionally points to a TTF/OTF used for the overlay. A CJK
	// capable font is needed to display the default greeting.
	FontPath    string  `yaml:"fontPath"`
	ChimeVolume float64 `yaml:"chimeVolume"`
}

// DefaultConfig returns the stock scene configuration.
func DefaultConfig() Config {
	return Config{
		Counts: Counts{
			Needles:   3500,
			Ornaments: 150,
			Gifts:     50,
			Stars:     100,
		},
		Geometry: TreeGeometry{
			Height:        12,
			BaseRadius:    4.5,
			ScatterRadius: 25,
		},
		TransitionTime: 1.5,
		RotationSpeed:  0.1,
		SceneOffset:    [3]float64{0, -2, 0},
		SnowCount:      300,
		SkyCount:       5000,
		Camera: CameraConfig{
			FOV:               45,
			TreeHeight:        2,
			TreeDistance:      18,
			ScatteredHeight:   5,
			ScatteredDistance: 25,
			Glide:             2.5,
			OrbitSpeed:        0.05,
		},
		RegenerateChance: 0.3,
		GreetingTimeout:  15 * time.Second,
		GreetingModel:    "gemini-2.5-flash",
		GreetingPrompt: "Write a very short, elegant, single-sentence luxury Christmas greeting in Chinese " +
			"suitable for a high-end jewelry brand. Keep it poetic and under 20 Chinese characters.",
		ChimeVolume: 0.6,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. Zero counts are allowed (the group is empty);
// negative counts are not.
func (c *Config) Validate() error {
	for _, cat := range Categories {
		if c.Counts.Of(cat) < 0 {
			return fmt.Errorf("%w: %s count %d is negative", ErrInvalidConfig, cat, c.Counts.Of(cat))
		}
	}
	if c.Geometry.Height <= 0 {
		return fmt.Errorf("%w: geometry.height must be positive, got %v", ErrInvalidConfig, c.Geometry.Height)
	}
	if c.Geometry.BaseRadius <= 0 {
		return fmt.Errorf("%w: geometry.baseRadius must be positive, got %v", ErrInvalidConfig, c.Geometry.BaseRadius)
	}
	if c.Geometry.ScatterRadius <= 0 {
		return fmt.Errorf("%w: geometry.scatterRadius must be positive, got %v", ErrInvalidConfig, c.Geometry.ScatterRadius)
	}
	if c.TransitionTime <= 0 {
		return fmt.Errorf("%w: transitionTime must be positive, got %v", ErrInvalidConfig, c.TransitionTime)
	}
	if c.RegenerateChance < 0 || c.RegenerateChance > 1 {
		return fmt.Errorf("%w: regenerateChance must be in [0,1], got %v", ErrInvalidConfig, c.RegenerateChance)
	}
	if c.SnowCount < 0 {
		return fmt.Errorf("%w: snowCount %d is negative", ErrInvalidConfig, c.SnowCount)
	}
	if c.SkyCount < 0 {
		return fmt.Errorf("%w: skyCount %d is negative", ErrInvalidConfig, c.SkyCount)
	}
	if c.GreetingTimeout < 0 {
		return fmt.Errorf("%w: greetingTimeout %v is negative", ErrInvalidConfig, c.GreetingTimeout)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera.fov must be in (0,180), got %v", ErrInvalidConfig, c.Camera.FOV)
	}
	if c.ChimeVolume < 0 {
		return fmt.Errorf("%w: chimeVolume %v is negative", ErrInvalidConfig, c.ChimeVolume)
	}
	return nil
}
