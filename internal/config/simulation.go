package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultConfigPath is the path to the canonical simulation defaults file.
const DefaultConfigPath = "config/simulation.defaults.json"

// SimConfig represents the root configuration for a simulation run.
// Every field is optional; the Get* accessors supply defaults for
// anything the file leaves out.
type SimConfig struct {
	// Sensor params
	RaysNum  *int     `json:"rays_num,omitempty"`
	NoiseStd *float64 `json:"noise_std,omitempty"`
	Seed     *uint64  `json:"seed,omitempty"` // 0 seeds from the clock
	Workers  *int     `json:"workers,omitempty"`

	// Frame loop params
	ScanEveryFrames *int    `json:"scan_every_frames,omitempty"`
	FrameInterval   *string `json:"frame_interval,omitempty"` // duration string like "16ms"

	// Initial robot pose
	RobotX *float64 `json:"robot_x,omitempty"`
	RobotY *float64 `json:"robot_y,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }
func ptrUint64(v uint64) *uint64    { return &v }

// EmptySimConfig returns a SimConfig with all fields set to nil.
func EmptySimConfig() *SimConfig {
	return &SimConfig{}
}

// DefaultSimConfig returns a SimConfig with every field populated from the
// built-in defaults.
func DefaultSimConfig() *SimConfig {
	return &SimConfig{
		RaysNum:         ptrInt(72),
		NoiseStd:        ptrFloat64(3),
		Seed:            ptrUint64(0),
		Workers:         ptrInt(1),
		ScanEveryFrames: ptrInt(15),
		FrameInterval:   ptrString("0s"),
		RobotX:          ptrFloat64(500),
		RobotY:          ptrFloat64(250),
	}
}

// LoadSimConfig loads a SimConfig from a JSON file.
// The file must have a .json extension and be at most 1MB. Fields omitted
// from the file fall back to the Get* defaults, so partial configs are safe.
func LoadSimConfig(path string) (*SimConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptySimConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath.
// It searches the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *SimConfig {
	candidates := []string{
		DefaultConfigPath,
		"../../" + DefaultConfigPath,       // from internal/config/
		"../../../" + DefaultConfigPath,    // from internal/lidar/monitor/
		"../../../../" + DefaultConfigPath, // deeper packages
	}
	for _, path := range candidates {
		if cfg, err := LoadSimConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// Validate checks that the configuration values are valid.
func (c *SimConfig) Validate() error {
	if c.RaysNum != nil && *c.RaysNum < 0 {
		return fmt.Errorf("rays_num must be non-negative, got %d", *c.RaysNum)
	}

	if c.NoiseStd != nil && *c.NoiseStd < 0 {
		return fmt.Errorf("noise_std must be non-negative, got %f", *c.NoiseStd)
	}

	if c.Workers != nil && *c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", *c.Workers)
	}

	if c.ScanEveryFrames != nil && *c.ScanEveryFrames < 1 {
		return fmt.Errorf("scan_every_frames must be at least 1, got %d", *c.ScanEveryFrames)
	}

	if c.FrameInterval != nil && *c.FrameInterval != "" {
		d, err := time.ParseDuration(*c.FrameInterval)
		if err != nil {
			return fmt.Errorf("invalid frame_interval '%s': %w", *c.FrameInterval, err)
		}
		if d < 0 {
			return fmt.Errorf("frame_interval must be non-negative, got %s", d)
		}
	}

	return nil
}

// GetRaysNum returns the rays_num value or the default.
func (c *SimConfig) GetRaysNum() int {
	if c.RaysNum == nil {
		return 72
	}
	return *c.RaysNum
}

// GetNoiseStd returns the noise_std value or the default.
func (c *SimConfig) GetNoiseStd() float64 {
	if c.NoiseStd == nil {
		return 3
	}
	return *c.NoiseStd
}

// GetSeed returns the seed value, 0 when unset.
func (c *SimConfig) GetSeed() uint64 {
	if c.Seed == nil {
		return 0
	}
	return *c.Seed
}

// GetWorkers returns the workers value or the default.
func (c *SimConfig) GetWorkers() int {
	if c.Workers == nil {
		return 1
	}
	return *c.Workers
}

// GetScanEveryFrames returns the scan_every_frames value or the default.
func (c *SimConfig) GetScanEveryFrames() int {
	if c.ScanEveryFrames == nil {
		return 15
	}
	return *c.ScanEveryFrames
}

// GetFrameInterval parses and returns the FrameInterval as a time.Duration.
func (c *SimConfig) GetFrameInterval() time.Duration {
	if c.FrameInterval == nil || *c.FrameInterval == "" {
		return 0
	}
	d, err := time.ParseDuration(*c.FrameInterval)
	if err != nil {
		return 0 // default on parse error
	}
	return d
}

// GetRobotX returns the robot_x value or the default.
func (c *SimConfig) GetRobotX() float64 {
	if c.RobotX == nil {
		return 500
	}
	return *c.RobotX
}

// GetRobotY returns the robot_y value or the default.
func (c *SimConfig) GetRobotY() float64 {
	if c.RobotY == nil {
		return 250
	}
	return *c.RobotY
}
