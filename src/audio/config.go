package audio

import (
	"fmt"
	"time"
)

// ----- Config ----- //

// Config holds the engine timing constants. The tick interval is shorter than
// the block duration, so blocks are requested faster than they play; a
// blocking sink is what keeps the backlog bounded.
type Config struct {
	TickInterval    time.Duration `yaml:"tick_interval"`
	BlockDuration   time.Duration `yaml:"block_duration"`
	PreviewDuration time.Duration `yaml:"preview_duration"`
	DisplaySeconds  float64       `yaml:"display_seconds"`
	MaxDenominator  int64         `yaml:"max_denominator"`
	Wave            string        `yaml:"wave"`
	RestLabel       string        `yaml:"rest_label"`
}

// DefaultConfig ...
func DefaultConfig() *Config {
	return &Config{
		TickInterval:    25 * time.Millisecond,
		BlockDuration:   50 * time.Millisecond,
		PreviewDuration: 25 * time.Millisecond,
		DisplaySeconds:  1,
		MaxDenominator:  defaultMaxDenominator,
		Wave:            "Sinus",
		RestLabel:       "Repos",
	}
}

// Validate ...
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval should be positive: %v", c.TickInterval)
	}
	if c.BlockDuration <= 0 {
		return fmt.Errorf("block_duration should be positive: %v", c.BlockDuration)
	}
	if c.PreviewDuration <= 0 {
		return fmt.Errorf("preview_duration should be positive: %v", c.PreviewDuration)
	}
	if c.DisplaySeconds <= 0 {
		return fmt.Errorf("display_seconds should be positive: %v", c.DisplaySeconds)
	}
	if c.MaxDenominator < 1 {
		return fmt.Errorf("max_denominator should be positive: %v", c.MaxDenominator)
	}
	return nil
}
