package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds every tunable the simulation and its hosts read.
// It is built once at startup and never mutated afterwards.
type Config struct {
	// Playfield
	ScreenWidth  float64
	ScreenHeight float64

	// Player
	PlayerRadius        float64
	PlayerTurnSpeed     float64 // Degrees per second
	PlayerSpeed         float64 // Units per second
	PlayerShootSpeed    float64 // Shot speed in units per second
	PlayerShootCooldown float64 // Seconds between shots

	// Shots
	ShotRadius float64

	// Asteroids
	AsteroidMinRadius   float64 // Radius of the smallest asteroid and the split decrement
	AsteroidKinds       int     // Spawn radii are AsteroidMinRadius * 1..AsteroidKinds
	AsteroidSpawnRate   float64 // Seconds between spawns
	AsteroidMinSpeed    float64
	AsteroidMaxSpeed    float64
	AsteroidSpawnSpread float64 // Max deviation in degrees from the inward edge normal

	// Splitting
	SplitMinAngle    float64 // Degrees
	SplitMaxAngle    float64 // Degrees
	SplitSpeedFactor float64

	// Host
	TargetFPS int
	Seed      uint64 // 0 picks a time-based seed
}

// Default returns the stock game configuration.
func Default() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,

		PlayerRadius:        20,
		PlayerTurnSpeed:     300,
		PlayerSpeed:         200,
		PlayerShootSpeed:    500,
		PlayerShootCooldown: 0.3,

		ShotRadius: 5,

		AsteroidMinRadius:   20,
		AsteroidKinds:       3,
		AsteroidSpawnRate:   0.8,
		AsteroidMinSpeed:    40,
		AsteroidMaxSpeed:    100,
		AsteroidSpawnSpread: 30,

		SplitMinAngle:    20,
		SplitMaxAngle:    50,
		SplitSpeedFactor: 1.2,

		TargetFPS: 60,
	}
}

// AsteroidMaxRadius returns the radius of the largest spawnable asteroid.
func (c Config) AsteroidMaxRadius() float64 {
	return c.AsteroidMinRadius * float64(c.AsteroidKinds)
}

// FrameTime returns the host frame budget for TargetFPS.
func (c Config) FrameTime() time.Duration {
	return time.Second / time.Duration(c.TargetFPS)
}

// Validate reports the first tunable that would break the simulation.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"screen width", c.ScreenWidth},
		{"screen height", c.ScreenHeight},
		{"player radius", c.PlayerRadius},
		{"player speed", c.PlayerSpeed},
		{"shot radius", c.ShotRadius},
		{"shot speed", c.PlayerShootSpeed},
		{"asteroid min radius", c.AsteroidMinRadius},
		{"asteroid spawn rate", c.AsteroidSpawnRate},
		{"split speed factor", c.SplitSpeedFactor},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.value)
		}
	}
	if c.AsteroidKinds < 1 {
		return fmt.Errorf("asteroid kinds must be at least 1, got %d", c.AsteroidKinds)
	}
	if c.TargetFPS < 1 {
		return fmt.Errorf("target fps must be at least 1, got %d", c.TargetFPS)
	}
	if c.PlayerShootCooldown < 0 || c.PlayerTurnSpeed < 0 || c.AsteroidSpawnSpread < 0 {
		return errors.New("cooldown, turn speed and spawn spread must not be negative")
	}
	if c.AsteroidMinSpeed > c.AsteroidMaxSpeed {
		return fmt.Errorf("asteroid speed range inverted: %v > %v", c.AsteroidMinSpeed, c.AsteroidMaxSpeed)
	}
	if c.SplitMinAngle > c.SplitMaxAngle {
		return fmt.Errorf("split angle range inverted: %v > %v", c.SplitMinAngle, c.SplitMaxAngle)
	}
	return nil
}

// FromEnv overlays ASTEROIDS_* environment variables on Default and validates the result.
func FromEnv() (Config, error) {
	c := Default()

	var err error
	if c.ScreenWidth, err = GetEnvFloat("ASTEROIDS_SCREEN_WIDTH", c.ScreenWidth); err != nil {
		return Config{}, err
	}
	if c.ScreenHeight, err = GetEnvFloat("ASTEROIDS_SCREEN_HEIGHT", c.ScreenHeight); err != nil {
		return Config{}, err
	}
	if c.AsteroidSpawnRate, err = GetEnvFloat("ASTEROIDS_SPAWN_RATE", c.AsteroidSpawnRate); err != nil {
		return Config{}, err
	}
	if c.TargetFPS, err = GetEnvInt("ASTEROIDS_FPS", c.TargetFPS); err != nil {
		return Config{}, err
	}
	seed, err := GetEnvInt("ASTEROIDS_SEED", int(c.Seed))
	if err != nil {
		return Config{}, err
	}
	if seed < 0 {
		return Config{}, fmt.Errorf("ASTEROIDS_SEED must not be negative, got %d", seed)
	}
	c.Seed = uint64(seed)

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
