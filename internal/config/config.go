// Package config provides YAML-based game configuration loading and
// difficulty management for wordfall.
package config

// WordfallConfig contains all configuration for the typing game.
type WordfallConfig struct {
	Words      []string         `yaml:"words"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Player     PlayerConfig     `yaml:"player"`
	Layout     LayoutConfig     `yaml:"layout"`
	Rules      RulesConfig      `yaml:"rules"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Effects    EffectsConfig    `yaml:"effects"`
	Audio      AudioConfig      `yaml:"audio"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// EnemyConfig defines how falling words are spawned and moved.
type EnemyConfig struct {
	BaseSpeed       float64 `yaml:"base_speed"`        // Playfield units per tick at factor 1
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"` // Base delay between spawns
	Height          float64 `yaml:"height"`
	Padding         float64 `yaml:"padding"` // Added to the measured word width
}

// ProjectileConfig defines turret shots.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// PlayerConfig defines the turret.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the bottom edge to the turret centre
}

// LayoutConfig defines layout-derived positions.
type LayoutConfig struct {
	SafetyLineRatio float64 `yaml:"safety_line_ratio"` // Fraction of the playfield height
}

// RulesConfig defines round rules.
type RulesConfig struct {
	Lives           int     `yaml:"lives"`
	TickThresholdMs int     `yaml:"tick_threshold_ms"`
	HitTolerance    float64 `yaml:"hit_tolerance"` // In character widths
	CatchUpGap      int     `yaml:"catch_up_gap"`  // typed-hit gap that forces an instant hit
}

// ScoringMode selects one of the scoring policies.
type ScoringMode string

const (
	ScoringCompletion ScoringMode = "completion" // Points per completed word
	ScoringPerChar    ScoringMode = "per_char"   // Points per character hit plus completion bonus
)

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	Mode                   ScoringMode `yaml:"mode"`
	WordPoints             int         `yaml:"word_points"`
	CharPoints             int         `yaml:"char_points"`
	CompletionBonusPerChar int         `yaml:"completion_bonus_per_char"`
}

// DifficultyConfig defines the difficulty progression system.
// The factor is 1 + min(initial_level + progress/per_step, max_steps) * step_gain,
// where progress counts destroyed words. Progress is decoupled from the scoring
// policy, so per-character scoring does not speed the game up faster.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // Steps granted before any progress
	PerStep      int     `yaml:"per_step"`
	StepGain     float64 `yaml:"step_gain"`
	MaxSteps     float64 `yaml:"max_steps"`
}

// EffectsConfig defines cosmetic effects.
type EffectsConfig struct {
	StarCount      int     `yaml:"star_count"`
	ParticleCount  int     `yaml:"particle_count"`
	ExplosionDecay float64 `yaml:"explosion_decay"` // Alpha lost per tick
	SuccessRadius  float64 `yaml:"success_radius"`
	MissRadius     float64 `yaml:"miss_radius"`
}

// AudioConfig defines sound effect playback.
type AudioConfig struct {
	Enabled         bool    `yaml:"enabled"`
	MasterVolume    float64 `yaml:"master_volume"`
	ShootVolume     float64 `yaml:"shoot_volume"`
	ExplosionVolume float64 `yaml:"explosion_volume"`
	SampleRate      int     `yaml:"sample_rate"`
}

// AssetsConfig points at optional external assets.
type AssetsConfig struct {
	ProjectileImage string `yaml:"projectile_image"` // png, bmp or webp; empty uses the procedural shape
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 0
	case DifficultyHard:
		return 5
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
