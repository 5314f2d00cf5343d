package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in config directories.
const ConfigFile = "wordfall.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.wordfall/configs/wordfall.yaml -> ./configs/wordfall.yaml -> embedded default
// Values missing from a file keep their defaults. The result is normalized.
func Load(customPath string) (WordfallConfig, error) {
	return load(customPath, searchPaths())
}

func load(customPath string, paths []string) (WordfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return DefaultWordfallConfig(), err
		}
		return Normalize(cfg), nil
	}

	// Try user and local config directories
	for _, p := range paths {
		if cfg, err := readFile(p); err == nil {
			return Normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultWordfallConfig()
	if err := yaml.Unmarshal(defaultWordfallYAML, &cfg); err != nil {
		return DefaultWordfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return Normalize(cfg), nil
}

func readFile(path string) (WordfallConfig, error) {
	cfg := DefaultWordfallConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(ConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordfall", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg WordfallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Normalize replaces invalid values with defaults.
// Words are lowercased and words containing anything but ASCII letters are dropped,
// since only letter keys reach the game.
func Normalize(cfg WordfallConfig) WordfallConfig {
	def := DefaultWordfallConfig()

	words := make([]string, 0, len(cfg.Words))
	for _, w := range cfg.Words {
		w = strings.ToLower(strings.TrimSpace(w))
		if isLetters(w) {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		words = def.Words
	}
	cfg.Words = words

	if cfg.Enemy.BaseSpeed <= 0 {
		cfg.Enemy.BaseSpeed = def.Enemy.BaseSpeed
	}
	if cfg.Enemy.SpawnIntervalMs <= 0 {
		cfg.Enemy.SpawnIntervalMs = def.Enemy.SpawnIntervalMs
	}
	if cfg.Enemy.Height <= 0 {
		cfg.Enemy.Height = def.Enemy.Height
	}
	if cfg.Enemy.Padding < 0 {
		cfg.Enemy.Padding = 0
	}
	if cfg.Projectile.Speed <= 0 {
		cfg.Projectile.Speed = def.Projectile.Speed
	}
	if cfg.Projectile.Radius <= 0 {
		cfg.Projectile.Radius = def.Projectile.Radius
	}
	if cfg.Player.Width <= 0 {
		cfg.Player.Width = def.Player.Width
	}
	if cfg.Player.Height <= 0 {
		cfg.Player.Height = def.Player.Height
	}
	if cfg.Player.BottomOffset < 0 {
		cfg.Player.BottomOffset = def.Player.BottomOffset
	}
	if cfg.Layout.SafetyLineRatio <= 0 || cfg.Layout.SafetyLineRatio >= 1 {
		cfg.Layout.SafetyLineRatio = def.Layout.SafetyLineRatio
	}

	cfg.Rules.Lives = clampI(cfg.Rules.Lives, 1, MaxLives)
	if cfg.Rules.TickThresholdMs <= 0 {
		cfg.Rules.TickThresholdMs = def.Rules.TickThresholdMs
	}
	if cfg.Rules.HitTolerance <= 0 {
		cfg.Rules.HitTolerance = def.Rules.HitTolerance
	}
	if cfg.Rules.CatchUpGap < 1 {
		cfg.Rules.CatchUpGap = def.Rules.CatchUpGap
	}

	switch cfg.Scoring.Mode {
	case ScoringCompletion, ScoringPerChar:
	default:
		cfg.Scoring.Mode = ScoringCompletion
	}
	if cfg.Scoring.WordPoints < 0 {
		cfg.Scoring.WordPoints = def.Scoring.WordPoints
	}
	if cfg.Scoring.CharPoints < 0 {
		cfg.Scoring.CharPoints = def.Scoring.CharPoints
	}
	if cfg.Scoring.CompletionBonusPerChar < 0 {
		cfg.Scoring.CompletionBonusPerChar = def.Scoring.CompletionBonusPerChar
	}

	if cfg.Difficulty.PerStep <= 0 {
		cfg.Difficulty.PerStep = def.Difficulty.PerStep
	}
	if cfg.Difficulty.StepGain < 0 {
		cfg.Difficulty.StepGain = def.Difficulty.StepGain
	}
	if cfg.Difficulty.MaxSteps < 0 {
		cfg.Difficulty.MaxSteps = def.Difficulty.MaxSteps
	}
	cfg.Difficulty.InitialLevel = clampF(cfg.Difficulty.InitialLevel, 0, cfg.Difficulty.MaxSteps)

	if cfg.Effects.StarCount < 0 {
		cfg.Effects.StarCount = 0
	}
	if cfg.Effects.ParticleCount < 0 {
		cfg.Effects.ParticleCount = 0
	}
	if cfg.Effects.ExplosionDecay <= 0 {
		cfg.Effects.ExplosionDecay = def.Effects.ExplosionDecay
	}
	if cfg.Effects.SuccessRadius <= 0 {
		cfg.Effects.SuccessRadius = def.Effects.SuccessRadius
	}
	if cfg.Effects.MissRadius <= 0 {
		cfg.Effects.MissRadius = def.Effects.MissRadius
	}

	cfg.Audio.MasterVolume = clampF(cfg.Audio.MasterVolume, 0, 1)
	cfg.Audio.ShootVolume = clampF(cfg.Audio.ShootVolume, 0, 1)
	cfg.Audio.ExplosionVolume = clampF(cfg.Audio.ExplosionVolume, 0, 1)
	if cfg.Audio.SampleRate <= 0 {
		cfg.Audio.SampleRate = def.Audio.SampleRate
	}
	return cfg
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *WordfallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.BaseSpeed *= 0.75
		cfg.Enemy.SpawnIntervalMs = cfg.Enemy.SpawnIntervalMs * 5 / 4
	case DifficultyHard:
		cfg.Enemy.SpawnIntervalMs = cfg.Enemy.SpawnIntervalMs * 4 / 5
	}
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func clampI(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
