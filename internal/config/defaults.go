package config

import (
	_ "embed"
)

//go:embed defaults/wordfall.yaml
var defaultWordfallYAML []byte

// DefaultWords is the word list used when a config provides none.
var DefaultWords = []string{
	"cat", "dog", "sun", "code", "type", "fast", "word", "rain", "star", "moon",
	"fire", "wave", "tree", "ship", "bolt", "laser", "pixel", "react", "canvas",
	"rocket", "planet", "galaxy", "turret", "shield", "energy", "keyboard",
	"asteroid", "velocity",
}

// DefaultWordfallConfig returns the default configuration.
func DefaultWordfallConfig() WordfallConfig {
	return WordfallConfig{
		Words: append([]string(nil), DefaultWords...),
		Enemy: EnemyConfig{
			BaseSpeed:       0.6,
			SpawnIntervalMs: 2000,
			Height:          30,
			Padding:         20,
		},
		Projectile: ProjectileConfig{
			Speed:  10,
			Radius: 6,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       40,
			BottomOffset: 50,
		},
		Layout: LayoutConfig{
			SafetyLineRatio: 0.8,
		},
		Rules: RulesConfig{
			Lives:           3,
			TickThresholdMs: 16,
			HitTolerance:    3,
			CatchUpGap:      2,
		},
		Scoring: ScoringConfig{
			Mode:                   ScoringCompletion,
			WordPoints:             1,
			CharPoints:             10,
			CompletionBonusPerChar: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0,
			PerStep:      10,
			StepGain:     0.1,
			MaxSteps:     20,
		},
		Effects: EffectsConfig{
			StarCount:      60,
			ParticleCount:  16,
			ExplosionDecay: 0.02,
			SuccessRadius:  40,
			MissRadius:     25,
		},
		Audio: AudioConfig{
			Enabled:         true,
			MasterVolume:    0.8,
			ShootVolume:     0.3,
			ExplosionVolume: 0.5,
			SampleRate:      44100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultWordfallYAML
}
