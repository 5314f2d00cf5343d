// wordfall is a typing-combat arcade game: words fall toward a safety line
// and a turret shoots them down as you type their letters.
//
// Usage:
//
//	wordfall play [variant]    - Play in the terminal
//	wordfall window [variant]  - Play in a desktop window
//	wordfall menu              - Pick a variant and difficulty interactively
//	wordfall serve             - Start SSH server for remote play
//	wordfall list              - List available variants
//	wordfall config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom configuration YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
//	--mute                - Start with sound effects muted
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/config"
	"github.com/vovakirdan/wordfall/internal/games/wordfall"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordfall",
	Short: "Wordfall - type the falling words before they land",
	Long: `Wordfall is a typing arcade game. Words fall from the top of the
screen; type their letters to fire at them before they cross the safety line.
Each word that crosses costs a life, and the round ends when all three are gone.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive variant and difficulty picker
  serve    - Start SSH server for remote play
  list     - Show all available variants
  config   - Print the effective configuration

Examples:
  wordfall play
  wordfall play wordfall_classic --difficulty hard
  wordfall window --mute
  wordfall serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound effects muted")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// env is what every command needs after flag parsing.
type env struct {
	config     config.WordfallConfig
	difficulty config.DifficultyPreset
	logger     *log.Logger
	closeLog   func()
}

// setup builds the logger and loads the configuration. Terminal commands keep
// logs off the screen unless --log-file is given; stderr is used when
// logToStderr is set. Callers must call closeLog when done.
func setup(logToStderr bool) (*env, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	logger, closeLog, err := newLogger(logToStderr)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		return nil, err
	}

	return &env{
		config:     cfg,
		difficulty: preset,
		logger:     logger,
		closeLog:   closeLog,
	}, nil
}

// configure hands the settings to games created from now on.
func (e *env) configure(sound wordfall.SoundPlayer) {
	wordfall.Configure(wordfall.Settings{
		Config:     e.config,
		Difficulty: e.difficulty,
		Logger:     e.logger,
		Sound:      sound,
		Muted:      flagMute,
	})
}

func newLogger(logToStderr bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeLog := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	case logToStderr:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordfall",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	return logger, closeLog, nil
}
