// breaker is a block breaker for the terminal: steer the paddle with the
// mouse, clear the wall of blocks and dodge the enemy's beams.
//
// Usage:
//
//	breaker play              - Play a run
//	breaker backends          - List available display backends
//	breaker config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible item drops
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write run logs to a file while the game is on screen
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/block-breaker/internal/platform/cell"
	_ "github.com/vovakirdan/block-breaker/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breaker",
	Short: "Block Breaker - a paddle, a ball and a wall of blocks in your terminal",
	Long: `Block Breaker is a terminal arcade game. Move the paddle with the mouse,
launch the ball with a click and break all 140 blocks. Falling items can
turn the ball into a bullet that passes through blocks, and an enemy
patrols the field firing beams at your paddle.

Available commands:
  play      - Start a run
  backends  - Show available display backends
  config    - Print the effective configuration as YAML

Examples:
  breaker play
  breaker play --difficulty hard
  breaker play --backend tcell --mute
  breaker config --difficulty easy > ~/.arcade/configs/breaker.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write run logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}
