// blobclimb is a vertical platformer: climb an endless generated tower or a
// hand made level.
//
// Usage:
//
//	blobclimb                     - Play the endless generated level
//	blobclimb play --level demo   - Play a static level
//	blobclimb replay <file>       - Watch a recorded run
//	blobclimb preview [level]     - Print a level in the terminal
//	blobclimb validate            - Check tuning, levels and sprites
//	blobclimb levels              - List the available levels
//
// Global flags:
//
//	--config <dir>      - Config directory with game.yaml and levels/ (default: embedded)
//	--seed <value>      - Level generator seed (0 = random based on time)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfigDir string
	flagSeed      int64
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blobclimb",
	Short: "Blob Climbers - climb as high as you can",
	Long: `Blob Climbers is a platformer about climbing. The endless mode builds
platforms above you as you go; static levels are loaded from JSON files.

Controls:
  Left/Right, A/D   - Walk
  Up, W, Space      - Jump
  P                 - Pause
  Esc               - Quit
  F5                - Save the recording (with --record)

Examples:
  blobclimb
  blobclimb --seed 42
  blobclimb play --level demo --config ./configs --watch
  blobclimb play --record run.json
  blobclimb replay run.json --headless`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (empty = embedded configs)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Level generator seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(levelsCmd)
}
