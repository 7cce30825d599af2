// jumper is a terminal platform jumper built on a small entity engine.
//
// Usage:
//
//	jumper list                - List available games
//	jumper play [game]         - Play a game (default: jumper)
//	jumper menu                - Start menu to pick games interactively
//	jumper serve               - Start SSH server for remote play
//	jumper scores <game>       - Show high scores for a game
//	jumper simulate [game]     - Run frames headless and print the screen
//
// Global flags:
//
//	--fps <rate>         - Set host tick rate (default: 60)
//	--seed <value>       - Set seed for reproducible platform layouts
//	--db <path>          - Set database path (default: ~/.jumper/scores.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
//	--debug              - Draw debug overlays
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-jumper/internal/games/jumper"
	_ "github.com/vovakirdan/tui-jumper/internal/games/marquee"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Jumper - bounce up an endless column of platforms in your terminal",
	Long: `Jumper is a terminal platform game. Hold left or right to steer,
land on platforms to jump again and climb as high as you can.

Available commands:
  list      - Show all available games
  play      - Play a game directly
  menu      - Interactive game picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run frames without a terminal and print the result

Examples:
  jumper play
  jumper play --difficulty hard
  jumper menu
  jumper serve --ssh :2222
  jumper scores jumper
  jumper simulate --frames 120 --seed 7`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Platform layout seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.jumper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs while a game runs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Draw debug overlays")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
