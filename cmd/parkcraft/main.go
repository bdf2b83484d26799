package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zappabad/parkcraft/internal/game"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// globalFlags are shared by every command that builds a game.
type globalFlags struct {
	configPath   string
	seed         int64
	savePath     string
	tickInterval time.Duration
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	cmd := &cobra.Command{
		Use:          "parkcraft",
		Short:        "Parkcraft: a theme park news ticker",
		Long:         "Parkcraft simulates a theme park and shows its news messages in a terminal ticker.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&gf.configPath, "config", "c", "", "path to YAML config file")
	cmd.PersistentFlags().Int64Var(&gf.seed, "seed", 0, "seed for the demo park and message feed")
	cmd.PersistentFlags().StringVar(&gf.savePath, "save-path", "", "SQLite file holding save slots")
	cmd.PersistentFlags().DurationVar(&gf.tickInterval, "tick", 0, "wall-clock time between ticks")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newPlayCmd(&gf))
	cmd.AddCommand(newSimCmd(&gf))
	cmd.AddCommand(newMessagesCmd(&gf))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "parkcraft %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

// loadConfig resolves the game config: file (or defaults), then environment,
// then flags set on the command line.
func loadConfig(cmd *cobra.Command, gf *globalFlags) (game.Config, error) {
	cfg := game.DefaultConfig()
	if gf.configPath != "" {
		loaded, err := game.Load(gf.configPath)
		if err != nil {
			return game.Config{}, err
		}
		cfg = *loaded
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = gf.seed
	}
	if flags.Changed("save-path") {
		cfg.SavePath = gf.savePath
	}
	if flags.Changed("tick") {
		cfg.TickInterval = gf.tickInterval
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	_ = godotenv.Load()

	if os.Getenv("LOG_LEVEL") == "silent" || os.Getenv("LOG_LEVEL") == "off" {
		log.SetOutput(io.Discard)
	}

	os.Exit(execute(newRootCmd()))
}
