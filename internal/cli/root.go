package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"woodo-statistic/internal/achievement"
	"woodo-statistic/internal/api"
	"woodo-statistic/internal/config"
	"woodo-statistic/internal/logger"
	"woodo-statistic/internal/service"

	"github.com/spf13/cobra"
)

var (
	logLevel   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "scoutctl",
	Short: "W3Champions opponent scout",
	Long:  "Look up a player's live ladder game on W3Champions and print a scouting report for each opponent.",
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON instead of tables")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(playerCmd)
}

type services struct {
	scout   *service.ScoutService
	players *service.PlayerService
}

func newServices() (*services, error) {
	log := logger.NewConsole(os.Stderr, logLevel)

	cfg, err := config.Load(log)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	policy, err := achievement.LoadPolicy(cfg.PolicyFile, log)
	if err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}

	client := api.NewW3CClient(cfg)
	matches := service.NewMatchService(client, cfg, log)
	return &services{
		scout:   service.NewScoutService(client, matches, achievement.NewEngine(policy), cfg, log),
		players: service.NewPlayerService(client, matches, log),
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
