package cli

import (
	"fmt"
	"woodo-statistic/internal/domain"
	"woodo-statistic/internal/report"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:     "check <battletag>",
	Short:   "Scout the opponents of a player's live game",
	Example: "  scoutctl check 'Grubby#1278'",
	Args:    cobra.ExactArgs(1),
	RunE:    runCheck,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print a report for a fixed demo opponent",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

var playerCmd = &cobra.Command{
	Use:   "player <battletag>",
	Short: "Show profile and last matches of any player",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := domain.ValidateBattleTag(args[0]); err != nil {
		return err
	}
	svcs, err := newServices()
	if err != nil {
		return err
	}
	result, err := svcs.scout.Scout(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("scout %s: %w", args[0], err)
	}
	return printResult(cmd, result)
}

func runDemo(cmd *cobra.Command, args []string) error {
	svcs, err := newServices()
	if err != nil {
		return err
	}
	result, err := svcs.scout.Demo(cmd.Context())
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return printResult(cmd, result)
}

func runPlayer(cmd *cobra.Command, args []string) error {
	if err := domain.ValidateBattleTag(args[0]); err != nil {
		return err
	}
	svcs, err := newServices()
	if err != nil {
		return err
	}
	stats, err := svcs.players.GetPlayerStats(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("player %s: %w", args[0], err)
	}
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), stats)
	}
	report.PrintPlayerStats(cmd.OutOrStdout(), stats)
	return nil
}

func printResult(cmd *cobra.Command, result *domain.ScoutResult) error {
	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	report.PrintScoutResult(cmd.OutOrStdout(), result)
	return nil
}
