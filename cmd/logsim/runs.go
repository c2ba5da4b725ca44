// cmd/logsim/runs.go
package main

import (
	"fmt"

	"github.com/dangerclosesec/logsim/internal/report"
	"github.com/dangerclosesec/logsim/internal/repository"
	"github.com/dangerclosesec/logsim/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	runsSource string
	runsStatus string
	runsLimit  int
	runsOffset int
)

func init() {
	runsListCmd.Flags().StringVar(&runsSource, "source", "", "Only show runs for this file name")
	runsListCmd.Flags().StringVar(&runsStatus, "status", "", "Only show runs with this status (ok or failed)")
	runsListCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to show")
	runsListCmd.Flags().IntVar(&runsOffset, "offset", 0, "Number of runs to skip")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsGetCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the run history schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		repo, err := openRepository(cfg, true)
		if err != nil {
			return err
		}

		if err := repo.Migrate(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Schema migrated successfully")
		return nil
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run history",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := runsQuery(runsSource, runsStatus, runsLimit, runsOffset)
		if err != nil {
			return err
		}

		svc, err := historyService(cmd)
		if err != nil {
			return err
		}

		runs, total, err := svc.ListRuns(cmd.Context(), params)
		if err != nil {
			return err
		}

		report.New(cmd.OutOrStdout()).Runs(runs, total)
		return nil
	},
}

var runsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid run ID %q: %w", args[0], err)
		}

		svc, err := historyService(cmd)
		if err != nil {
			return err
		}

		run, err := svc.GetRun(cmd.Context(), id)
		if err != nil {
			return err
		}

		report.New(cmd.OutOrStdout()).Run(run)
		return nil
	},
}

func historyService(cmd *cobra.Command) (*service.CheckService, error) {
	cfg, logger, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	repo, err := openRepository(cfg, true)
	if err != nil {
		return nil, err
	}

	return service.NewCheckService(repo, logger, 0), nil
}

// runsQuery turns the list flags into repository filters
func runsQuery(source, status string, limit, offset int) (repository.QueryParams, error) {
	params := repository.QueryParams{
		Source: source,
		Limit:  limit,
		Offset: offset,
	}

	switch status {
	case "":
	case "ok":
		success := true
		params.Success = &success
	case "failed":
		success := false
		params.Success = &success
	default:
		return params, fmt.Errorf("unknown status %q, want ok or failed", status)
	}

	if limit < 0 || offset < 0 {
		return params, fmt.Errorf("limit and offset must not be negative")
	}

	return params, nil
}
