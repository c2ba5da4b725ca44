// cmd/logsim/check.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dangerclosesec/logsim/internal/report"
	"github.com/dangerclosesec/logsim/internal/repository"
	"github.com/dangerclosesec/logsim/internal/service"
	"github.com/spf13/cobra"
)

var (
	checkJSON  bool
	checkStore bool
)

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print results as JSON")
	checkCmd.Flags().BoolVar(&checkStore, "store", false, "Record each check in the run history")
}

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Check circuit definition files",
	Long:  `Parse each definition file and report every error found. Exits with status 1 if any file has errors.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		var repo repository.ParseRunRepositoryIface
		if checkStore {
			if repo, err = openRepository(cfg, true); err != nil {
				return err
			}
		}

		svc := service.NewCheckService(repo, logger, 0)

		ok, err := checkFiles(cmd.Context(), svc, cmd.OutOrStdout(), args, checkJSON)
		if err != nil {
			return err
		}
		if !ok {
			return errCheckFailed
		}
		return nil
	},
}

// checkFiles checks every path and writes one report per file. It reports
// whether all files were free of errors.
func checkFiles(ctx context.Context, svc *service.CheckService, out io.Writer, paths []string, asJSON bool) (bool, error) {
	printer := report.New(out)
	results := make([]*service.CheckResult, 0, len(paths))
	allOK := true

	for _, path := range paths {
		result, err := svc.CheckFile(ctx, path)
		if err != nil {
			return false, fmt.Errorf("checking %s: %w", path, err)
		}
		allOK = allOK && result.Success

		if asJSON {
			results = append(results, result)
			continue
		}
		printer.Result(result)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return false, fmt.Errorf("encoding results: %w", err)
		}
	}

	return allOK, nil
}
