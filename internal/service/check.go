// internal/service/check.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dangerclosesec/logsim/circuit/devices"
	"github.com/dangerclosesec/logsim/circuit/monitors"
	"github.com/dangerclosesec/logsim/circuit/names"
	"github.com/dangerclosesec/logsim/circuit/network"
	"github.com/dangerclosesec/logsim/circuit/parser"
	"github.com/dangerclosesec/logsim/internal/domain"
	"github.com/dangerclosesec/logsim/internal/model"
	"github.com/dangerclosesec/logsim/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CheckService parses circuit definitions and records the outcome
type CheckService struct {
	repo           repository.ParseRunRepositoryIface
	logger         *slog.Logger
	validate       *validator.Validate
	maxSourceBytes int64
}

// NewCheckService creates a new CheckService. repo may be nil, in which case
// runs are not recorded.
func NewCheckService(repo repository.ParseRunRepositoryIface, logger *slog.Logger, maxSourceBytes int64) *CheckService {
	if logger == nil {
		logger = slog.Default()
	}

	return &CheckService{
		repo:           repo,
		logger:         logger,
		validate:       validator.New(),
		maxSourceBytes: maxSourceBytes,
	}
}

type CheckInput struct {
	Name   string `json:"name" validate:"required,max=255"`
	Source string `json:"source" validate:"required"`
}

// CheckResult is the outcome of checking one definition
type CheckResult struct {
	RunID       *uuid.UUID         `json:"run_id,omitempty"`
	Name        string             `json:"name"`
	Success     bool               `json:"success"`
	Fatal       bool               `json:"fatal"`
	Diagnostics parser.Diagnostics `json:"diagnostics"`
	Devices     int                `json:"devices"`
	Connections int                `json:"connections"`
	Monitors    int                `json:"monitors"`
	Signals     []string           `json:"signals"`
	Unconnected []string           `json:"unconnected"`
}

// Check parses an in-memory definition
func (s *CheckService) Check(ctx context.Context, input CheckInput) (*CheckResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if s.maxSourceBytes > 0 && int64(len(input.Source)) > s.maxSourceBytes {
		return nil, domain.ErrSourceTooLarge
	}

	table := names.New()
	return s.check(ctx, input.Name, table, parser.NewScanner(input.Source, table))
}

// CheckFile parses the definition file at path
func (s *CheckService) CheckFile(ctx context.Context, path string) (*CheckResult, error) {
	table := names.New()

	scanner, err := parser.OpenScanner(path, table)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	return s.check(ctx, filepath.Base(path), table, scanner)
}

func (s *CheckService) check(ctx context.Context, name string, table *names.Table, scanner *parser.Scanner) (*CheckResult, error) {
	devs := devices.New(table)
	graph := network.New(devs)
	mons := monitors.New(table, devs)

	scanner.SetLogger(s.logger)
	p := parser.NewParser(scanner, table, devs, graph, mons)
	p.SetLogger(s.logger)

	ok, err := p.ParseNetwork()

	var fatal *parser.FatalError
	if err != nil && !errors.As(err, &fatal) {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	result := &CheckResult{
		Name:        name,
		Success:     ok,
		Fatal:       fatal != nil,
		Diagnostics: p.Diagnostics(),
		Devices:     devs.Len(),
		Connections: graph.Len(),
		Monitors:    mons.Len(),
		Signals:     mons.SignalNames(),
		Unconnected: []string{},
	}

	for _, ref := range graph.UnconnectedInputs() {
		result.Unconnected = append(result.Unconnected, ref.Name(table))
	}

	s.logger.Info("definition checked",
		"name", name,
		"success", result.Success,
		"errors", len(result.Diagnostics),
	)

	if s.repo == nil {
		return result, nil
	}

	run := newParseRun(result)
	if err := s.repo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("recording parse run: %w", err)
	}
	result.RunID = &run.ID

	return result, nil
}

// newParseRun converts a result into its stored form
func newParseRun(result *CheckResult) *model.ParseRun {
	run := &model.ParseRun{
		ID:          uuid.New(),
		Source:      result.Name,
		Success:     result.Success,
		Fatal:       result.Fatal,
		ErrorCount:  len(result.Diagnostics),
		Devices:     result.Devices,
		Connections: result.Connections,
		Monitors:    result.Monitors,
		Unconnected: result.Unconnected,
		Diagnostics: make(model.DiagnosticList, len(result.Diagnostics)),
	}

	for i, d := range result.Diagnostics {
		run.Diagnostics[i] = model.DiagnosticRecord{
			Code:       d.Code,
			Kind:       d.Kind.String(),
			Line:       d.Line,
			Column:     d.Column,
			SourceLine: d.SourceLine,
			Caret:      d.Caret,
			Message:    d.Message,
		}
	}

	return run
}

// ListRuns retrieves recorded runs based on query parameters
func (s *CheckService) ListRuns(ctx context.Context, params repository.QueryParams) ([]model.ParseRun, int64, error) {
	if s.repo == nil {
		return nil, 0, domain.ErrStoreDisabled
	}
	return s.repo.Query(ctx, params)
}

// GetRun retrieves a recorded run by ID
func (s *CheckService) GetRun(ctx context.Context, id uuid.UUID) (*model.ParseRun, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreDisabled
	}

	run, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parse run by ID: %w", err)
	}

	return run, nil
}
