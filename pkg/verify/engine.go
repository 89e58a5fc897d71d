/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Verification engine. Builds every target grammar once, fans the per-size
checks out over a worker pool and collects them into a report identified by a run ID.
*/

package verify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-species/pkg/grammar"
	"github.com/kleascm/akaylee-species/pkg/logging"
)

// Report collects the results of one verification run
type Report struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Config    Config        `json:"config"`
	Results   []CheckResult `json:"results"`
	Checks    int           `json:"checks"`
	Failures  int           `json:"failures"`
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	return r.Failures == 0
}

// Engine runs verification checks over a set of targets
type Engine struct {
	config  *Config
	targets []Target
	logger  *logging.Logger
}

// NewEngine creates an engine. A nil logger discards all output.
func NewEngine(config *Config, targets []Target, logger *logging.Logger) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid verify config: %w", err)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no grammars to verify")
	}
	if logger == nil {
		quiet := logging.DefaultLoggerConfig()
		quiet.Level = logging.LogLevelError
		quiet.Output = io.Discard
		var err error
		if logger, err = logging.NewLogger(quiet); err != nil {
			return nil, err
		}
	}
	return &Engine{config: config, targets: targets, logger: logger}, nil
}

// Run builds every grammar and checks sizes 0..MaxSize of each. A grammar that fails
// to build aborts the run. When ctx is cancelled the report holds the checks that
// finished and the context error is returned.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:     uuid.New().String(),
		StartedAt: time.Now(),
		Config:    *e.config,
	}

	tasks, err := e.plan()
	if err != nil {
		return nil, err
	}
	e.logger.Info("Verification started", map[string]interface{}{
		"run_id":   report.RunID,
		"grammars": len(e.targets),
		"checks":   len(tasks),
		"workers":  e.config.Workers,
	})

	results := make([]CheckResult, len(tasks))
	pool := newWorkerPool(e.config.Workers)
	var wg sync.WaitGroup
	var runErr error
	for i, t := range tasks {
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			results[i] = t.run(e.config.MaxListSize)
			r := results[i]
			e.logger.LogCheck(r.Grammar, r.Rule, r.Size, r.Passed, fmt.Sprint(r.Failures))
		})
		if err != nil {
			wg.Done()
			runErr = err
			break
		}
	}
	wg.Wait()
	pool.Shutdown()
	if runErr == nil {
		runErr = ctx.Err()
	}

	for _, r := range results {
		if !r.Completed {
			continue
		}
		report.Results = append(report.Results, r)
		if !r.Passed {
			report.Failures++
		}
	}
	report.Checks = len(report.Results)
	report.Duration = time.Since(report.StartedAt)
	e.logger.LogRun(report.RunID, report.Checks, report.Failures, report.Duration)

	if runErr != nil {
		return report, fmt.Errorf("verification interrupted: %w", runErr)
	}
	return report, nil
}

// plan builds each target grammar and returns one task per size, grouped by target.
func (e *Engine) plan() ([]task, error) {
	tasks := make([]task, 0, len(e.targets)*(e.config.MaxSize+1))
	for _, target := range e.targets {
		g, err := target.Build(grammar.WithLogger(e.logger.GetLogger()))
		if err != nil {
			return nil, fmt.Errorf("failed to build %s: %w", target.Name, err)
		}
		valuations := g.Valuations()
		e.logger.LogValuations(target.Name, g.Passes(), valuations)

		for n := 0; n <= e.config.MaxSize; n++ {
			tasks = append(tasks, task{target: target, grammar: g, size: n})
		}
	}
	return tasks, nil
}
