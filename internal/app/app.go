package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/config"
	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/domain"
	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/odds"
	"github.com/genshinsim/gcsim/apps/artifact_odds/internal/output"
)

// RunWithOptions executes the calculator and returns the desired process exit code.
func RunWithOptions(opts Options) int {
	opts.setDefaults()
	log := newLogger(opts)

	err := run(context.Background(), log, opts)
	if err == nil {
		return exitOK
	}
	if ee, ok := asExitError(err); ok {
		if ee.Err != nil && ee.Code != exitOK {
			fmt.Fprintln(opts.Stderr, ee.Err)
		}
		return ee.Code
	}
	fmt.Fprintln(opts.Stderr, err)
	return exitFailure
}

func newLogger(opts Options) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(opts.LogLevel))); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(opts.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, log *slog.Logger, opts Options) error {
	if opts.List {
		output.PrintOptions(opts.Stdout)
		return nil
	}

	cfg, root, err := loadConfig(log, opts)
	if err != nil {
		return ExitWithError(exitUsage, err)
	}

	if opts.Batch {
		return runBatch(ctx, log, opts, cfg, root)
	}
	return runSingle(log, opts, cfg)
}

func loadConfig(log *slog.Logger, opts Options) (domain.Config, string, error) {
	path := opts.ConfigPath
	root := filepath.Dir(path)
	if path == "" {
		var err error
		root, err = FindRoot()
		if err != nil {
			return domain.Config{}, "", err
		}
		path = filepath.Join(root, config.FileName)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return domain.Config{}, "", err
	}
	opts.env.Apply(&cfg)
	if v := strings.TrimSpace(opts.Lang); v != "" {
		cfg.Lang = v
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if v := strings.TrimSpace(opts.OutputDir); v != "" {
		cfg.OutputDir = v
	}
	if opts.Within > 0 {
		cfg.Within = opts.Within
	}
	if opts.Confidence > 0 {
		cfg.Confidence = opts.Confidence
	}
	if err := config.Validate(cfg); err != nil {
		return domain.Config{}, "", err
	}

	log.Debug("config loaded", "path", path, "name", cfg.Name, "lang", cfg.Lang, "scenarios", len(cfg.Scenarios))
	return cfg, root, nil
}

func runSingle(log *slog.Logger, opts Options, cfg domain.Config) error {
	sc := domain.Scenario{
		Name:         "cli",
		Set:          opts.Set,
		Piece:        opts.Piece,
		MainStat:     opts.MainStat,
		SubstatCount: opts.SubstatCount,
		Substats:     config.SplitList(opts.Substats),
	}
	res, err := evaluate(log, sc)
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.Stdout, output.FormatLang(cfg.Lang, res))
	if outlook := output.FormatOutlook(cfg.Lang, res, cfg.Within, cfg.Confidence); outlook != "" {
		fmt.Fprintln(opts.Stdout)
		fmt.Fprintln(opts.Stdout, outlook)
	}
	return nil
}

func runBatch(ctx context.Context, log *slog.Logger, opts Options, cfg domain.Config, root string) error {
	if len(cfg.Scenarios) == 0 {
		return ExitWithError(exitUsage, errors.New("batch: config has no scenarios"))
	}

	results := make([]domain.ScenarioResult, len(cfg.Scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, sc := range cfg.Scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := evaluate(log, sc)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			results[i] = domain.ScenarioResult{Name: strings.TrimSpace(sc.Name), Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ee, ok := asExitError(err); ok {
			return ExitWithError(ee.Code, fmt.Errorf("batch: %w", err))
		}
		return fmt.Errorf("batch: %w", err)
	}
	log.Info("scenarios evaluated", "count", len(results), "workers", cfg.Workers)

	output.SortResultsByChance(results)
	output.PrintResults(opts.Stdout, results)

	outDir := cfg.OutputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(root, outDir)
	}
	now := opts.Now()

	xlsxPath, err := output.ExportResultsXLSX(outDir, cfg.Name, cfg.Within, results, now)
	if err != nil {
		return fmt.Errorf("export xlsx: %w", err)
	}
	log.Info("exported results", "path", xlsxPath)

	jsonPath, err := output.WriteReportJSON(outDir, output.NewReport(cfg.Name, cfg.Within, results, now))
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info("wrote report", "path", jsonPath)
	return nil
}

// evaluate parses one scenario and runs the engine on it. Input problems are
// returned as usage exit errors.
func evaluate(log *slog.Logger, sc domain.Scenario) (domain.Result, error) {
	req, err := config.ParseScenario(sc)
	if err != nil {
		return domain.Result{}, ExitWithError(exitUsage, err)
	}
	if req.Mode == domain.ModeAny && len(sc.Substats) > 0 {
		log.Debug("substat selection ignored for any substat count", "scenario", sc.Name, "substats", len(sc.Substats))
	}

	res, err := odds.Compute(req)
	if err != nil {
		if errors.Is(err, odds.ErrSelectionExceedsRollCount) || errors.Is(err, odds.ErrInvalidRequest) {
			return domain.Result{}, ExitWithError(exitUsage, err)
		}
		return domain.Result{}, err
	}
	log.Debug("computed", "scenario", sc.Name, "p_total", res.PTotal, "expected_runs", res.ExpectedRuns)
	return res, nil
}
