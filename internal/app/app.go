package app

import (
	"context"
	"time"

	"access-log-stats/internal/aggregators"
	"access-log-stats/internal/models"
	"access-log-stats/internal/parsers"
	"access-log-stats/internal/reporters"
	"access-log-stats/internal/shared/configs"
	"access-log-stats/internal/shared/filestorages"
	"access-log-stats/internal/shared/loggers"
	"access-log-stats/internal/shared/metrics"
	"access-log-stats/internal/shared/svcerrors"
	"access-log-stats/internal/shared/ulid"
	"access-log-stats/internal/stores"
)

// App holds all application dependencies for one parse, aggregate, report pass.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	inputStorage filestorages.FileStorage
	inputKey     string

	lineParser       parsers.LineParser
	aggregator       aggregators.Aggregator
	reportingService reporters.ReportingService
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, errInvalidConfig("failed to initialize logger", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "access-log-stats").
		Logger()

	// Initialize storages, one per configured path
	inputStorage, inputKey, err := filestorages.NewFileStorageForPath(config.Input.Path)
	if err != nil {
		return nil, errInvalidConfig("failed to initialize input storage", err)
	}
	reportStorage, reportKey, err := filestorages.NewFileStorageForPath(config.Output.ReportPath)
	if err != nil {
		return nil, errInvalidConfig("failed to initialize report storage", err)
	}

	var summaryStore stores.SummaryStore
	if config.Output.SummaryPath != "" {
		summaryStorage, summaryKey, err := filestorages.NewFileStorageForPath(config.Output.SummaryPath)
		if err != nil {
			return nil, errInvalidConfig("failed to initialize summary storage", err)
		}
		summaryStore = stores.NewSummaryStore(summaryStorage, summaryKey)
	}

	// Initialize pipeline stages
	lineParser := parsers.NewLineParser(config.Parser.MaxLineBytes)
	aggregator := aggregators.NewAggregator()
	reportStore := stores.NewReportStore(reportStorage, reportKey)
	reportingService := reporters.NewReportingService(reporters.NewSummaryBuilder(), reportStore, summaryStore)

	return &App{
		config:           config,
		appLogger:        appLogger,
		inputStorage:     inputStorage,
		inputKey:         inputKey,
		lineParser:       lineParser,
		aggregator:       aggregator,
		reportingService: reportingService,
	}, nil
}

// Run parses the input, aggregates it and writes the report. It blocks until done
// or until ctx is cancelled.
func (app *App) Run(ctx context.Context) (*models.SummaryReport, error) {
	start := time.Now()
	runLogger := app.appLogger.With().Str(loggers.FieldRunID, ulid.NewRunID()).Logger()
	ctx = runLogger.WithContext(ctx)

	runLogger.Info().
		Str(loggers.FieldInputPath, app.config.Input.Path).
		Str(loggers.FieldOutputPath, app.config.Output.ReportPath).
		Msg("run started")

	report, err := app.run(ctx)
	app.exportMetrics(ctx)

	if err != nil {
		svcErr, ok := svcerrors.As(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
			err = svcErr
		}
		if svcErr.IsInternalError() {
			runLogger.Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("internal error in run")
		}
		runLogger.Error().
			Err(err).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
			Msg("run failed")
		return nil, err
	}

	runLogger.Info().
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("run completed")
	return report, nil
}

func (app *App) run(ctx context.Context) (*models.SummaryReport, error) {
	// 1) Parse
	seq, err := app.lineParser.Open(app.withComponent(ctx, "parser"), app.inputStorage, app.inputKey)
	if err != nil {
		return nil, err
	}
	defer seq.Close()

	// 2) Aggregate
	state, err := app.aggregator.Aggregate(app.withComponent(ctx, "aggregator"), seq)
	if err != nil {
		return nil, err
	}
	if err := seq.Close(); err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Msg("failed to close access log")
	}

	// 3) Report
	return app.reportingService.Report(app.withComponent(ctx, "reporter"), state)
}

// withComponent tags the context logger with the pipeline stage.
func (app *App) withComponent(ctx context.Context, component string) context.Context {
	return loggers.Ctx(ctx).With().Str(loggers.FieldComponent, component).Logger().WithContext(ctx)
}

// exportMetrics writes the textfile when configured. A failed export does not fail the run.
func (app *App) exportMetrics(ctx context.Context) {
	path := app.config.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path, metrics.DefaultGatherer); err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Msgf("failed to export metrics to %q", path)
	}
}
