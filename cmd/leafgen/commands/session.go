package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/leafgen/pkg/config"
	"github.com/Sumatoshi-tech/leafgen/pkg/leaftable"
	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes"
	"github.com/Sumatoshi-tech/leafgen/pkg/nodetypes/gitsource"
	"github.com/Sumatoshi-tech/leafgen/pkg/observability"
	"github.com/Sumatoshi-tech/leafgen/pkg/symbols"
	"github.com/Sumatoshi-tech/leafgen/pkg/version"
)

// session carries the resolved configuration and telemetry of one command run.
type session struct {
	cfg      *config.Config
	repo     string
	stdin    io.Reader
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *observability.BuildMetrics
	shutdown func(context.Context) error
}

func openSession(cmd *cobra.Command, flags *globalFlags) (*session, error) {
	cmd.SetContext(observability.WithCommand(cmd.Context(), cmd.Name()))

	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}

	applyFlags(cmd, flags, cfg)

	// Flags bypass the file schema check, so validate the merged result.
	err = config.Validate(cfg)
	if err != nil {
		return nil, err
	}

	if flags.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
	obsCfg.MetricsFile = cfg.Telemetry.MetricsFile
	obsCfg.LogLevel = cfg.Logging.SlogLevel()
	obsCfg.LogJSON = cfg.Logging.JSON

	if flags.verbose {
		obsCfg.LogLevel = slog.LevelDebug
	}

	providers, err := observability.Init(cmd.Context(), obsCfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	metrics, err := observability.NewBuildMetrics(providers.Meter)
	if err != nil {
		return nil, errors.Join(err, providers.Shutdown(cmd.Context()))
	}

	return &session{
		cfg:      cfg,
		repo:     flags.repo,
		stdin:    cmd.InOrStdin(),
		logger:   providers.Logger,
		tracer:   providers.Tracer,
		metrics:  metrics,
		shutdown: providers.Shutdown,
	}, nil
}

func applyFlags(cmd *cobra.Command, flags *globalFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed(flagNodeTypes) {
		cfg.NodeTypes = flags.nodeTypes
	}

	if changed(flagRev) {
		cfg.Rev = flags.rev
	}

	if changed(flagRowWidth) {
		cfg.RowWidth = flags.rowWidth
	}

	if changed(flagCArray) {
		cfg.CArray = flags.cArray
	}

	if changed(flagOutput) {
		cfg.Output = flags.output
	}
}

func (s *session) close(ctx context.Context) {
	err := s.shutdown(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "telemetry shutdown failed", "error", err)
	}
}

// buildTable loads node-types.json and builds the table against the
// embedded C enumeration.
func (s *session) buildTable(ctx context.Context) (*leaftable.Table, error) {
	ctx, span := s.tracer.Start(ctx, "leafgen.build")
	defer span.End()

	start := time.Now()

	table, err := s.loadAndBuild(ctx)

	elapsed := time.Since(start)

	if err != nil {
		outcome := observability.OutcomeError
		if errors.Is(err, leaftable.ErrEnumerationMismatch) {
			outcome = observability.OutcomeMismatch
		}

		s.metrics.RecordBuild(ctx, outcome, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	stats := table.Stats()

	s.metrics.RecordBuild(ctx, observability.OutcomeOK, elapsed)
	s.metrics.RecordSymbols(ctx, stats.Leaf, stats.Structural)

	span.SetAttributes(
		attribute.Int("leafgen.slots", stats.Slots),
		attribute.Int("leafgen.structural", stats.Structural),
	)

	s.logger.DebugContext(ctx, "table built",
		"slots", stats.Slots,
		"leaf", stats.Leaf,
		"structural", stats.Structural,
		"overridden", stats.Overridden,
		"elapsed", elapsed,
	)

	return table, nil
}

func (s *session) loadAndBuild(ctx context.Context) (*leaftable.Table, error) {
	source, err := s.loadSource()
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "node types loaded", "source", source.Label, "bytes", len(source.Data))

	descriptors, err := source.Descriptors()
	if err != nil {
		return nil, err
	}

	return leaftable.Build(symbols.C(), descriptors, s.cfg.Overrides)
}

func (s *session) loadSource() (nodetypes.Source, error) {
	if s.cfg.Rev != "" {
		return gitsource.ReadAt(s.repo, s.cfg.Rev, s.cfg.NodeTypes)
	}

	path := s.cfg.NodeTypes
	if path == nodetypes.DefaultPath {
		path = gitsource.DefaultLocation(s.repo)
	}

	return nodetypes.ReadFile(path, s.stdin)
}

// renderTable renders into memory so nothing is written when rendering fails.
func (s *session) renderTable(table *leaftable.Table) ([]byte, error) {
	var buf bytes.Buffer

	var err error

	if s.cfg.CArray != "" {
		err = leaftable.RenderCArray(&buf, table, s.cfg.CArray, s.cfg.RenderOptions())
	} else {
		err = leaftable.Render(&buf, table, s.cfg.RenderOptions())
	}

	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
