// Package logger configures the application's logging, monitoring,
// and observability.
//
// It uses *ZeroLog* for logging and integrates with *New Relic* to
// instrument the codebase, forwarding logs, metrics, and traces for
// debugging. New Relic is optional: without a license key the service
// wrapper carries a nil application and every hook degrades to a no-op.
package logger

import (
	"io"
	"os"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/dnaumov/person-api/internal/config"
)

// LoggerService wraps the optional New Relic application instance.
//
// It exists so the rest of the app can ask "is APM on?" through one
// object instead of threading *newrelic.Application everywhere.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic agent when a license key
// is configured.
//
// Behavior:
//   - No license key: returns a service with a nil application and
//     logs that APM is disabled. This is not an error.
//   - License key present: constructs the agent with app log
//     forwarding and distributed tracing per config.
func NewLoggerService(cfg *config.Config, logger *zerolog.Logger) (*LoggerService, error) {
	nr := cfg.Observability.NewRelic

	if nr.LicenseKey == "" {
		logger.Info().Msg("new relic license key not set, running without APM")
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(nr.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(nr.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(nr.DistributedTracingEnabled),
	}

	if nr.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("service", cfg.Observability.ServiceName).
		Str("environment", cfg.Observability.Environment).
		Msg("new relic agent initialized")

	return &LoggerService{nrApp: app}, nil
}

// GetApplication returns the New Relic application instance, or nil
// when APM is disabled. Nil-safe on the receiver.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// New builds the application's main structured logger.
//
// Format comes from config:
//   - "console": human-friendly output on stderr, for local dev
//   - "json": machine-parseable output on stdout
//
// When New Relic log forwarding is active, the JSON writer is wrapped
// with zerologWriter so log lines are decorated with linking metadata
// and shipped to the agent.
func New(cfg *config.Config, loggerService *LoggerService) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout

	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	} else if app := loggerService.GetApplication(); app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		out = zerologWriter.New(os.Stdout, app)
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()
}

// WithTraceContext returns a copy of the logger carrying trace.id and
// span.id fields from the given transaction, so log lines correlate
// with distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()

	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
