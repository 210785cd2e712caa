package orchestration

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Phazertron/concour-bench/internal/bench"
	"github.com/Phazertron/concour-bench/internal/dataset"
	apperrors "github.com/Phazertron/concour-bench/internal/errors"
	"github.com/Phazertron/concour-bench/internal/logging"
)

const tracerName = "github.com/Phazertron/concour-bench/internal/orchestration"

// Session is the outcome of one full benchmark run: every mode's report
// in execution order, plus enough metadata to reproduce the run.
type Session struct {
	// StartedAt is when the first mode began.
	StartedAt time.Time
	// Seed is the dataset seed, recorded even when auto-generated.
	Seed uint64
	// ArrayLength is the dataset size in elements.
	ArrayLength int
	// Reports holds one report per completed mode, in execution order.
	// The first report is always the single-threaded baseline.
	Reports []bench.Report
	// Elapsed is the wall-clock time of the whole session.
	Elapsed time.Duration
}

// Baseline returns the single-threaded report, or nil if the session has
// no reports.
func (s *Session) Baseline() *bench.Report {
	if len(s.Reports) == 0 {
		return nil
	}
	return &s.Reports[0]
}

// VerifySums compares every mode's sum against the baseline and returns
// the labels that disagree. An empty slice means all modes agree.
func (s *Session) VerifySums() []string {
	base := s.Baseline()
	if base == nil {
		return nil
	}
	var mismatched []string
	for _, r := range s.Reports[1:] {
		if r.Sum != base.Sum {
			mismatched = append(mismatched, r.Label)
		}
	}
	return mismatched
}

// RunAll executes the given benchmark modes strictly one after another, so
// no mode's workers compete with another's for cores. The first failure
// aborts the session; the partial session built so far is returned
// alongside the error so completed reports are not lost.
func RunAll(ctx context.Context, runners []bench.Runner, data *dataset.Dataset, reporter ProgressReporter, logger logging.Logger) (*Session, error) {
	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "benchmark.session")
	defer span.End()
	span.SetAttributes(
		attribute.Int("bench.array_length", data.Len()),
		attribute.Int64("bench.seed", int64(data.Seed)),
		attribute.Int("bench.modes", len(runners)),
	)

	session := &Session{
		StartedAt:   time.Now(),
		Seed:        data.Seed,
		ArrayLength: data.Len(),
		Reports:     make([]bench.Report, 0, len(runners)),
	}

	for _, r := range runners {
		modeCtx, modeSpan := tracer.Start(ctx, "benchmark.mode")
		modeSpan.SetAttributes(attribute.String("bench.mode", r.Label()))

		logger.Info("benchmark mode starting", logging.String("mode", r.Label()))
		reporter.ModeStarted(r.Label())

		report, err := r.Run(modeCtx, data)
		if err != nil {
			modeSpan.RecordError(err)
			modeSpan.SetStatus(codes.Error, err.Error())
			modeSpan.End()
			reporter.ModeFailed(r.Label(), err)
			session.Elapsed = time.Since(session.StartedAt)
			return session, apperrors.WrapError(err, "%s benchmark", r.Label())
		}

		modeSpan.SetAttributes(attribute.Int64("bench.sum", report.Sum))
		modeSpan.End()

		reporter.ModeFinished(report)
		logger.Info("benchmark mode finished",
			logging.String("mode", report.Label),
			logging.Int64("sum", report.Sum),
			logging.Dur("mean", report.Stats.Mean))

		session.Reports = append(session.Reports, report)
	}

	session.Elapsed = time.Since(session.StartedAt)
	if mismatched := session.VerifySums(); len(mismatched) > 0 {
		for _, label := range mismatched {
			logger.Warn("mode sum disagrees with baseline", logging.String("mode", label))
		}
	}
	return session, nil
}
