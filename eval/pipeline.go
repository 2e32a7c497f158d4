package eval

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/loov/arith/arith"
	"github.com/loov/arith/config"
	"github.com/loov/arith/report"
)

// ProgressCallback is called after each job finishes
type ProgressCallback func(event ProgressEvent)

// ProgressEvent represents a finished job
type ProgressEvent struct {
	Done   int
	Total  int
	Result report.Result
}

// Pipeline evaluates jobs under a shared configuration
type Pipeline struct {
	config     *config.Config
	log        *zap.Logger
	onProgress ProgressCallback

	mu   sync.Mutex
	done int
}

// NewPipeline creates a new evaluation pipeline
func NewPipeline(cfg *config.Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		config: cfg,
		log:    log,
	}
}

// OnProgress sets a callback for progress events.
// The callback is never invoked concurrently.
func (p *Pipeline) OnProgress(cb ProgressCallback) {
	p.onProgress = cb
}

func (p *Pipeline) reportProgress(total int, result report.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.onProgress != nil {
		p.onProgress(ProgressEvent{Done: p.done, Total: total, Result: result})
	}
}

// Run evaluates jobs with at most config.Workers running at once. Results
// keep the order of jobs.
func (p *Pipeline) Run(ctx context.Context, jobs []Job) (*report.Report, error) {
	p.mu.Lock()
	p.done = 0
	p.mu.Unlock()

	results := make([]report.Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.config.Workers, 1))

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job // per-iteration copies; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result := Evaluate(job, p.config.Overflow)
			result.Index = i
			results[i] = result

			p.log.Debug("evaluated",
				zap.String("kind", job.Kind),
				zap.String("input", job.Input()),
				zap.Uint32("value", result.Value),
				zap.Bool("wrapped", result.Wrapped),
				zap.String("error", result.Error),
			)
			p.reportProgress(len(jobs), result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	r := report.NewReport()
	r.Metadata.Overflow = p.config.Overflow
	for _, result := range results {
		r.Add(result)
	}

	p.log.Info("evaluation finished",
		zap.Int("jobs", len(jobs)),
		zap.Int("wrapped", r.CountWrapped()),
		zap.Int("failed", r.CountFailed()),
	)
	return r, nil
}

// Evaluate computes a single job. The wrapped value is always filled in;
// in checked mode an overflow is also recorded as the result error.
func Evaluate(job Job, overflow string) report.Result {
	result := report.Result{
		Kind:  job.Kind,
		Input: job.Input(),
	}

	var err error
	switch job.Kind {
	case KindFactorial:
		result.Value = arith.Factorial(job.N)
		_, err = arith.CheckedFactorial(job.N)
	case KindArea:
		rect := arith.Rectangle{Width: job.Width, Height: job.Height}
		result.Value = rect.Area()
		_, err = rect.CheckedArea()
	default:
		result.Error = fmt.Sprintf("unknown job kind %q", job.Kind)
		return result
	}

	if errors.Is(err, arith.ErrOverflow) {
		result.Wrapped = true
		if overflow == config.OverflowChecked {
			result.Error = err.Error()
		}
	}
	return result
}
