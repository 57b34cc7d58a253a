package stage

import (
	"github.com/Carmen-Shannon/stereo-go/engine/profiler"
)

// BatchEvaluatorBuilderOption is a functional option for configuring a BatchEvaluator via NewBatchEvaluator.
type BatchEvaluatorBuilderOption func(*batchEvaluator)

// WithWorkers is an option builder that sets the worker count for the
// evaluator's pool. Defaults to runtime.NumCPU()-1. Values below 1 are ignored.
//
// Parameters:
//   - n: the number of pool workers
//
// Returns:
//   - BatchEvaluatorBuilderOption: a function that applies the worker count option to an evaluator
func WithWorkers(n int) BatchEvaluatorBuilderOption {
	return func(b *batchEvaluator) {
		if n >= 1 {
			b.workers = n
		}
	}
}

// WithProfiler is an option builder that attaches a profiler to the evaluator.
// Each batch records its wall time under a stage-specific section name.
//
// Parameters:
//   - p: the profiler to record batch timings into
//
// Returns:
//   - BatchEvaluatorBuilderOption: a function that applies the profiler option to an evaluator
func WithProfiler(p *profiler.Profiler) BatchEvaluatorBuilderOption {
	return func(b *batchEvaluator) {
		b.prof = p
	}
}
