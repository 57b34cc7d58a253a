package stage

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/stereo-go/engine/model"
	"github.com/Carmen-Shannon/stereo-go/engine/profiler"
)

// Profiler section names recorded by the batch evaluator.
const (
	sectionTransform       = "stage.transform"
	sectionTransformStereo = "stage.transform_stereo"
	sectionShade           = "stage.shade"
)

// batchEvaluator is the implementation of the BatchEvaluator interface.
type batchEvaluator struct {
	pool    worker.DynamicWorkerPool
	workers int
	prof    *profiler.Profiler
}

// BatchEvaluator fans a stage out over a vertex or fragment batch using a
// bounded worker pool. Every invocation inside a batch is independent: workers
// write disjoint index ranges of a pre-sized result slice and share nothing
// else, so evaluation order never affects the output. Workers persist across
// batches, avoiding per-batch goroutine spawn/teardown overhead.
type BatchEvaluator interface {
	// TransformMesh evaluates the transform stage over every vertex for one eye.
	//
	// Parameters:
	//   - t: the transform stage to evaluate
	//   - vertices: the input vertices
	//   - eye: the eye index for every invocation in the batch
	//
	// Returns:
	//   - []TransformedVertex: transformed vertices, index-aligned with the input
	TransformMesh(t TransformStage, vertices []model.GPUVertex, eye ViewIndex) []TransformedVertex

	// TransformMeshStereo evaluates the transform stage over every vertex for
	// both eyes in a single doubled batch. The two eyes' invocations are
	// mutually independent and interleave freely across workers.
	//
	// Parameters:
	//   - t: the transform stage to evaluate
	//   - vertices: the input vertices
	//
	// Returns:
	//   - []TransformedVertex: left eye results, index-aligned with the input
	//   - []TransformedVertex: right eye results, index-aligned with the input
	TransformMeshStereo(t TransformStage, vertices []model.GPUVertex) ([]TransformedVertex, []TransformedVertex)

	// ShadeFragments evaluates the shading stage over every fragment.
	//
	// Parameters:
	//   - s: the shading stage to evaluate
	//   - frags: the interpolated fragment inputs
	//
	// Returns:
	//   - [][4]float32: output colors, index-aligned with the input
	ShadeFragments(s ShadingStage, frags []FragmentInput) [][4]float32

	// Workers returns the configured worker count.
	//
	// Returns:
	//   - int: the worker count
	Workers() int
}

var _ BatchEvaluator = &batchEvaluator{}

// NewBatchEvaluator creates a BatchEvaluator with the specified options applied.
// The worker count defaults to runtime.NumCPU()-1 so one core stays free for
// the host's frame loop. Workers idle out on the pool's own timeout between
// batches and respawn on demand.
//
// Parameters:
//   - options: a variadic list of BatchEvaluatorBuilderOption functions to configure the evaluator
//
// Returns:
//   - BatchEvaluator: a new batch evaluator
func NewBatchEvaluator(options ...BatchEvaluatorBuilderOption) BatchEvaluator {
	b := &batchEvaluator{
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(b)
	}
	// Queue size of 256 accommodates a full chunk wave for both eyes with headroom.
	b.pool = worker.NewDynamicWorkerPool(b.workers, 256, 1*time.Second)
	return b
}

func (b *batchEvaluator) TransformMesh(t TransformStage, vertices []model.GPUVertex, eye ViewIndex) []TransformedVertex {
	if t == nil {
		panic("stage: TransformMesh requires a non-nil TransformStage")
	}
	if b.prof != nil {
		b.prof.Begin(sectionTransform)
		defer b.prof.End(sectionTransform)
	}
	out := make([]TransformedVertex, len(vertices))
	b.runChunks(len(vertices), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = t.EvaluateVertex(vertices[i], eye)
		}
	})
	return out
}

func (b *batchEvaluator) TransformMeshStereo(t TransformStage, vertices []model.GPUVertex) ([]TransformedVertex, []TransformedVertex) {
	if t == nil {
		panic("stage: TransformMeshStereo requires a non-nil TransformStage")
	}
	if b.prof != nil {
		b.prof.Begin(sectionTransformStereo)
		defer b.prof.End(sectionTransformStereo)
	}
	n := len(vertices)
	left := make([]TransformedVertex, n)
	right := make([]TransformedVertex, n)
	// One wave over a doubled index space: [0, n) is the left eye, [n, 2n) the
	// right, mirroring how a multiview dispatch doubles the invocation count.
	b.runChunks(2*n, func(start, end int) {
		for i := start; i < end; i++ {
			if i < n {
				left[i] = t.EvaluateVertex(vertices[i], ViewLeft)
			} else {
				right[i-n] = t.EvaluateVertex(vertices[i-n], ViewRight)
			}
		}
	})
	return left, right
}

func (b *batchEvaluator) ShadeFragments(s ShadingStage, frags []FragmentInput) [][4]float32 {
	if s == nil {
		panic("stage: ShadeFragments requires a non-nil ShadingStage")
	}
	if b.prof != nil {
		b.prof.Begin(sectionShade)
		defer b.prof.End(sectionShade)
	}
	out := make([][4]float32, len(frags))
	b.runChunks(len(frags), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = s.Shade(frags[i])
		}
	})
	return out
}

func (b *batchEvaluator) Workers() int {
	return b.workers
}

// runChunks splits [0, n) into one contiguous span per worker, submits each
// span to the pool, and blocks until all spans complete. A WaitGroup provides
// the per-batch barrier since workers outlive the batch.
func (b *batchEvaluator) runChunks(n int, run func(start, end int)) {
	if n == 0 {
		return
	}
	chunks := min(b.workers, n)
	size := (n + chunks - 1) / chunks

	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < n; start += size {
		end := min(start+size, n)

		wg.Add(1)
		s, e := start, end
		id := taskID
		taskID++
		b.pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				run(s, e)
				return nil, nil
			},
		})
	}
	wg.Wait()
}
