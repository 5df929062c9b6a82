package icon

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/Gamezxz/crypto-price-tracker/generator"
	"github.com/Gamezxz/crypto-price-tracker/internal/catalog"
	"github.com/Gamezxz/crypto-price-tracker/internal/logger"
)

// Options configures an icon set render.
type Options struct {
	Dir     string // icon set directory, e.g. Assets.xcassets/AppIcon.appiconset
	Sizes   []int  // logical sizes; defaults to catalog.Sizes
	Workers int    // parallel renders; <= 0 means runtime.NumCPU()
}

// Generator renders the AppIcon set.
type Generator struct {
	log    logger.Logger
	encode func(size int) ([]byte, error)
}

// NewGenerator creates an icon set generator logging to the default logger.
func NewGenerator() *Generator {
	return &Generator{
		log:    logger.Default().WithFields(logger.F("generator", "icons")),
		encode: Encode,
	}
}

// WithLogger replaces the generator's logger.
func (g *Generator) WithLogger(l logger.Logger) *Generator {
	g.log = l
	return g
}

type renderJob struct {
	index   int
	variant catalog.Variant
}

type renderResult struct {
	index int
	data  []byte
	err   error
}

// Generate renders every planned variant and returns one write operation
// per PNG, in plan order, followed by Contents.json.
func (g *Generator) Generate(ctx context.Context, opts Options) ([]generator.Operation, error) {
	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = catalog.Sizes
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSize, s)
		}
	}
	dir := opts.Dir
	if dir == "" {
		dir = catalog.DefaultDir
	}

	plan := catalog.Plan(sizes)
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(plan))

	g.log.Info("Rendering icon set",
		logger.F("dir", dir),
		logger.F("files", len(plan)),
		logger.F("workers", workers))

	images, err := g.renderAll(ctx, plan, workers)
	if err != nil {
		return nil, err
	}

	ops := make([]generator.Operation, 0, len(plan)+1)
	for i, v := range plan {
		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(dir, v.Filename()),
			Content: images[i],
			Mode:    0644,
		})
	}

	contents, err := catalog.NewContents(plan).Marshal()
	if err != nil {
		return nil, err
	}
	ops = append(ops, &generator.WriteFileOp{
		Path:    filepath.Join(dir, catalog.ContentsFile),
		Content: contents,
		Mode:    0644,
	})

	g.log.Info("Icon set rendered", logger.F("operations", len(ops)))
	return ops, nil
}

// renderAll fans the plan out to a fixed worker pool. Results are stored by
// plan index so output order does not depend on scheduling.
func (g *Generator) renderAll(ctx context.Context, plan []catalog.Variant, workers int) ([][]byte, error) {
	jobs := make(chan renderJob)
	results := make(chan renderResult, len(plan))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				data, err := g.encode(job.variant.Pixels())
				if err != nil {
					err = fmt.Errorf("rendering %s: %w", job.variant.Filename(), err)
				} else {
					g.log.Debug("Rendered icon",
						logger.F("file", job.variant.Filename()),
						logger.F("pixels", job.variant.Pixels()),
						logger.F("bytes", len(data)))
				}
				results <- renderResult{index: job.index, data: data, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, v := range plan {
			select {
			case <-ctx.Done():
				return
			case jobs <- renderJob{index: i, variant: v}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	images := make([][]byte, len(plan))
	var firstErr error
	received := 0
	for r := range results {
		received++
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		images[r.index] = r.data
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if received != len(plan) {
		return nil, fmt.Errorf("rendered %d of %d icons", received, len(plan))
	}
	return images, nil
}
