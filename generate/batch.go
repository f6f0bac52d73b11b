package generate

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/logger"
	"golang.org/x/sync/errgroup"
)

// OutputPath is the file a generation of p writes.
func OutputPath(p Params) (string, error) {
	emitter, err := EmitterFor(p.Syntax)
	if err != nil {
		return "", err
	}
	doc := emit.Document{PackageName: p.PackageName, ClassName: p.ClassName, Extension: emitter.FileExtension()}
	return filepath.Abs(doc.Path(p.OutputDir))
}

// GenerateAll runs independent generations concurrently, at most workers at
// a time (workers <= 0 means one per CPU). Every parameter set is validated
// and checked for colliding output files before anything is read. Results
// are returned in input order; the first failure cancels generations that
// have not started yet.
func (g *Generator) GenerateAll(ctx context.Context, params []Params, workers int) ([]*Result, error) {
	owners := make(map[string]string, len(params))
	for _, p := range params {
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "target %s", p.label())
		}
		path, err := OutputPath(p)
		if err != nil {
			return nil, errors.Wrapf(err, "target %s", p.label())
		}
		if other, taken := owners[path]; taken {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrOutputCollision, "targets %s and %s both write %s", other, p.label(), path),
				"give each target its own output_dir, package or class_name")
		}
		owners[path] = p.label()
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*Result, len(params))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, p := range params {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.Generate(p)
			if err != nil {
				return errors.Wrapf(err, "target %s", p.label())
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g.log().Infow("Batch complete", logger.FieldCount, len(results))
	return results, nil
}
