package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/artifactpath/internal/adapter"
	"gooze.dev/pkg/artifactpath/internal/controller"
	m "gooze.dev/pkg/artifactpath/internal/model"
)

// StrategyArgs selects the report a command works against.
type StrategyArgs struct {
	Report        string
	HashAlgorithm string
}

// ResolveArgs contains the arguments for resolving a single artifact path.
type ResolveArgs struct {
	StrategyArgs
	Kind    m.ArtifactKind
	Example m.Example
}

// HashArgs contains the arguments for hashing example locations.
type HashArgs struct {
	StrategyArgs
	Examples []m.Example
}

// MaterializeArgs contains the arguments for materializing every artifact path
// of a batch of examples.
type MaterializeArgs struct {
	StrategyArgs
	Examples     []m.Example
	ExamplesFile m.Path
	Threads      int
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Resolve(ctx context.Context, args ResolveArgs) error
	Relative(ctx context.Context, args ResolveArgs) error
	Hash(ctx context.Context, args HashArgs) error
	Materialize(ctx context.Context, args MaterializeArgs) error
}

type workflow struct {
	adapter.FileSystem
	adapter.ExampleSource
	ui controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(fs adapter.FileSystem, examples adapter.ExampleSource, ui controller.UI) Workflow {
	return &workflow{
		FileSystem:    fs,
		ExampleSource: examples,
		ui:            ui,
	}
}

func (w *workflow) newStrategy(args StrategyArgs) (*FilePathStrategy, error) {
	hasher, err := adapter.NewHasher(args.HashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	strategy, err := NewFilePathStrategy(w.FileSystem, args.Report, WithHasher(hasher))
	if err != nil {
		return nil, err
	}

	slog.Debug("strategy ready",
		"report", args.Report,
		"base_dir", strategy.BaseReportDir(),
		"report_name", strategy.ReportBaseName(),
		"hash", hasher.Name())

	return strategy, nil
}

func (w *workflow) Resolve(ctx context.Context, args ResolveArgs) error {
	strategy, err := w.newStrategy(args.StrategyArgs)
	if err != nil {
		return err
	}

	path, err := strategy.FilePathFor(args.Kind, args.Example)
	if err != nil {
		slog.Error("failed to resolve artifact path", "kind", args.Kind, "error", err)
		return fmt.Errorf("resolve %s path: %w", args.Kind, err)
	}

	slog.Info("resolved artifact path", "kind", args.Kind, "path", path)

	return w.ui.DisplayPath(ctx, string(path))
}

func (w *workflow) Relative(ctx context.Context, args ResolveArgs) error {
	strategy, err := w.newStrategy(args.StrategyArgs)
	if err != nil {
		return err
	}

	relative, err := strategy.RelativeFilePathFor(args.Kind, args.Example)
	if err != nil {
		return fmt.Errorf("build %s relative path: %w", args.Kind, err)
	}

	return w.ui.DisplayPath(ctx, relative)
}

func (w *workflow) Hash(ctx context.Context, args HashArgs) error {
	if len(args.Examples) == 0 {
		return fmt.Errorf("%w: no example locations given", ErrInvalidArgument)
	}

	strategy, err := w.newStrategy(args.StrategyArgs)
	if err != nil {
		return err
	}

	hashes := make([]m.HashResult, 0, len(args.Examples))

	for _, example := range args.Examples {
		hash, err := strategy.ExampleHash(example)
		if err != nil {
			return fmt.Errorf("hash example %d: %w", len(hashes), err)
		}

		hashes = append(hashes, m.HashResult{Location: example.Location(), Hash: hash})
	}

	return w.ui.DisplayHashes(ctx, hashes)
}

func (w *workflow) Materialize(ctx context.Context, args MaterializeArgs) error {
	examples, err := w.collectExamples(args)
	if err != nil {
		return err
	}

	strategy, err := w.newStrategy(args.StrategyArgs)
	if err != nil {
		return err
	}

	sets, err := w.materializeSets(ctx, strategy, examples, args.Threads)
	if err != nil {
		slog.Error("materialize failed", "report", args.Report, "error", err)
		return err
	}

	slog.Info("materialized artifact paths",
		"report", args.Report,
		"examples", len(sets),
		"base_dir", strategy.BaseReportDir())

	return w.ui.DisplayArtifactSets(ctx, sets)
}

// collectExamples returns the examples listed in the examples file followed by
// the ones given directly.
func (w *workflow) collectExamples(args MaterializeArgs) ([]m.Example, error) {
	var examples []m.Example

	if args.ExamplesFile != "" {
		loaded, err := w.LoadExamples(args.ExamplesFile)
		if err != nil {
			return nil, fmt.Errorf("load examples: %w", err)
		}

		slog.Debug("loaded examples", "file", args.ExamplesFile, "count", len(loaded))

		examples = append(examples, loaded...)
	}

	examples = append(examples, args.Examples...)

	if len(examples) == 0 {
		return nil, fmt.Errorf("%w: no examples to materialize", ErrInvalidArgument)
	}

	return examples, nil
}

// materializeSets resolves every example on a bounded worker pool. The result
// keeps the input order; the first failure cancels the remaining work.
func (w *workflow) materializeSets(
	ctx context.Context,
	strategy *FilePathStrategy,
	examples []m.Example,
	threads int,
) ([]m.ArtifactSet, error) {
	sets := make([]m.ArtifactSet, len(examples))

	var setsMutex sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for index, example := range examples {
		index, example := index, example

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			set, err := strategy.ArtifactSet(example)
			if err != nil {
				return fmt.Errorf("materialize example %d: %w", index, err)
			}

			setsMutex.Lock()

			sets[index] = set

			setsMutex.Unlock()

			slog.Debug("materialized example", "location", set.Location, "hash", set.Hash)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return sets, nil
}
