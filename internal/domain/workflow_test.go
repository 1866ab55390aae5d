package domain_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/artifactpath/internal/adapter"
	adaptermocks "gooze.dev/pkg/artifactpath/internal/adapter/mocks"
	controllermocks "gooze.dev/pkg/artifactpath/internal/controller/mocks"
	"gooze.dev/pkg/artifactpath/internal/domain"
	m "gooze.dev/pkg/artifactpath/internal/model"
)

type workflowFixture struct {
	root     string
	report   string
	examples *adaptermocks.MockExampleSource
	ui       *controllermocks.MockUI
	wf       domain.Workflow
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	root := t.TempDir()
	examples := adaptermocks.NewMockExampleSource(t)
	ui := controllermocks.NewMockUI(t)

	return workflowFixture{
		root:     root,
		report:   filepath.Join(root, "nightly.html"),
		examples: examples,
		ui:       ui,
		wf:       domain.NewWorkflow(adapter.NewLocalFileSystem(), examples, ui),
	}
}

func TestWorkflow_Resolve(t *testing.T) {
	f := newWorkflowFixture(t)
	hash := adapter.SHA256Hasher{}.Sum([]byte(theExample))
	want := filepath.Join(f.root, "resources", "nightly", "example_"+hash+"_page_screenshot.png")

	f.ui.EXPECT().DisplayPath(mock.Anything, want).Return(nil).Once()

	err := f.wf.Resolve(context.Background(), domain.ResolveArgs{
		StrategyArgs: domain.StrategyArgs{Report: f.report},
		Kind:         m.ArtifactPageScreenshot,
		Example:      theExample,
	})
	require.NoError(t, err)
	assert.DirExists(t, filepath.Dir(want))
}

func TestWorkflow_Resolve_Errors(t *testing.T) {
	t.Run("unknown hash algorithm", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.Resolve(context.Background(), domain.ResolveArgs{
			StrategyArgs: domain.StrategyArgs{Report: f.report, HashAlgorithm: "md4"},
			Kind:         m.ArtifactHTMLCapture,
			Example:      theExample,
		})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
		require.ErrorIs(t, err, adapter.ErrUnknownHasher)
	})

	t.Run("empty report", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.Resolve(context.Background(), domain.ResolveArgs{
			Kind:    m.ArtifactHTMLCapture,
			Example: theExample,
		})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("directory cannot be created", func(t *testing.T) {
		f := newWorkflowFixture(t)
		require.NoError(t, os.WriteFile(filepath.Join(f.root, "resources"), []byte("blocker"), 0o644))

		err := f.wf.Resolve(context.Background(), domain.ResolveArgs{
			StrategyArgs: domain.StrategyArgs{Report: f.report},
			Kind:         m.ArtifactHTMLCapture,
			Example:      theExample,
		})
		require.ErrorIs(t, err, domain.ErrIO)
	})
}

func TestWorkflow_Relative(t *testing.T) {
	f := newWorkflowFixture(t)
	hash := adapter.BLAKE3Hasher{}.Sum([]byte(theExample))

	f.ui.EXPECT().DisplayPath(mock.Anything, "resources/nightly/example_"+hash+".html").Return(nil).Once()

	err := f.wf.Relative(context.Background(), domain.ResolveArgs{
		StrategyArgs: domain.StrategyArgs{Report: f.report, HashAlgorithm: adapter.HashBLAKE3},
		Kind:         m.ArtifactHTMLCapture,
		Example:      theExample,
	})
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(f.root, "resources"))
}

func TestWorkflow_Hash(t *testing.T) {
	t.Run("hashes every location", func(t *testing.T) {
		f := newWorkflowFixture(t)

		f.ui.EXPECT().DisplayHashes(mock.Anything, mock.MatchedBy(func(hashes []m.HashResult) bool {
			return len(hashes) == 2 &&
				hashes[0].Location == "./blah/blah:6" &&
				hashes[1].Location == "./blah/blah:21" &&
				hashes[0].Hash != hashes[1].Hash
		})).Return(nil).Once()

		err := f.wf.Hash(context.Background(), domain.HashArgs{
			StrategyArgs: domain.StrategyArgs{Report: f.report},
			Examples:     m.ParseLocations([]string{"./blah/blah:6", "./blah/blah:21"}),
		})
		require.NoError(t, err)
	})

	t.Run("requires at least one location", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.Hash(context.Background(), domain.HashArgs{StrategyArgs: domain.StrategyArgs{Report: f.report}})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("rejects blank locations", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.Hash(context.Background(), domain.HashArgs{
			StrategyArgs: domain.StrategyArgs{Report: f.report},
			Examples:     m.ParseLocations([]string{"./blah/blah:6", ""}),
		})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestWorkflow_Materialize(t *testing.T) {
	t.Run("file examples come before direct ones", func(t *testing.T) {
		f := newWorkflowFixture(t)
		file := m.Path(filepath.Join(f.root, "examples.yaml"))

		f.examples.EXPECT().LoadExamples(file).
			Return(m.ParseLocations([]string{"./spec/a_spec.rb:1", "./spec/a_spec.rb:9"}), nil).Once()

		var displayed []m.ArtifactSet

		f.ui.EXPECT().DisplayArtifactSets(mock.Anything, mock.Anything).
			Run(func(_ context.Context, sets []m.ArtifactSet) { displayed = sets }).
			Return(nil).Once()

		err := f.wf.Materialize(context.Background(), domain.MaterializeArgs{
			StrategyArgs: domain.StrategyArgs{Report: f.report},
			Examples:     m.ParseLocations([]string{"./spec/b_spec.rb:3"}),
			ExamplesFile: file,
			Threads:      2,
		})
		require.NoError(t, err)

		require.Len(t, displayed, 3)
		assert.Equal(t, "./spec/a_spec.rb:1", displayed[0].Location)
		assert.Equal(t, "./spec/a_spec.rb:9", displayed[1].Location)
		assert.Equal(t, "./spec/b_spec.rb:3", displayed[2].Location)

		for _, set := range displayed {
			require.Len(t, set.Paths, len(m.AllArtifactKinds()))
			assert.Equal(t,
				m.Path(filepath.Join(f.root, "resources", "nightly", "example_"+set.Hash+".html")),
				set.Paths[m.ArtifactHTMLCapture])
		}

		assert.DirExists(t, filepath.Join(f.root, "resources", "nightly"))
	})

	t.Run("no examples", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.Materialize(context.Background(), domain.MaterializeArgs{
			StrategyArgs: domain.StrategyArgs{Report: f.report},
		})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("examples file failure", func(t *testing.T) {
		f := newWorkflowFixture(t)
		loadErr := errors.New("no such file")

		f.examples.EXPECT().LoadExamples(m.Path("missing.yaml")).Return(nil, loadErr).Once()

		err := f.wf.Materialize(context.Background(), domain.MaterializeArgs{
			StrategyArgs: domain.StrategyArgs{Report: f.report},
			ExamplesFile: "missing.yaml",
		})
		require.ErrorIs(t, err, loadErr)
	})

	t.Run("directory failure aborts the batch", func(t *testing.T) {
		f := newWorkflowFixture(t)
		require.NoError(t, os.WriteFile(filepath.Join(f.root, "resources"), []byte("blocker"), 0o644))

		err := f.wf.Materialize(context.Background(), domain.MaterializeArgs{
			StrategyArgs: domain.StrategyArgs{Report: f.report},
			Examples:     m.ParseLocations([]string{"./spec/a_spec.rb:1", "./spec/a_spec.rb:2"}),
			Threads:      4,
		})
		require.ErrorIs(t, err, domain.ErrIO)
	})

	t.Run("cancelled context", func(t *testing.T) {
		f := newWorkflowFixture(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := f.wf.Materialize(ctx, domain.MaterializeArgs{
			StrategyArgs: domain.StrategyArgs{Report: f.report},
			Examples:     m.ParseLocations([]string{"./spec/a_spec.rb:1"}),
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}
