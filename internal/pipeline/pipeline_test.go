package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/nao1215/zhipistat/internal/model"
	"github.com/nao1215/zhipistat/internal/table"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	requires  []string
	doFunc    func(ctx context.Context, t *table.Table, report *model.Report) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, t *table.Table, report *model.Report) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, t, report)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

// Requires implements Step.Requires.
func (m *mockStep) Requires() []string {
	return m.requires
}

// newTestTable builds a small table with an id and a text column.
func newTestTable(t *testing.T) *table.Table {
	t.Helper()

	tbl, err := table.FromRecords("comments.csv",
		[]string{"comment_id", "comment_text_clean"},
		[][]string{{"1", "甲"}, {"2", "乙"}},
	)
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return tbl
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()

		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
	})
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds multiple steps with AddSteps", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(&mockStep{name: "step-1"}, &mockStep{name: "step-2"}, &mockStep{name: "step-3"})

		if p.StepCount() != 3 {
			t.Errorf("expected 3 steps, got %d", p.StepCount())
		}
	})

	t.Run("maintains step order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "first"})
		p.AddStep(&mockStep{name: "second"})
		p.AddStep(&mockStep{name: "third"})

		names := p.StepNames()

		expected := []string{"first", "second", "third"}
		for i, name := range names {
			if name != expected[i] {
				t.Errorf("step %d: got %q, expected %q", i, name, expected[i])
			}
		}
	})
}

// TestPipelineExecute tests pipeline execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps in order and records them", func(t *testing.T) {
		t.Parallel()

		var order []string
		record := func(name string) *mockStep {
			return &mockStep{
				name: name,
				doFunc: func(_ context.Context, _ *table.Table, _ *model.Report) error {
					order = append(order, name)
					return nil
				},
			}
		}

		p := New()
		p.AddSteps(record("a"), record("b"), record("c"))

		report := model.NewReport("title", "comments.csv")
		if err := p.Execute(context.Background(), newTestTable(t), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
			t.Errorf("unexpected execution order: %v", order)
		}
		if len(report.Steps) != 3 {
			t.Errorf("expected 3 recorded steps, got %v", report.Steps)
		}
	})

	t.Run("skips steps whose columns are missing", func(t *testing.T) {
		t.Parallel()

		present := &mockStep{name: "present", requires: []string{"comment_id"}}
		absent := &mockStep{name: "absent", requires: []string{"comment_id", "char_len"}}

		p := New()
		p.AddSteps(present, absent)

		report := model.NewReport("title", "comments.csv")
		if err := p.Execute(context.Background(), newTestTable(t), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if present.callCount != 1 {
			t.Errorf("expected present step to run once, got %d", present.callCount)
		}
		if absent.callCount != 0 {
			t.Errorf("expected absent step to be skipped, got %d calls", absent.callCount)
		}
		if len(report.Steps) != 1 || report.Steps[0] != "present" {
			t.Errorf("unexpected recorded steps: %v", report.Steps)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("boom")
		failing := &mockStep{
			name: "failing",
			doFunc: func(_ context.Context, _ *table.Table, _ *model.Report) error {
				return wantErr
			},
		}
		after := &mockStep{name: "after"}

		p := New()
		p.AddSteps(failing, after)

		err := p.Execute(context.Background(), newTestTable(t), model.NewReport("title", "x"))
		if !errors.Is(err, wantErr) {
			t.Errorf("expected %v, got %v", wantErr, err)
		}
		if after.callCount != 0 {
			t.Error("expected later steps not to run")
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		step := &mockStep{name: "never"}
		p := New()
		p.AddStep(step)

		err := p.Execute(ctx, newTestTable(t), model.NewReport("title", "x"))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if step.callCount != 0 {
			t.Error("expected step not to run after cancellation")
		}
	})
}
