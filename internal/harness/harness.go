package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/helpers/internal/object"
	"github.com/roach88/helpers/internal/testutil"
	"github.com/roach88/helpers/internal/value"
)

// RunOptions configures a scenario run.
type RunOptions struct {
	// Logger receives per-case progress. Nil discards.
	Logger *slog.Logger

	// IDGen overrides run ID generation. When nil, the scenario's run_id
	// is used if set, otherwise a UUIDv7.
	IDGen IDGenerator
}

// runner holds the state of one scenario run.
type runner struct {
	scenario *Scenario
	clock    *testutil.DeterministicClock
	logger   *slog.Logger
	opts     []object.CompareOption
	maxDepth int
}

// Run executes a scenario with default options and returns the result.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithOptions(scenario, RunOptions{})
}

// RunWithOptions executes a scenario and returns the result.
//
// Cases run in order. A case that misses its expectation fails the result
// but does not stop the run. The returned error is reserved for scenarios
// that cannot run at all.
func RunWithOptions(scenario *Scenario, opts RunOptions) (*Result, error) {
	if scenario == nil {
		return nil, errors.New("scenario is nil")
	}
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	idGen := opts.IDGen
	if idGen == nil {
		if scenario.RunID != "" {
			idGen = testutil.NewFixedIDGenerator(scenario.RunID)
		} else {
			idGen = UUIDv7Generator{}
		}
	}

	r := &runner{
		scenario: scenario,
		clock:    testutil.NewDeterministicClock(),
		logger:   logger,
		maxDepth: scenario.MaxDepth,
	}
	if scenario.StrictArrays {
		r.opts = append(r.opts, object.WithStrictArrays())
	}
	if scenario.MaxDepth > 0 {
		r.opts = append(r.opts, object.WithMaxDepth(scenario.MaxDepth))
	}

	result := NewResult(idGen.Generate(), scenario.Name)
	logger.Info("scenario started",
		"scenario", scenario.Name,
		"run_id", result.RunID,
		"cases", len(scenario.Cases),
	)

	for i := range scenario.Cases {
		c := &scenario.Cases[i]
		cr := r.runCase(c)
		result.AddCase(cr)

		r.logger.Info("case completed",
			"seq", cr.Seq,
			"case", c.Name,
			"kind", c.Kind,
			"pass", cr.Pass,
		)
		if !cr.Pass {
			r.logger.Debug("case failure", "case", c.Name, "message", cr.Message)
		}
	}

	logger.Info("scenario finished",
		"scenario", scenario.Name,
		"run_id", result.RunID,
		"pass", result.Pass,
		"passed", result.Passed(),
		"failed", len(result.Cases)-result.Passed(),
	)

	return result, nil
}

// runCase evaluates one case. Seq is taken exactly once per case.
func (r *runner) runCase(c *Case) CaseResult {
	cr := CaseResult{
		Seq:  r.clock.Next(),
		Name: c.Name,
		Kind: c.Kind,
	}

	switch c.Kind {
	case KindMatch, KindChildren:
		var err error
		format := r.scenario.formatFor(c)
		if c.Kind == KindMatch {
			err = CheckFormat(c.Input, format, r.opts...)
		} else {
			err = CheckChildrenFormat(c.Input, format, r.opts...)
		}
		cr.Pass, cr.Message = judge(c.Expect, err)

	case KindMerge:
		cr.Pass, cr.Message = r.checkMerge(c)

	default:
		cr.Message = fmt.Sprintf("unknown case kind %q", c.Kind)
	}

	return cr
}

// judge compares a check outcome with the case expectation. The mismatch
// text is kept as the message for expected failures too, so reports show
// what was rejected.
func judge(expect string, err error) (bool, string) {
	switch {
	case err == nil && expect == ExpectPass:
		return true, ""
	case err == nil:
		return false, "expected a mismatch, but the value matches the format"
	case expect == ExpectFail:
		return true, err.Error()
	default:
		return false, err.Error()
	}
}

// checkMerge folds the case sources into an empty record and compares the
// outcome with the expected result.
func (r *runner) checkMerge(c *Case) (bool, string) {
	sources := c.Input.(value.Array)
	got, err := object.DeepMergeLimit(r.maxDepth, value.NewObject(), sources...)
	if err != nil {
		return false, fmt.Sprintf("merge failed: %v", err)
	}
	if !value.Equal(got, c.Result) {
		return false, fmt.Sprintf("merged result differs: expected %s, got %s",
			oneLine(c.Result), oneLine(got))
	}
	return true, ""
}

func oneLine(v value.Value) string {
	return object.Inspect(v, object.WithDepth(-1), object.WithBreakLength(1<<20))
}
