package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/helpers/internal/testutil"
	"github.com/roach88/helpers/internal/value"
)

// Snapshot renders a result as canonical JSON.
// Keys are sorted, so equal results always produce identical bytes.
func Snapshot(result *Result) ([]byte, error) {
	return value.MarshalCanonical(snapshotValue(result))
}

// snapshotValue converts a Result into a value.Object, because
// value.MarshalCanonical only handles value.Value.
func snapshotValue(result *Result) *value.Object {
	cases := make(value.Array, len(result.Cases))
	for i, c := range result.Cases {
		co := value.NewObjectFromPairs(
			value.P("seq", value.Number(c.Seq)),
			value.P("name", value.String(c.Name)),
			value.P("kind", value.String(c.Kind)),
			value.P("pass", value.Bool(c.Pass)),
		)
		if c.Message != "" {
			co.Set("message", value.String(c.Message))
		}
		cases[i] = co
	}

	snap := value.NewObjectFromPairs(
		value.P("run_id", value.String(result.RunID)),
		value.P("scenario", value.String(result.Scenario)),
		value.P("pass", value.Bool(result.Pass)),
		value.P("cases", cases),
	)
	if len(result.Errors) > 0 {
		errs := make(value.Array, len(result.Errors))
		for i, e := range result.Errors {
			errs[i] = value.String(e)
		}
		snap.Set("errors", errs)
	}
	return snap
}

// RunWithGolden executes a scenario and compares its report against a
// golden file at testdata/golden/{scenario.Name}.golden.
//
// The run ID is fixed to the scenario's run_id, or "test-run-default" when
// none is set, so the report is reproducible.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the report doesn't match the golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := RunWithOptions(scenario, RunOptions{
		IDGen: testutil.NewFixedIDGenerator(scenario.RunID),
	})
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares the given result against a golden file.
// This is useful when you've already run a scenario and want to compare
// the result against a golden file without re-running.
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	data, err := Snapshot(result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)

	return nil
}
