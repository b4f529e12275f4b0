package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/helpers/internal/testutil"
	"github.com/roach88/helpers/internal/value"
)

func mustParse(t *testing.T, src string) *Scenario {
	t.Helper()
	s, err := ParseScenario([]byte(src))
	require.NoError(t, err)
	return s
}

func TestRun_AllCasesPass(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/user_records.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.True(t, result.Pass)
	assert.Equal(t, "run-users", result.RunID)
	assert.Equal(t, "user_records", result.Scenario)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Cases, 4)
	assert.Equal(t, 4, result.Passed())

	for i, c := range result.Cases {
		assert.Equal(t, int64(i+1), c.Seq, "case %s", c.Name)
	}
}

func TestRun_ExpectedFailureKeepsMessage(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/user_records.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	stringID := result.Cases[1]
	assert.True(t, stringID.Pass)
	assert.Contains(t, stringID.Message, "id: type mismatch")
}

func TestRun_FailuresAreCollected(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/failing_checks.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Equal(t, 0, result.Passed())
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], `case "mixed_strict" (match)`)
	assert.Contains(t, result.Errors[1], "expected a mismatch")
	assert.Contains(t, result.Errors[2], "merged result differs")
}

func TestRun_GeneratesUUIDv7WithoutRunID(t *testing.T) {
	s := mustParse(t, `
name: ids
description: d
cases:
  - name: m
    kind: merge
    input: [{ a: 1 }]
    result: { a: 1 }
`)
	result, err := Run(s)
	require.NoError(t, err)

	id, err := uuid.Parse(result.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestRunWithOptions_IDGenOverrides(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/user_records.yaml")
	require.NoError(t, err)

	result, err := RunWithOptions(s, RunOptions{IDGen: testutil.NewFixedIDGenerator("fixed")})
	require.NoError(t, err)
	assert.Equal(t, "fixed", result.RunID)
}

func TestRunWithOptions_Logs(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/failing_checks.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err = RunWithOptions(s, RunOptions{Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "scenario started")
	assert.Contains(t, out, "case=wrong_merge")
	assert.Contains(t, out, "case failure")
	assert.Contains(t, out, "scenario finished")
}

func TestRun_MergeDepthLimit(t *testing.T) {
	s := mustParse(t, `
name: deep
description: d
max_depth: 1
cases:
  - name: too_deep
    kind: merge
    input: [{ a: { b: { c: 1 } } }]
    result: { a: { b: { c: 1 } } }
`)
	result, err := Run(s)
	require.NoError(t, err)
	require.Len(t, result.Cases, 1)
	assert.False(t, result.Cases[0].Pass)
	assert.Contains(t, result.Cases[0].Message, "merge failed")
}

func TestRun_MergeDoesNotTouchSources(t *testing.T) {
	s := mustParse(t, `
name: sources
description: d
cases:
  - name: m
    kind: merge
    input: [{ a: { b: 1 } }, { a: { c: 2 } }]
    result: { a: { b: 1, c: 2 } }
`)
	first := s.Cases[0].Input.(value.Array)[0].(*value.Object).Clone()

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)
	assert.True(t, value.Equal(first, s.Cases[0].Input.(value.Array)[0]))
}

func TestRun_NilScenario(t *testing.T) {
	_, err := Run(nil)
	require.Error(t, err)
}

func TestRun_RejectsInvalidScenario(t *testing.T) {
	_, err := Run(&Scenario{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description is required")
}

func TestResult_AddCase(t *testing.T) {
	r := NewResult("id", "s")
	r.AddCase(CaseResult{Seq: 1, Name: "ok", Kind: KindMatch, Pass: true})
	assert.True(t, r.Pass)
	assert.Empty(t, r.Errors)

	r.AddCase(CaseResult{Seq: 2, Name: "bad", Kind: KindMerge, Message: "boom"})
	assert.False(t, r.Pass)
	assert.Equal(t, []string{`case "bad" (merge): boom`}, r.Errors)
	assert.Equal(t, 1, r.Passed())
}
