// Package harness provides format assertions and a scenario runner built
// on object.DeepTypeCompare and object.DeepMerge.
//
// # Assertions
//
// ToMatchFormat and ChildrenToMatchFormat return a MatchResult with a pass
// flag and a message, ready to be surfaced by any test framework.
// AssertMatchesFormat and AssertChildrenMatchFormat report through
// testify.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: user_records
//	description: "Incoming user records match the user format"
//	run_id: "run-users"        # optional, fixes the report's run ID
//	strict_arrays: false       # optional
//	max_depth: 0               # optional, 0 selects the default
//	format:
//	  id: number
//	  name: string
//	  tags: [string]
//	cases:
//	  - name: valid
//	    kind: match
//	    input: { id: 5, name: ok, tags: [x, y] }
//	    expect: pass
//	  - name: string_id
//	    kind: match
//	    input: { id: "5", name: ok, tags: [x] }
//	    expect: fail
//	  - name: batch
//	    kind: children
//	    input: [{ id: 1, name: a, tags: [] }]
//	    expect: fail
//	  - name: defaults
//	    kind: merge
//	    input: [{ a: 1 }, { b: { c: 2 } }]
//	    result: { a: 1, b: { c: 2 } }
//
// A case may carry its own format, which replaces the scenario format.
//
// # Deterministic Reports
//
// Each run gets a run ID (UUIDv7 unless run_id or RunOptions.IDGen fixes
// it), and case results are stamped with a logical sequence number.
// Snapshot renders a result as canonical JSON for golden comparison.
package harness
