package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleDoc = `
capacity: 8
decisions:
  - name: expr
    configs:
      - {state: 1, alt: 1}
      - {state: 1, alt: 3}
      - {state: 2, alt: 1}
      - {state: 2, alt: 3}
  - name: stmt
    prune: [2]
    configs:
      - {state: 4, alt: 1, context: a}
      - {state: 4, alt: 2, context: a}
      - {state: 4, alt: 3, context: a}
      - {state: 5, alt: 3, context: a}
      - {state: 5, alt: 4, context: a}
  - name: term
    configs:
      - {state: 7, alt: 5}
  - name: call
    configs:
      - {state: 9, alt: 1}
      - {state: 9, alt: 3}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	e := cmd.Execute()
	return out.String(), e
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "decisions.yaml")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o666))
	return name
}

func TestIntervals(t *testing.T) {
	out, e := run(t, "intervals", "10", "2", "3", "4", "7", "9")
	require.NoError(t, e)
	assert.Equal(t, "[2,4], [7,7], [9,10]\n", out)

	out, e = run(t, "intervals")
	require.NoError(t, e)
	assert.Equal(t, "\n", out)

	_, e = run(t, "intervals", "x")
	assert.True(t, errors.As(e, &usageError{}))

	_, e = run(t, "intervals", "-1")
	assert.Error(t, e)

	_, e = run(t, "intervals", "1000000000000")
	assert.True(t, errors.As(e, &usageError{}))

	out, e = run(t, "intervals", "1048575")
	require.NoError(t, e)
	assert.Equal(t, "[1048575,1048575]\n", out)
}

func TestReportText(t *testing.T) {
	out, e := run(t, "report", writeDoc(t, sampleDoc))
	require.NoError(t, e)
	expected := "expr: alts=[1,1], [3,3] conflict=exact\n" +
		"stmt: alts=[1,1], [3,4] conflict=inexact\n" +
		"term: alts=[5,5] conflict=none\n" +
		"call: alts=[1,1], [3,3] conflict=exact same-as=expr\n"
	assert.Equal(t, expected, out)
}

func TestReportYaml(t *testing.T) {
	out, e := run(t, "report", "--format", "yaml", writeDoc(t, sampleDoc))
	require.NoError(t, e)

	var reports []decisionReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 4)
	assert.Equal(t, decisionReport{Name: "stmt", Configs: 4, Alts: "[1,1], [3,4]", Conflict: inexactConflict}, reports[1])
	assert.Equal(t, "expr", reports[3].SameAs)
}

func TestReportErrors(t *testing.T) {
	_, e := run(t, "report")
	assert.True(t, errors.As(e, &usageError{}))

	_, e = run(t, "report", "--format", "json", writeDoc(t, sampleDoc))
	assert.True(t, errors.As(e, &usageError{}))

	_, e = run(t, "report", "--capacity", "4", writeDoc(t, sampleDoc))
	require.Error(t, e)
	assert.Contains(t, e.Error(), "decision stmt")

	_, e = run(t, "report", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, e)
}

func TestReportCapacityLimit(t *testing.T) {
	_, e := run(t, "report", "--capacity", "1048577", writeDoc(t, sampleDoc))
	assert.True(t, errors.As(e, &usageError{}))

	huge := "capacity: 1000000000000\ndecisions:\n  - name: x\n    configs:\n      - {state: 1, alt: 999999999999}\n"
	_, e = run(t, "report", writeDoc(t, huge))
	assert.True(t, errors.As(e, &usageError{}))

	bigAlt := "decisions:\n  - name: x\n    configs:\n      - {state: 1, alt: 999999999999}\n"
	_, e = run(t, "report", writeDoc(t, bigAlt))
	require.Error(t, e)
	assert.False(t, errors.As(e, &usageError{}))
	assert.Contains(t, e.Error(), "out of range")
}
