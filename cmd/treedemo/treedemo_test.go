package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (*report, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := New(out, errOut).ExecuteArgs(args)
	if err != nil {
		return nil, errOut.String(), err
	}
	r := &report{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), r))
	return r, errOut.String(), nil
}

func TestBuild_Traversals(t *testing.T) {
	r, _, err := run(t, "build", "--strategy", "bst", "--order", "pre,in,post,level",
		"10", "3", "5", "21", "1", "6", "22", "14", "13", "20")
	require.NoError(t, err)
	assert.Equal(t, "bst", r.Strategy)
	assert.EqualValues(t, 10, r.Size)
	assert.EqualValues(t, 4, r.Height)
	assert.Equal(t, []int{10, 3, 1, 5, 6, 21, 14, 13, 20, 22}, r.Orders["pre"])
	assert.Equal(t, []int{1, 3, 5, 6, 10, 13, 14, 20, 21, 22}, r.Orders["in"])
	assert.Equal(t, []int{1, 6, 5, 3, 13, 20, 14, 22, 21, 10}, r.Orders["post"])
	assert.Equal(t, []int{10, 3, 21, 1, 5, 14, 22, 6, 13, 20}, r.Orders["level"])
	require.NotNil(t, r.Min)
	require.NotNil(t, r.Max)
	assert.Equal(t, 1, *r.Min)
	assert.Equal(t, 22, *r.Max)
}

func TestBuild_AVLSkipsDuplicatesAndMissing(t *testing.T) {
	r, logs, err := run(t, "build", "--order", "pre", "--remove", "99,54", "--log-level", "debug",
		"44", "17", "78", "32", "50", "88", "48", "62", "54", "17")
	require.NoError(t, err)
	assert.Equal(t, "avl", r.Strategy)
	assert.True(t, r.Balanced)
	assert.Equal(t, []int{17}, r.Skipped)
	assert.EqualValues(t, 8, r.Size)
	assert.Equal(t, []int{44, 17, 32, 62, 50, 48, 78, 88}, r.Orders["pre"])
	assert.Contains(t, logs, "skipping duplicate value")
	assert.Contains(t, logs, "cannot remove absent value")
}

func TestBuild_Balance(t *testing.T) {
	r, _, err := run(t, "build", "--strategy", "bst", "--balance", "--order", "level", "1", "2", "3", "4", "5", "6", "7")
	require.NoError(t, err)
	assert.True(t, r.Balanced)
	assert.EqualValues(t, 3, r.Height)
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, r.Orders["level"])
}

func TestBuild_AllOrders(t *testing.T) {
	r, _, err := run(t, "build", "--order", "all", "2", "1", "3")
	require.NoError(t, err)
	assert.Len(t, r.Orders, 4)
	assert.Equal(t, []int{2, 1, 3}, r.Orders["level"])
	assert.Equal(t, []int{1, 3, 2}, r.Orders["post"])
}

func TestBuild_Empty(t *testing.T) {
	r, _, err := run(t, "build")
	require.NoError(t, err)
	assert.Zero(t, r.Size)
	assert.Nil(t, r.Min)
	assert.Nil(t, r.Max)
}

func TestBuild_ConfigFileAndEnv(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "treedemo.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("strategy: bst\norder: [in, level]\nremove: [3]\n"), 0600))

	r, _, err := run(t, "build", "--config", cfg, "2", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "bst", r.Strategy)
	assert.Equal(t, []int{1, 2}, r.Orders["in"])
	assert.Equal(t, []int{2, 1}, r.Orders["level"])
	assert.NotContains(t, r.Orders, "pre")

	//flags win over the config file.
	r, _, err = run(t, "build", "--config", cfg, "--strategy", "avl", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "avl", r.Strategy)
	assert.Equal(t, []int{2, 1}, r.Orders["level"])

	t.Setenv("TREEDEMO_STRATEGY", "bst")
	r, _, err = run(t, "build", "--order", "pre", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "bst", r.Strategy)
	assert.Equal(t, []int{1, 2, 3}, r.Orders["pre"])
}

func TestBuild_Errors(t *testing.T) {
	_, logs, err := run(t, "build", "--strategy", "rb", "1")
	assert.ErrorContains(t, err, "unknown strategy")
	assert.Contains(t, logs, "Error:")

	_, _, err = run(t, "build", "x")
	assert.ErrorContains(t, err, "invalid value")

	_, _, err = run(t, "build", "--order", "sideways", "1")
	assert.ErrorContains(t, err, "unknown order")

	_, _, err = run(t, "--log-level", "loud", "build", "1")
	assert.ErrorContains(t, err, "invalid log level")

	_, _, err = run(t, "build", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "1")
	assert.Error(t, err)
}
