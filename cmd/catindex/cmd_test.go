package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/catindex/internal/fixture"
	"github.com/mesh-intelligence/catindex/internal/paths"
	"github.com/mesh-intelligence/catindex/pkg/types"
)

const forestYAML = `categories:
  - {id: "1", name: Electronics}
  - {id: "2", name: Phones}
  - {id: "3", name: Laptops}
  - {id: "4", name: Android}
  - {id: "5", name: iOS}
  - {id: "6", name: iPhone 15}
  - {id: "7", name: Ultrabooks}
edges:
  - {child: "2", parent: "1"}
  - {child: "3", parent: "1"}
  - {child: "4", parent: "2"}
  - {child: "5", parent: "2"}
  - {child: "6", parent: "5"}
  - {child: "7", parent: "3"}
`

const scriptYAML = forestYAML + `steps:
  - {op: children, id: "2"}
  - {op: assign, child: "4", parent: "2", expect_error: duplicate_edge}
  - {op: remove, id: "2"}
  - {op: size}
`

// cli runs a fresh root command with an isolated config directory.
type cli struct {
	t         *testing.T
	configDir string
	dir       string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv(paths.EnvFixture, "")
	t.Setenv(paths.EnvConfigDir, "")
	return &cli{t: t, configDir: filepath.Join(t.TempDir(), "config"), dir: t.TempDir()}
}

func (c *cli) writeFile(name, content string) string {
	c.t.Helper()
	path := filepath.Join(c.dir, name)
	require.NoError(c.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (c *cli) run(args ...string) (stdout, stderr string, err error) {
	c.t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config-dir", c.configDir}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestChildrenCommand(t *testing.T) {
	c := newCLI(t)
	file := c.writeFile("forest.yaml", forestYAML)

	out, _, err := c.run("children", "-f", file, "2")

	require.NoError(t, err)
	assert.Equal(t, "4\tAndroid\n5\tiOS\n6\tiPhone 15\n", out)
}

func TestHierarchyCommandJSON(t *testing.T) {
	c := newCLI(t)
	file := c.writeFile("forest.yaml", forestYAML)

	out, _, err := c.run("--json", "hierarchy", "--file", file, "6")

	require.NoError(t, err)
	var got []types.Category
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"1", "2", "5", "6"}, types.IDs(got))
	assert.Equal(t, "iPhone 15", got[3].Name)
}

func TestTopCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "default k from config",
			args: nil,
			want: "1\tElectronics\n2\tPhones\n3\tLaptops\n",
		},
		{
			name: "explicit k",
			args: []string{"-k", "1"},
			want: "1\tElectronics\n",
		},
		{
			name:    "zero k is rejected",
			args:    []string{"-k", "0"},
			wantErr: errUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(t)
			file := c.writeFile("forest.yaml", forestYAML)

			out, _, err := c.run(append([]string{"top", "-f", file}, tt.args...)...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, exitUserError, exitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTopCommandUsesConfigTopK(t *testing.T) {
	c := newCLI(t)
	require.NoError(t, os.MkdirAll(c.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(c.configDir, "config.yaml"), []byte("top_k: 2\n"), 0o644))
	file := c.writeFile("forest.yaml", forestYAML)

	out, _, err := c.run("top", "-f", file)

	require.NoError(t, err)
	assert.Equal(t, "1\tElectronics\n2\tPhones\n", out)
}

func TestListCommandUsesConfigFixture(t *testing.T) {
	c := newCLI(t)
	file := c.writeFile("forest.jsonl", `{"kind":"category","id":"b","name":"Second"}
{"kind":"category","id":"a","name":"First"}
`)
	require.NoError(t, os.MkdirAll(c.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(c.configDir, "config.yaml"), []byte("fixture: "+file+"\n"), 0o644))

	out, _, err := c.run("list")

	require.NoError(t, err)
	assert.Equal(t, "b\tSecond\na\tFirst\n", out)
}

func TestRunCommand(t *testing.T) {
	c := newCLI(t)
	file := c.writeFile("script.yaml", scriptYAML)

	out, _, err := c.run("run", file)

	require.NoError(t, err)
	assert.Equal(t, `# children 2
4	Android
5	iOS
6	iPhone 15
# assign 4 -> 2 (duplicate_edge)
# remove 2
# size
3
`, out)
}

func TestRunCommandJSON(t *testing.T) {
	c := newCLI(t)
	file := c.writeFile("script.yaml", scriptYAML)

	out, _, err := c.run("run", "--json", file)

	require.NoError(t, err)
	var got []stepOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 4)
	assert.Equal(t, "children 2", got[0].Step)
	assert.Len(t, got[0].Categories, 3)
	assert.Equal(t, "duplicate_edge", got[1].Error)
	assert.EqualValues(t, 3, got[3].Value)
}

func TestRunCommandStopsOnUnexpectedError(t *testing.T) {
	c := newCLI(t)
	file := c.writeFile("script.yaml", forestYAML+`steps:
  - {op: size}
  - {op: hierarchy, id: "42"}
  - {op: size}
`)

	out, _, err := c.run("run", file)

	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, exitUserError, exitCode(err))
	assert.Equal(t, "# size\n7\n", out, "results before the failure are printed")
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		fixture  string
		args     func(file string) []string
		wantErr  error
		wantCode int
	}{
		{
			name:     "unknown id",
			fixture:  forestYAML,
			args:     func(f string) []string { return []string{"children", "-f", f, "99"} },
			wantErr:  types.ErrNotFound,
			wantCode: exitUserError,
		},
		{
			name:     "no fixture",
			args:     func(string) []string { return []string{"list"} },
			wantErr:  paths.ErrNoFixture,
			wantCode: exitUserError,
		},
		{
			name:     "fixture with duplicate edge",
			fixture:  forestYAML + "  - {child: \"2\", parent: \"1\"}\n",
			args:     func(f string) []string { return []string{"list", "-f", f} },
			wantErr:  types.ErrDuplicateEdge,
			wantCode: exitUserError,
		},
		{
			name:     "invalid fixture",
			fixture:  "edges:\n  - {child: \"1\"}\n",
			args:     func(f string) []string { return []string{"list", "-f", f} },
			wantErr:  types.ErrInvalidFixture,
			wantCode: exitUserError,
		},
		{
			name:     "invalid log level flag",
			fixture:  forestYAML,
			args:     func(f string) []string { return []string{"--log-level", "loud", "list", "-f", f} },
			wantErr:  types.ErrLogLevelUnknown,
			wantCode: exitUserError,
		},
		{
			name:     "missing fixture file",
			args:     func(string) []string { return []string{"list", "-f", "/does/not/exist.yaml"} },
			wantErr:  os.ErrNotExist,
			wantCode: exitSysError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCLI(t)
			file := ""
			if tt.fixture != "" {
				file = c.writeFile("forest.yaml", tt.fixture)
			}

			_, _, err := c.run(tt.args(file)...)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, exitCode(err))
		})
	}
}

func TestDefaultConfigWrittenOnFirstRun(t *testing.T) {
	c := newCLI(t)
	file := c.writeFile("forest.yaml", forestYAML)

	_, _, err := c.run("list", "-f", file)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(c.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "top_k: 3")
}

func TestDebugLoggingGoesToStderr(t *testing.T) {
	c := newCLI(t)
	file := c.writeFile("forest.yaml", forestYAML)

	out, errOut, err := c.run("--log-level", "debug", "children", "-f", file, "7")

	require.NoError(t, err)
	assert.Empty(t, out, "leaf has no children")
	assert.Contains(t, errOut, "category added")
	assert.Contains(t, errOut, "parent assigned")
}

func TestVersionCommand(t *testing.T) {
	c := newCLI(t)

	out, _, err := c.run("version")

	require.NoError(t, err)
	assert.Contains(t, out, "catindex v"+Version)
	_, statErr := os.Stat(c.configDir)
	assert.True(t, os.IsNotExist(statErr), "version does not touch config")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(types.ErrCycle))
	assert.Equal(t, exitUserError, exitCode(fixture.ErrExpectationFailed))
	assert.Equal(t, exitSysError, exitCode(errors.New("disk on fire")))
}
