package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/carfilter/internal/config"
	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/state"
)

// useConfig points every command at a fresh data directory.
func useConfig(t *testing.T, storage string) string {
	t.Helper()
	dir := t.TempDir()

	origLoad, origLogger := loadConfig, slog.Default()
	loadConfig = func() (*config.Config, error) {
		return &config.Config{
			Storage:  storage,
			DataDir:  dir,
			LogFile:  filepath.Join(dir, "carfilter.log"),
			LogLevel: "debug",
		}, nil
	}
	t.Cleanup(func() {
		loadConfig = origLoad
		slog.SetDefault(origLogger)
	})
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRoot()
	cmd.SetArgs(args)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err)
	return out
}

func showJSON(t *testing.T) report {
	t.Helper()
	var rep report
	require.NoError(t, jsoniter.Unmarshal([]byte(mustRun(t, "show", "-o", "json")), &rep))
	return rep
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := NewRoot()
	require.Equal(t, "carfilter", cmd.Use)

	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"show", "reset", "toggle-tag", "set-price", "clear", "set"} {
		assert.Contains(t, names, want)
	}
}

func TestRootRunLaunchesTUI(t *testing.T) {
	useConfig(t, config.StorageSQLite)

	origRun := runTUI
	var got state.Interface
	runTUI = func(kv state.Interface, _ *slog.Logger) error {
		got = kv
		return nil
	}
	defer func() { runTUI = origRun }()

	mustRun(t)
	assert.NotNil(t, got, "TUI should receive the opened storage")
}

func TestShow_EmptyStorage(t *testing.T) {
	useConfig(t, config.StorageSQLite)

	rep := showJSON(t)
	assert.True(t, rep.Selection.Equal(filters.Default()))
	assert.Equal(t, filters.ActiveFlags{}, rep.Active)
	assert.Nil(t, rep.SavedAt)

	assert.Contains(t, mustRun(t, "show"), "not saved yet")
}

func TestToggleTag_Persists(t *testing.T) {
	useConfig(t, config.StorageSQLite)

	out := mustRun(t, "toggle-tag", "인기")
	assert.Contains(t, out, "* tags     인기")

	rep := showJSON(t)
	assert.Equal(t, []string{"인기"}, rep.Selection.Tags)
	assert.NotNil(t, rep.SavedAt)

	mustRun(t, "toggle-tag", "인기")
	assert.Empty(t, showJSON(t).Selection.Tags)
}

func TestSetAndClear(t *testing.T) {
	useConfig(t, config.StorageSQLite)

	mustRun(t, "set", "region", "제주도", "대전")
	mustRun(t, "set", "carType", "SUV")
	mustRun(t, "set-price", "20-30만원")

	rep := showJSON(t)
	assert.Equal(t, []string{"제주도", "대전"}, rep.Selection.Region)
	assert.Equal(t, filters.ActiveFlags{CarType: true, Region: true, Price: true}, rep.Active)

	mustRun(t, "clear", "region")
	rep = showJSON(t)
	assert.Empty(t, rep.Selection.Region)
	assert.Equal(t, []string{"SUV"}, rep.Selection.CarType)
	assert.Equal(t, "20-30만원", rep.Selection.Price)

	mustRun(t, "set-price")
	assert.Empty(t, showJSON(t).Selection.Price)

	mustRun(t, "reset")
	assert.True(t, showJSON(t).Selection.IsEmpty())
}

func TestShow_YAML(t *testing.T) {
	useConfig(t, config.StorageSQLite)
	mustRun(t, "set", "carType", "수입")

	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(mustRun(t, "show", "-o", "yaml")), &rep))
	assert.Equal(t, []string{"수입"}, rep.Selection.CarType)
	assert.True(t, rep.Active.CarType)
}

func TestPebbleBackend(t *testing.T) {
	useConfig(t, config.StoragePebble)

	mustRun(t, "toggle-tag", "특가")
	out := mustRun(t, "show")
	assert.Contains(t, out, "특가")
	assert.Contains(t, out, "saved ")
}

func TestRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		target  error
		message string
	}{
		{
			name:    "tag with suggestion",
			args:    []string{"toggle-tag", "인가"},
			target:  errUnknownTag,
			message: `did you mean "인기"?`,
		},
		{
			name:    "category with suggestion",
			args:    []string{"clear", "regon"},
			target:  filters.ErrUnknownCategory,
			message: `did you mean "region"?`,
		},
		{
			name:    "price with suggestion",
			args:    []string{"set-price", "10-20 만원"},
			target:  filters.ErrUnknownPrice,
			message: `did you mean "10-20만원"?`,
		},
		{
			name:    "tags are not replaceable",
			args:    []string{"set", "tags", "인기"},
			target:  errNotReplaceable,
			message: "Failed to parse filter category 'tags'",
		},
		{
			name:    "value outside whitelist",
			args:    []string{"set", "region", "서울"},
			target:  errUnknownOption,
			message: "Failed to parse filter value '서울'",
		},
		{
			name:    "output format",
			args:    []string{"show", "-o", "jsno"},
			target:  errUnknownFormat,
			message: `did you mean "json"?`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfig(t, config.StorageSQLite)

			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
			assert.Contains(t, err.Error(), tt.message)

			assert.True(t, showJSON(t).Selection.IsEmpty(), "rejected commands change nothing")
		})
	}
}

func TestSetup_UnknownStorage(t *testing.T) {
	useConfig(t, "redis")

	_, err := run(t, "show")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUnknownStorage))
	assert.Contains(t, err.Error(), "Failed to open filter storage")
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"regoin", "region"},
		{"price", "price"},
		{"tag", "tags"},
		{"completely-unrelated", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, suggest(tt.input, filters.CategoryNames()))
		})
	}
}

// useMockStorage replaces the backend with in-memory mocks and returns every
// store a command opened.
func useMockStorage(t *testing.T) *[]*state.Mock {
	t.Helper()
	opened := &[]*state.Mock{}
	orig := openStorage
	openStorage = func(*config.Config) (state.Interface, error) {
		kv := state.NewMock()
		*opened = append(*opened, kv)
		return kv, nil
	}
	t.Cleanup(func() { openStorage = orig })
	return opened
}

func TestHelpAndCompletion_SkipStorage(t *testing.T) {
	useConfig(t, config.StorageSQLite)
	opened := useMockStorage(t)

	mustRun(t, "help")
	mustRun(t, "help", "show")
	mustRun(t, "completion", "bash")

	assert.Empty(t, *opened)
}

func TestCommands_CloseStorage(t *testing.T) {
	useConfig(t, config.StorageSQLite)
	opened := useMockStorage(t)

	mustRun(t, "show")
	mustRun(t, "toggle-tag", "특가")

	require.Len(t, *opened, 2)
	for _, kv := range *opened {
		assert.True(t, kv.IsClosed())
	}
}

func TestReset_Purge(t *testing.T) {
	useConfig(t, config.StorageSQLite)

	mustRun(t, "toggle-tag", "인기")
	require.NotNil(t, showJSON(t).SavedAt)

	out := mustRun(t, "reset", "--purge")
	assert.Contains(t, out, "not saved yet")

	rep := showJSON(t)
	assert.True(t, rep.Selection.IsEmpty())
	assert.Nil(t, rep.SavedAt, "record is deleted, not overwritten")
}
