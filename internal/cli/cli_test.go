package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"wordy/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDictionary = "forty\nsorta\nParis\ncrane\nforty\nab\nworth\n"

func newTestOptions(t *testing.T) *RootOptions {
	t.Helper()
	dir := t.TempDir()

	dict := filepath.Join(dir, "dictionary.csv")
	require.NoError(t, os.WriteFile(dict, []byte(testDictionary), 0o644))

	return &RootOptions{
		Logger: zap.NewNop(),
		Config: &config.Config{
			Timezone: "UTC",
			Database: config.DatabaseConfig{
				Type: "sqlite",
				Path: filepath.Join(dir, "wordy.sqlite3"),
			},
			Dictionary: config.DictionaryConfig{Path: dict},
		},
	}
}

func run(t *testing.T, opts *RootOptions, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := newRootCommand(opts)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "seed", "word", "solve"}, names)
}

func TestMigrate(t *testing.T) {
	opts := newTestOptions(t)

	output, err := run(t, opts, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "✓ Migrations applied (sqlite)\n", output)

	// Second run is a no-op
	_, err = run(t, opts, "migrate")
	require.NoError(t, err)
}

func TestSeedAndLookup(t *testing.T) {
	opts := newTestOptions(t)

	_, err := run(t, opts, "migrate")
	require.NoError(t, err)

	output, err := run(t, opts, "seed", "--epoch", "2025-03-01", "--shuffle-seed", "7")
	require.NoError(t, err)
	assert.Equal(t,
		"✓ Seeded 4 words from 2025-03-01 to 2025-03-04\n"+
			"  read 7 rows, dropped 3 (1 proper nouns, 1 duplicates)\n",
		output,
	)

	t.Run("refuses to reseed", func(t *testing.T) {
		_, err := run(t, opts, "seed", "--epoch", "2025-03-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refusing to reseed")
	})

	t.Run("word for a seeded date", func(t *testing.T) {
		output, err := run(t, opts, "word", "--date", "2025-03-01")
		require.NoError(t, err)
		assert.Regexp(t, `^2025-03-01 #1 (forty|sorta|crane|worth)\n$`, output)
	})

	t.Run("word outside the schedule", func(t *testing.T) {
		_, err := run(t, opts, "word", "--date", "2025-02-28")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no word scheduled for 2025-02-28")
	})

	t.Run("word needs a date", func(t *testing.T) {
		_, err := run(t, opts, "word")
		assert.Error(t, err)
	})

	t.Run("solve", func(t *testing.T) {
		output, err := run(t, opts, "solve", "--pattern", "_or__", "--found", "t", "--miss", "ch")
		require.NoError(t, err)
		assert.Equal(t, "forty\nsorta\n", output)
	})

	t.Run("solve without clues lists everything", func(t *testing.T) {
		output, err := run(t, opts, "solve")
		require.NoError(t, err)
		assert.Equal(t, "crane\nforty\nsorta\nworth\n", output)
	})

	t.Run("solve rejects a short pattern", func(t *testing.T) {
		_, err := run(t, opts, "solve", "--pattern", "_or")
		assert.Error(t, err)
	})
}

func TestSeed_DefaultsToConfiguredEpoch(t *testing.T) {
	opts := newTestOptions(t)
	opts.Config.Dictionary.Epoch = "2024-12-30"

	_, err := run(t, opts, "migrate")
	require.NoError(t, err)

	output, err := run(t, opts, "seed")
	require.NoError(t, err)
	assert.Contains(t, output, "from 2024-12-30 to 2025-01-02")
}

func TestSeed_MissingDictionary(t *testing.T) {
	opts := newTestOptions(t)

	_, err := run(t, opts, "migrate")
	require.NoError(t, err)

	_, err = run(t, opts, "seed", "--dictionary", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open dictionary")
}
