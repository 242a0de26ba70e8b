package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-hero/pkg/hero"
	"github.com/tendant/simple-hero/pkg/hero/choices/fs"
)

func TestNew_RequiresDir(t *testing.T) {
	source, err := fs.New(fs.Config{})
	assert.Error(t, err)
	assert.Nil(t, source)
}

func TestChoices(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"foo.png", "bar.png", "baz.svg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	source, err := fs.New(fs.Config{Dir: dir})
	require.NoError(t, err)

	choices, err := source.Choices(context.Background())
	require.NoError(t, err)

	values := make([]string, 0, len(choices))
	for _, c := range choices {
		assert.Equal(t, c.Value, c.Label)
		values = append(values, c.Value)
	}
	assert.ElementsMatch(t, []string{"foo.png", "bar.png", "baz.svg"}, values)
}

func TestChoices_ReadsOnEveryCall(t *testing.T) {
	dir := t.TempDir()
	source, err := fs.New(fs.Config{Dir: dir})
	require.NoError(t, err)

	choices, err := source.Choices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, choices)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.png"), []byte("x"), 0644))

	choices, err = source.Choices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []hero.Choice{{Value: "new.png", Label: "new.png"}}, choices)
}

func TestChoices_MissingDir(t *testing.T) {
	source, err := fs.New(fs.Config{Dir: filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)

	_, err = source.Choices(context.Background())
	require.Error(t, err)

	var sourceErr *hero.ChoiceSourceError
	require.True(t, errors.As(err, &sourceErr))
	assert.Equal(t, "fs", sourceErr.Source)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
