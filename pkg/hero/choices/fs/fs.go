package fs

import (
	"context"
	"errors"
	"os"

	"github.com/tendant/simple-hero/pkg/hero"
)

// Source lists the entries of a directory as choices
type Source struct {
	dir string
}

// Config options for the directory source
type Config struct {
	Dir string // Directory whose entries are the choices
}

// New creates a new directory choice source. The directory is not required
// to exist until Choices is called.
func New(config Config) (hero.ChoiceSource, error) {
	if config.Dir == "" {
		return nil, errors.New("directory is required")
	}
	return &Source{dir: config.Dir}, nil
}

// Choices reads the directory and returns one choice per entry, with the
// entry name as both value and label. Entries are returned in the order the
// filesystem yields them.
func (s *Source) Choices(ctx context.Context) ([]hero.Choice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := os.Open(s.dir)
	if err != nil {
		return nil, &hero.ChoiceSourceError{Source: "fs", Location: s.dir, Err: err}
	}
	defer dir.Close()

	// File.ReadDir keeps directory order, os.ReadDir would sort by name
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, &hero.ChoiceSourceError{Source: "fs", Location: s.dir, Err: err}
	}

	choices := make([]hero.Choice, 0, len(entries))
	for _, entry := range entries {
		choices = append(choices, hero.Choice{Value: entry.Name(), Label: entry.Name()})
	}
	return choices, nil
}
