package memory

import (
	"context"
	"sync"

	"github.com/tendant/simple-hero/pkg/hero"
)

// Source is an in-memory choice source
type Source struct {
	mu     sync.RWMutex
	values []string
}

// New creates a source offering the given values in order
func New(values ...string) *Source {
	return &Source{values: append([]string(nil), values...)}
}

// Set replaces the offered values
func (s *Source) Set(values ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append([]string(nil), values...)
}

func (s *Source) Choices(ctx context.Context) ([]hero.Choice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	choices := make([]hero.Choice, 0, len(s.values))
	for _, v := range s.values {
		choices = append(choices, hero.Choice{Value: v, Label: v})
	}
	return choices, nil
}
