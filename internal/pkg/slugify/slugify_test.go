package slugify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "intro-to-machine-learning", Make("Intro to Machine Learning"))
	assert.Equal(t, "indabax-2025", Make("IndabaX 2025!"))
}

func TestMakeUnique(t *testing.T) {
	t.Run("free slug is returned unchanged", func(t *testing.T) {
		slug, err := MakeUnique(context.Background(), "AI Workshop", func(ctx context.Context, candidate string) (bool, error) {
			return false, nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "ai-workshop", slug)
	})

	t.Run("collisions get incrementing suffixes", func(t *testing.T) {
		taken := map[string]bool{
			"ai-workshop":   true,
			"ai-workshop-1": true,
		}
		slug, err := MakeUnique(context.Background(), "AI Workshop", func(ctx context.Context, candidate string) (bool, error) {
			return taken[candidate], nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "ai-workshop-2", slug)
	})

	t.Run("lookup errors propagate", func(t *testing.T) {
		boom := errors.New("db down")
		_, err := MakeUnique(context.Background(), "AI Workshop", func(ctx context.Context, candidate string) (bool, error) {
			return false, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}
