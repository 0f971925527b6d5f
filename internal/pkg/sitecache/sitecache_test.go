package sitecache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetOrLoad(t *testing.T) {
	c := New(time.Minute)

	calls := 0
	load := func() (interface{}, error) {
		calls++
		return "value", nil
	}

	v, err := c.GetOrLoad("k", load)
	assert.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, calls)

	// Second read is served from cache.
	v, err = c.GetOrLoad("k", load)
	assert.NoError(t, err)
	assert.Equal(t, "value", v)
	assert.Equal(t, 1, calls)
}

func TestGetOrLoadErrorNotCached(t *testing.T) {
	c := New(time.Minute)

	calls := 0
	failing := func() (interface{}, error) {
		calls++
		return nil, errors.New("load failed")
	}

	_, err := c.GetOrLoad("k", failing)
	assert.Error(t, err)

	// The failed load left nothing behind, so the next read retries.
	_, err = c.GetOrLoad("k", failing)
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestFlush(t *testing.T) {
	c := New(time.Minute)

	calls := 0
	load := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	_, _ = c.GetOrLoad("k", load)
	c.Flush()
	v, err := c.GetOrLoad("k", load)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
}
