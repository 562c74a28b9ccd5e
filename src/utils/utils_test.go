package utils

import (
	"errors"
	"testing"

	"git.radiohub.fm/hub/hub/src/oops"
	"github.com/stretchr/testify/assert"
)

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 3, OrDefault(0, 3))
	assert.Equal(t, 5, OrDefault(5, 3))
	assert.Equal(t, "fallback", OrDefault("", "fallback"))
	assert.Equal(t, "value", OrDefault("value", "fallback"))
}

func TestMust(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		f := func() error { return nil }
		Must(f())
	})
	t.Run("non-nil error", func(t *testing.T) {
		f := func() error { return errors.New("oh no") }
		assert.Panics(t, func() {
			Must(f())
		})
	})
}

func TestMust1(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		f := func() (int, error) { return 4, nil }
		a := Must1(f())
		assert.Equal(t, 4, a)
	})
	t.Run("non-nil error", func(t *testing.T) {
		f := func() (int, error) { return 0, errors.New("oh no") }
		assert.Panics(t, func() {
			Must1(f())
		})
	})
}

var sentinelError = errors.New("sentinel")

func TestRecoverPanicAsError(t *testing.T) {
	t.Run("no panic, no error", func(t *testing.T) {
		f := func() (err error) {
			defer RecoverPanicAsError(&err)
			return nil
		}
		err := f()
		assert.Nil(t, err)
	})
	t.Run("no panic, error", func(t *testing.T) {
		f := func() (err error) {
			defer RecoverPanicAsError(&err)
			return sentinelError
		}
		err := f()
		assert.True(t, errors.Is(err, sentinelError))
	})
	t.Run("panic", func(t *testing.T) {
		f := func() (err error) {
			defer RecoverPanicAsError(&err)
			panic("blerp")
		}
		err := f()
		var asOops *oops.Error
		assert.ErrorContains(t, err, "blerp")
		assert.True(t, errors.As(err, &asOops))
	})
}
