package e84

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeoutValues(t *testing.T) {
	require := require.New(t)

	t.Run("Defaults", func(t *testing.T) {
		v := DefaultTimeoutValues()
		require.Equal(DefaultTA1, v.Get(TA1))
		require.Equal(60*time.Second, v.Get(TP3))
		require.Equal(100*time.Millisecond, v.Get(TD0))
		require.Zero(v.Get(TimeoutID(99)))
	})

	t.Run("Options", func(t *testing.T) {
		v, err := NewTimeoutValues(
			WithTimeout(TP3, 90*time.Second),
			WithTimeouts(map[TimeoutID]time.Duration{TA1: time.Second, TD1: 0}),
		)
		require.NoError(err)
		require.Equal(90*time.Second, v.Get(TP3))
		require.Equal(time.Second, v.Get(TA1))
		require.Zero(v.Get(TD1))
		require.Equal(DefaultTP4, v.Get(TP4))
	})

	t.Run("Out of range", func(t *testing.T) {
		_, err := NewTimeoutValues(WithTimeout(TP1, -time.Second))
		require.ErrorIs(err, ErrTimeoutOutOfRange)

		_, err = NewTimeoutValues(WithTimeout(TP1, MaxTimeout+time.Nanosecond))
		require.ErrorIs(err, ErrTimeoutOutOfRange)

		_, err = NewTimeoutValues(WithTimeout(TimeoutID(11), time.Second))
		require.ErrorIs(err, ErrUnknownTimeout)

		v := DefaultTimeoutValues()
		require.NoError(v.Set(TA3, MaxTimeout))
		require.Equal(MaxTimeout, v.Get(TA3))
	})
}

func TestParseTimeoutValues(t *testing.T) {
	require := require.New(t)

	t.Run("Mixed value formats", func(t *testing.T) {
		doc := []byte(`
timeouts:
  TP3: 90s
  tp4: 120
  TD0: 0.25
  TA2: 1500ms
`)
		v, err := ParseTimeoutValues(doc)
		require.NoError(err)
		require.Equal(90*time.Second, v.Get(TP3))
		require.Equal(120*time.Second, v.Get(TP4))
		require.Equal(250*time.Millisecond, v.Get(TD0))
		require.Equal(1500*time.Millisecond, v.Get(TA2))
		require.Equal(DefaultTP1, v.Get(TP1))
	})

	t.Run("Empty document keeps defaults", func(t *testing.T) {
		v, err := ParseTimeoutValues([]byte("timeouts: {}\n"))
		require.NoError(err)
		require.Equal(DefaultTimeoutValues(), v)
	})

	t.Run("Unknown budget", func(t *testing.T) {
		_, err := ParseTimeoutValues([]byte("timeouts:\n  TX1: 2s\n"))
		require.ErrorIs(err, ErrUnknownTimeout)
	})

	t.Run("Invalid value", func(t *testing.T) {
		_, err := ParseTimeoutValues([]byte("timeouts:\n  TP1: soon\n"))
		require.ErrorIs(err, ErrInvalidTimeoutValue)

		_, err = ParseTimeoutValues([]byte("timeouts:\n  TP1: [1, 2]\n"))
		require.ErrorIs(err, ErrInvalidTimeoutValue)
	})

	t.Run("Out of range value", func(t *testing.T) {
		_, err := ParseTimeoutValues([]byte("timeouts:\n  TP3: 1000\n"))
		require.ErrorIs(err, ErrTimeoutOutOfRange)

		_, err = ParseTimeoutValues([]byte("timeouts:\n  TP3: -1\n"))
		require.ErrorIs(err, ErrTimeoutOutOfRange)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := ParseTimeoutValues([]byte("timeouts: [\n"))
		require.Error(err)
	})
}

func TestLoadTimeoutValues(t *testing.T) {
	require := require.New(t)

	v, err := NewTimeoutValues(WithTimeout(TP2, 3*time.Second), WithTimeout(TD0, 200*time.Millisecond))
	require.NoError(err)

	data, err := v.MarshalYAML()
	require.NoError(err)
	require.Contains(string(data), "TP2: 3s")

	path := filepath.Join(t.TempDir(), "e84.yaml")
	require.NoError(os.WriteFile(path, data, 0o600))

	loaded, err := LoadTimeoutValues(path)
	require.NoError(err)
	require.Equal(v, loaded)

	_, err = LoadTimeoutValues(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(err, os.ErrNotExist)
}
