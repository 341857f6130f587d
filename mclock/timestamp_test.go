package mclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	require := require.New(t)

	t.Run("Zero", func(t *testing.T) {
		var ts Timestamp
		require.True(ts.IsZero())
		require.True(Zero.IsZero())
		require.False(FromSeconds(0.001).IsZero())
		require.Equal("mono(zero)", Zero.String())
	})

	t.Run("Conversions", func(t *testing.T) {
		require.Equal(Timestamp(1_500_000_000), FromSeconds(1.5))
		require.Equal(Timestamp(2_100_000_000), FromSeconds(2.1))
		require.Equal(FromSeconds(2), FromDuration(2*time.Second))
		require.InDelta(1.25, FromSeconds(1.25).Seconds(), 1e-12)
		require.Equal(3*time.Second, FromSeconds(3).Duration())
		require.Equal("mono+1.5s", FromSeconds(1.5).String())
		require.Equal("mono-1s", FromSeconds(-1).String())
	})

	t.Run("Arithmetic", func(t *testing.T) {
		ts := FromSeconds(10)
		require.Equal(FromSeconds(11), ts.Add(time.Second))
		require.Equal(FromSeconds(9), ts.Sub(time.Second))
		require.Equal(FromSeconds(9), ts.Add(-time.Second))
		require.Equal(4*time.Second, ts.Diff(FromSeconds(6)))
		require.Equal(-4*time.Second, FromSeconds(6).Diff(ts))
		require.Equal(10*time.Second, ts.Diff(Zero))
	})

	t.Run("Ordering", func(t *testing.T) {
		a, b := FromSeconds(1), FromSeconds(2)
		require.True(a.Before(b))
		require.False(b.Before(a))
		require.True(b.After(a))
		require.True(a.Equal(FromSeconds(1)))
		require.Equal(-1, a.Compare(b))
		require.Equal(1, b.Compare(a))
		require.Equal(0, a.Compare(a))
	})
}
