package timer

import (
	"testing"
	"time"
)

var sinkTriggered bool

func BenchmarkIsTriggered(b *testing.B) {
	b.Run("Not triggered", func(b *testing.B) {
		tm := New(time.Hour, DefaultBehavior)
		tm.Start(at(0))
		now := at(1)
		b.ReportAllocs()
		b.ResetTimer()

		var result bool
		for i := 0; i < b.N; i++ {
			result = tm.IsTriggered(now)
		}
		sinkTriggered = result
	})

	b.Run("Auto reset every poll", func(b *testing.B) {
		tm := New(time.Microsecond, AutoReset)
		tm.Start(at(0))
		b.ReportAllocs()
		b.ResetTimer()

		var result bool
		for i := 0; i < b.N; i++ {
			result = tm.IsTriggered(at(float64(i+1) * 1e-3))
		}
		sinkTriggered = result
	})
}
