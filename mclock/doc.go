// Package mclock provides a monotonic clock calibrated once from a platform
// high-resolution counter, and the Timestamp value type it produces.
//
// A Timestamp is a point in monotonic time measured in nanoseconds from an origin
// fixed when the clock is initialized. Timestamps are totally ordered, support
// duration arithmetic, and carry a distinguished Zero value meaning "never set".
// They have no relation to wall-clock time and are meaningless outside the process.
//
// The process-wide clock is established with Initialize and read with Now:
//
//	if err := mclock.Initialize(); err != nil {
//		logger.Fatal("no monotonic clock", "error", err)
//	}
//	start := mclock.Now()
//	...
//	elapsed := mclock.Now().Diff(start)
//
// Code that needs deterministic time, such as timer tests, should construct
// Timestamp values directly with FromSeconds or FromDuration instead of reading
// the clock.
package mclock
