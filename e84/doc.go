// Package e84 provides the SEMI E84 handoff timeout budgets and a watchdog that
// supervises them.
//
// E84 names eleven timing budgets for the parallel I/O handshake between a load port
// and an AMHS vehicle:
//
//   - TA1–TA3: timeouts monitored by the active side (the AMHS vehicle).
//   - TP1–TP6: timeouts monitored by the passive side (the equipment load port).
//   - TD0–TD1: minimum delays before a signal may be asserted again.
//
// TimeoutValues holds the configured duration of each budget. Values can be built
// with functional options or loaded from YAML:
//
//	timeouts:
//	  TP3: 90s
//	  TP4: 90
//	  TD0: 0.2
//
// A Watchdog owns one timer.Timer per budget. The handshake engine arms a budget when
// the corresponding signal transition starts, disarms it when the transition
// completes, and polls the watchdog once per evaluation cycle. An expired TA/TP budget
// raises an Alarm exactly once per arm; TD budgets never alarm and are queried with
// Expired instead.
//
// The handshake state machine and the pin signal encoding are outside this package.
package e84
