// Package radarpri estimates and extracts pulse-repetition intervals
// (PRIs) from sequences of pulse time-of-arrival (TOA) observations
// produced by passive radar receivers.
//
// Given a sorted TOA sequence possibly containing interleaved emitters,
// noise, and missing pulses, the five estimators in this package:
//
//   - estimate candidate PRI values using histogram-based statistics
//     (CDIF, SDIF, PRITransform)
//   - extract the subset of pulses belonging to a given PRI
//     (PulseSearcher)
//   - isolate correlated pulse chains without a known PRI
//     (PulseCorrelation)
//
// # Algorithms
//
//   - CDIF builds a cumulative rank-stepped difference histogram with a
//     subharmonic self-check.
//   - SDIF rebuilds a per-rank difference histogram against a bin-center
//     dependent exponential threshold.
//   - PRITransform accumulates complex phasors over a bounded candidate
//     range, exploiting coherent summation at the true PRI.
//   - PulseCorrelation searches a pair-indexed, merged histogram for
//     chains of pulses sharing a common spacing, without knowing that
//     spacing in advance.
//   - PulseSearcher extracts the chain of pulses matching a known PRI,
//     tolerating a bounded miss rate by re-syncing on every accepted
//     pulse.
//
// Every estimator is pure with respect to its instance: parameters are
// read-only after construction, Run allocates only private working
// buffers, and multiple Run calls on one instance may proceed
// concurrently without synchronization. There is no cancellation
// mechanism; callers wanting timeouts must wrap Run externally.
//
// Each Run returns either a scalar PRI or an ascending (extracted,
// remaining) index partition, distinguishing "no result" from "success"
// by a boolean flag rather than an error — there is no failure mode in
// this package beyond "no candidate met threshold".
package radarpri
