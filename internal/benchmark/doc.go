// Package benchmark holds the immutable definition of a benchmark: its
// name, the set of phases that make it up, and the scenario (sequences of
// steps) each phase drives sessions through.
//
// Everything in this package is built once, at load time, and never mutated
// again — runtime state (phase status, active session counts, arrival
// progress) lives in internal/phase instead.
package benchmark
