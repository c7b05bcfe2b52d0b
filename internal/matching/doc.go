// Package matching scores profiles against each other, rates a single
// profile and aggregates skill statistics over a population.
//
// Every function here is pure: inputs are passed in full, nothing is cached
// and nothing is shared between calls, so callers may invoke them
// concurrently without locking.
package matching
