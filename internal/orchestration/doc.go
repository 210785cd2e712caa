// Package orchestration runs the benchmark modes in sequence and
// assembles their reports into a session.
package orchestration
