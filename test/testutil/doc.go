// Package testutil provides shared helpers for the process-level and stress tests.
//
// The helpers here build the worker binaries from cmd/ and drive them as real
// child processes over operating system pipes, so tests observe the same
// buffering, exit codes and stream separation a parent process would.
//
// For in-process tests of an Engine, use the github.com/arloliu/stdioworker/testing
// package instead.
package testutil
