// Package testutil provides fixtures for testing modcontent components.
//
// Key components:
//   - TestEnvironment: a staging root on an in-memory or real filesystem
//   - TestMod: a mod folder below the staging root, filled file by file
//   - IsolateXDG: keeps user config and log files out of tests
//
// Prefer EnvMemoryOnly. Use EnvIsolated when the code under test walks
// the real filesystem (the engine, the command line).
package testutil
