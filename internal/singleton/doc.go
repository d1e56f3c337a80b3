// Package singleton enforces single-instance execution of the clipboard
// daemon.
//
// Two mechanisms cooperate. The process scan counts running processes that
// share the daemon's executable name; it produces a readable error before
// any file is touched, but two instances launched at nearly the same moment
// can both pass it.
// The advisory file lock acquired through Guard closes that window: flock
// acquisition is atomic, so at most one process ever holds it. The guard
// also maintains a PID file next to the lock so the CLI can signal the
// daemon without consulting the process table.
package singleton
