// Package flock provides cross-platform file locking utilities.
//
// The tracker's atomic rename protocol already protects whole-file state, but
// the append-only observation log needs writer exclusion across concurrent
// CLI invocations. This package provides the exclusive, non-blocking file
// locks used for that, on both Unix and Windows systems.
//
// Usage:
//
//	file, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
//	if err := flock.Exclusive(file.Fd()); err != nil {
//	    // Lock not acquired - file is in use
//	}
//	defer flock.Unlock(file.Fd())
package flock
