// Package runlock prevents overlapping digest runs. A cron schedule plus one
// slow site is all it takes to stack two runs and send the digest twice.
package runlock

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFile = "jobdigest.lock"

// Acquire takes a non-blocking exclusive lock under dir. locked is false
// when another process holds it. The release func is safe to call exactly
// once; the lock also dies with the process.
func Acquire(dir string) (release func(), locked bool, err error) {
	l := flock.New(filepath.Join(dir, lockFile))

	got, err := l.TryLock()
	if err != nil {
		return nil, false, fmt.Errorf("acquire run lock: %w", err)
	}
	if !got {
		return nil, false, nil
	}
	return func() { _ = l.Unlock() }, true, nil
}

// Path returns where the lock file lives for a given data dir, for log
// messages.
func Path(dir string) string {
	return filepath.Join(dir, lockFile)
}
