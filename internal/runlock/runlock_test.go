package runlock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()

	release, locked, err := Acquire(dir)
	require.NoError(t, err)
	require.True(t, locked)

	// a second acquire in the same process is refused while held
	_, locked2, err := Acquire(dir)
	require.NoError(t, err)
	assert.False(t, locked2)

	release()

	release3, locked3, err := Acquire(dir)
	require.NoError(t, err)
	assert.True(t, locked3, "lock is free again after release")
	release3()
}
