package cores

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhysical(t *testing.T) {
	n := Physical()
	require.True(t, n == Unknown || n > 0, "got %d", n)
	if n > 0 {
		require.LessOrEqual(t, n, runtime.NumCPU())
	}
}

func TestPhysicalFrom(t *testing.T) {
	require.Equal(t, Unknown, physicalFrom(0))
	require.Equal(t, Unknown, physicalFrom(-3))
	require.Equal(t, 8, physicalFrom(8))
}

func TestLimit(t *testing.T) {
	require.Equal(t, 4, Limit(4))
	require.Equal(t, runtime.GOMAXPROCS(0), Limit(Unknown))
	require.Equal(t, runtime.GOMAXPROCS(0), Limit(0))
}
