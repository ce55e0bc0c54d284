// Package cores reports the number of physical CPU cores.
//
// Histogramming saturates a core's load/store ports, so simultaneous
// multithreading siblings add contention rather than throughput. The counting
// reducer therefore sizes its worker set by physical cores, not by logical CPUs.
package cores

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Unknown is returned by Physical when the core count cannot be determined.
const Unknown = -1

// Physical returns the number of physical cores of the host, or Unknown.
//
// cpuid only reports core topology on x86; on other architectures the result
// is Unknown and callers fall back to their default sizing.
func Physical() int {
	return physicalFrom(cpuid.CPU.PhysicalCores)
}

func physicalFrom(n int) int {
	if n <= 0 {
		return Unknown
	}

	return n
}

// Limit returns the worker count to use for a query result n: n itself when
// positive, otherwise GOMAXPROCS.
func Limit(n int) int {
	if n > 0 {
		return n
	}

	return max(1, runtime.GOMAXPROCS(0))
}
