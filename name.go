package surfacetexture

import (
	"fmt"
	"os"
	"sync/atomic"
)

var nameCounter atomic.Uint64

// newDiagnosticName returns a process-unique name for a new Consumer,
// derived from the process id and a monotonically increasing counter.
func newDiagnosticName() string {
	n := nameCounter.Add(1)
	return fmt.Sprintf("unnamed-%d-%d", os.Getpid(), n)
}
