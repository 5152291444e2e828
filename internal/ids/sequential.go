package ids

import (
	"fmt"
	"sync/atomic"
)

// Sequential is a deterministic Generator for tests: it returns
// "uuid-0", "uuid-1", "uuid-2", … in call order.
type Sequential struct {
	n atomic.Int64
}

// New returns the next sequential id.
func (s *Sequential) New() string {
	n := s.n.Add(1) - 1
	return fmt.Sprintf("uuid-%d", n)
}
