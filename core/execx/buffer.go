// core/execx/buffer.go
package execx

import (
	"bytes"
	"fmt"
	"sync"
)

// boundedBuffer keeps the first max bytes written and counts the rest.
// Excess is reported with an explicit marker, never dropped silently.
type boundedBuffer struct {
	mu      sync.Mutex
	max     int
	buf     bytes.Buffer
	dropped int64
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := len(p)
	if room := b.max - b.buf.Len(); room > 0 {
		if len(p) > room {
			p = p[:room]
		}
		b.buf.Write(p)
		b.dropped += int64(n - len(p))
	} else {
		b.dropped += int64(n)
	}
	return n, nil
}

func (b *boundedBuffer) truncated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped > 0
}

func (b *boundedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dropped > 0 {
		return b.buf.String() + fmt.Sprintf("\n...[truncated %d bytes]", b.dropped)
	}
	return b.buf.String()
}
