package buf

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferAdd(t *testing.T) {
	b := New()
	if !assert.NoError(t, b.Add([]byte("Hello ")), "Add succeeds") {
		return
	}
	if !assert.NoError(t, b.AddString("World!"), "AddString succeeds") {
		return
	}
	if !assert.Equal(t, "Hello World!", b.String(), "content matches") {
		return
	}
	if !assert.Equal(t, 12, b.Len(), "length matches") {
		return
	}
}

func TestBufferWrite(t *testing.T) {
	b := New()
	var w io.Writer = b
	n, err := w.Write([]byte("payload"))
	if !assert.NoError(t, err, "Write succeeds") {
		return
	}
	if !assert.Equal(t, 7, n, "full write reported") {
		return
	}
	if !assert.Equal(t, "payload", b.String(), "content matches") {
		return
	}
}

func TestBufferAddHead(t *testing.T) {
	b := New(WithContent([]byte("World!")))
	if !assert.NoError(t, b.AddHead([]byte("Hello ")), "AddHead succeeds") {
		return
	}
	if !assert.Equal(t, "Hello World!", b.String(), "content matches") {
		return
	}
}

func TestBufferExactScheme(t *testing.T) {
	b := New() // AllocExact is the default
	if !assert.Equal(t, AllocExact, b.Scheme(), "default scheme") {
		return
	}
	if !assert.NoError(t, b.Add(bytes.Repeat([]byte("x"), 100)), "Add succeeds") {
		return
	}
	// exact-fit: capacity tracks the content
	if !assert.Equal(t, 100, b.Cap(), "capacity is exactly the content size") {
		return
	}
	if !assert.NoError(t, b.Add([]byte("y")), "Add succeeds") {
		return
	}
	if !assert.Equal(t, 101, b.Cap(), "capacity grew by exactly one") {
		return
	}
}

func TestBufferDoubleItScheme(t *testing.T) {
	b := New(WithAllocationScheme(AllocDoubleIt))
	if !assert.NoError(t, b.Add(bytes.Repeat([]byte("x"), 65)), "Add succeeds") {
		return
	}
	// growth at least doubles, starting from the 64-byte floor
	if !assert.Equal(t, 128, b.Cap(), "capacity doubled past the request") {
		return
	}
	if !assert.NoError(t, b.Add(bytes.Repeat([]byte("y"), 63)), "Add succeeds") {
		return
	}
	if !assert.Equal(t, 128, b.Cap(), "no reallocation while it fits") {
		return
	}
}

func TestBufferHybridScheme(t *testing.T) {
	b := New(WithAllocationScheme(AllocHybrid))
	if !assert.NoError(t, b.Add(bytes.Repeat([]byte("x"), 100)), "Add succeeds") {
		return
	}
	if !assert.Equal(t, 100, b.Cap(), "exact-fit below the threshold") {
		return
	}

	if !assert.NoError(t, b.Add(bytes.Repeat([]byte("y"), HybridThreshold)), "Add succeeds") {
		return
	}
	if !assert.Equal(t, b.Len(), HybridThreshold+100, "content intact") {
		return
	}
	if !assert.Greater(t, b.Cap(), b.Len(), "doubling above the threshold leaves slack") {
		return
	}
}

func TestBufferImmutable(t *testing.T) {
	b := New(
		WithAllocationScheme(AllocImmutable),
		WithContent([]byte("frozen")),
	)
	if !assert.Equal(t, "frozen", b.String(), "seeded content readable") {
		return
	}
	if !assert.Equal(t, ErrImmutableBuffer, b.Add([]byte("x")), "Add fails") {
		return
	}
	if !assert.Equal(t, ErrImmutableBuffer, b.AddHead([]byte("x")), "AddHead fails") {
		return
	}
	if !assert.Equal(t, ErrImmutableBuffer, b.Empty(), "Empty fails") {
		return
	}
	if _, err := b.Shrink(3); !assert.Equal(t, ErrImmutableBuffer, err, "Shrink fails") {
		return
	}
	if !assert.Equal(t, "frozen", b.String(), "content untouched") {
		return
	}
}

func TestBufferBounded(t *testing.T) {
	b := New(
		WithAllocationScheme(AllocBounded),
		WithMaxSize(16),
	)

	// any sequence of adds summing to the ceiling is accepted
	for i := 0; i < 4; i++ {
		if !assert.NoError(t, b.Add([]byte("abcd")), "Add %d succeeds", i) {
			return
		}
	}
	if !assert.Equal(t, 16, b.Len(), "filled to the ceiling") {
		return
	}

	// and the very next byte is rejected
	if !assert.Equal(t, ErrCapacityExceeded, b.Add([]byte("x")), "overflow rejected") {
		return
	}
	if !assert.Equal(t, ErrCapacityExceeded, b.AddHead([]byte("x")), "head overflow rejected") {
		return
	}
	if !assert.Equal(t, 16, b.Len(), "content unchanged after rejection") {
		return
	}

	// a single oversized add is rejected up front
	b2 := New(
		WithAllocationScheme(AllocBounded),
		WithMaxSize(16),
	)
	if !assert.Equal(t, ErrCapacityExceeded, b2.Add(bytes.Repeat([]byte("x"), 17)), "oversized add rejected") {
		return
	}
	if !assert.Zero(t, b2.Len(), "nothing written") {
		return
	}
}

func TestBufferIOHeadroom(t *testing.T) {
	b := New(WithAllocationScheme(AllocIO))
	if !assert.NoError(t, b.Add([]byte("World!")), "Add succeeds") {
		return
	}

	// the headroom absorbs prepends without shifting content
	if !assert.NoError(t, b.AddHead([]byte("Hello ")), "AddHead succeeds") {
		return
	}
	if !assert.Equal(t, "Hello World!", b.String(), "content matches") {
		return
	}

	// exceeding the headroom falls back to reallocating, still correct
	big := bytes.Repeat([]byte("h"), 100)
	if !assert.NoError(t, b.AddHead(big), "large AddHead succeeds") {
		return
	}
	if !assert.Equal(t, string(big)+"Hello World!", b.String(), "content matches after realloc") {
		return
	}
}

func TestBufferEmpty(t *testing.T) {
	b := New(WithContent([]byte("payload")))
	if !assert.NoError(t, b.Empty(), "Empty succeeds") {
		return
	}
	if !assert.Zero(t, b.Len(), "length reset") {
		return
	}
	if !assert.Equal(t, "", b.String(), "no content") {
		return
	}
	// storage is kept for reuse
	if !assert.NotZero(t, b.Cap(), "capacity retained") {
		return
	}
	if !assert.NoError(t, b.Add([]byte("again")), "reuse succeeds") {
		return
	}
	if !assert.Equal(t, "again", b.String(), "content matches") {
		return
	}
}

func TestBufferShrink(t *testing.T) {
	b := New(WithContent([]byte("hello world")))
	n, err := b.Shrink(6)
	if !assert.NoError(t, err, "Shrink succeeds") {
		return
	}
	if !assert.Equal(t, 6, n, "six bytes removed") {
		return
	}
	if !assert.Equal(t, "world", b.String(), "remainder kept") {
		return
	}

	// shrinking past the end clamps to the content length
	n, err = b.Shrink(100)
	if !assert.NoError(t, err, "over-shrink succeeds") {
		return
	}
	if !assert.Equal(t, 5, n, "only the remainder removed") {
		return
	}
	if !assert.Zero(t, b.Len(), "buffer empty") {
		return
	}

	if !assert.NoError(t, b.Add([]byte("next")), "reuse succeeds") {
		return
	}
	if !assert.Equal(t, "next", b.String(), "content matches") {
		return
	}
}

func TestBufferDetach(t *testing.T) {
	b := New(WithContent([]byte("payload")))
	out := b.Detach()
	if !assert.Equal(t, []byte("payload"), out, "detached content") {
		return
	}
	if !assert.Zero(t, b.Len(), "buffer empty after detach") {
		return
	}

	// the buffer no longer aliases the detached slice
	if !assert.NoError(t, b.Add([]byte("fresh")), "reuse succeeds") {
		return
	}
	if !assert.Equal(t, []byte("payload"), out, "detached slice untouched") {
		return
	}
	if !assert.Equal(t, "fresh", b.String(), "buffer holds new content") {
		return
	}
}

func TestBufferInitialCapacity(t *testing.T) {
	b := New(WithInitialCapacity(256))
	if !assert.Equal(t, 256, b.Cap(), "preallocated") {
		return
	}
	if !assert.Zero(t, b.Len(), "no content") {
		return
	}
	if !assert.NoError(t, b.Add([]byte("x")), "Add succeeds") {
		return
	}
	if !assert.Equal(t, 256, b.Cap(), "no reallocation") {
		return
	}
}

func TestBufferGrow(t *testing.T) {
	b := New()
	if !assert.NoError(t, b.Grow(128), "Grow succeeds") {
		return
	}
	if !assert.GreaterOrEqual(t, b.Cap(), 128, "room reserved") {
		return
	}
	if !assert.Zero(t, b.Len(), "content unchanged") {
		return
	}
}

func ExampleBuffer() {
	b := New(WithAllocationScheme(AllocDoubleIt))
	b.AddString("Hello")
	b.AddString(", World!")
	fmt.Println(b.String())
	// Output:
	// Hello, World!
}
