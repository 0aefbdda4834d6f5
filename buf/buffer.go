// Package buf provides the growable byte buffer backing node content
// while it is being assembled, and output staging for serializers.
package buf

import "errors"

// AllocationScheme selects how a buffer's storage grows.
type AllocationScheme int

const (
	// AllocDoubleIt at least doubles the capacity each time it needs to grow.
	AllocDoubleIt AllocationScheme = iota + 1
	// AllocExact grows only to the minimal size needed.
	AllocExact
	// AllocImmutable refuses all mutation.
	AllocImmutable
	// AllocIO doubles like AllocDoubleIt and additionally maintains
	// headroom so AddHead does not have to shift existing content.
	AllocIO
	// AllocHybrid grows exactly up to HybridThreshold, doubling thereafter.
	AllocHybrid
	// AllocBounded never grows past the configured maximum size. It is
	// the mechanism by which a parser enforces memory ceilings against
	// maliciously amplifying input.
	AllocBounded
)

// HybridThreshold is the size at which AllocHybrid switches from
// exact-fit to doubling growth.
const HybridThreshold = 4096

const ioHeadroom = 64

var (
	// ErrCapacityExceeded is returned by an AllocBounded buffer for any
	// operation that would grow it past its ceiling.
	ErrCapacityExceeded = errors.New("buffer capacity exceeded")

	// ErrImmutableBuffer is returned for any mutation of an
	// AllocImmutable buffer.
	ErrImmutableBuffer = errors.New("buffer is immutable")
)

// Buffer is a growable byte buffer. The logical content is
// store[start : start+used]; start is nonzero only under AllocIO, where
// headroom is kept for AddHead.
type Buffer struct {
	store   []byte
	start   int
	used    int
	scheme  AllocationScheme
	maxSize int
}

// New creates a buffer. The default scheme is AllocExact.
func New(options ...Option) *Buffer {
	b := &Buffer{
		scheme: AllocExact,
	}
	var content []byte
	for _, option := range options {
		switch option.Ident() {
		case identAllocationScheme{}:
			b.scheme = option.Value().(AllocationScheme)
		case identInitialCapacity{}:
			if v := option.Value().(int); v > 0 {
				b.store = make([]byte, v)
			}
		case identMaxSize{}:
			b.maxSize = option.Value().(int)
		case identContent{}:
			content = option.Value().([]byte)
		}
	}
	if content != nil {
		b.store = append([]byte(nil), content...)
		b.used = len(content)
	}
	if b.scheme == AllocIO {
		b.reserveHeadroom()
	}
	return b
}

func (b *Buffer) Scheme() AllocationScheme {
	return b.scheme
}

// Bytes returns the buffer's content. The slice aliases the underlying
// storage; use Detach to take ownership.
func (b *Buffer) Bytes() []byte {
	return b.store[b.start : b.start+b.used]
}

func (b *Buffer) String() string {
	return string(b.Bytes())
}

func (b *Buffer) Len() int {
	return b.used
}

// Cap returns the usable capacity (allocated storage minus headroom).
func (b *Buffer) Cap() int {
	return len(b.store) - b.start
}

// Add appends data at the tail, growing per the active scheme.
func (b *Buffer) Add(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := b.ensure(b.used + len(data)); err != nil {
		return err
	}
	copy(b.store[b.start+b.used:], data)
	b.used += len(data)
	return nil
}

// AddString appends string data at the tail.
func (b *Buffer) AddString(data string) error {
	if len(data) == 0 {
		return nil
	}
	if err := b.ensure(b.used + len(data)); err != nil {
		return err
	}
	copy(b.store[b.start+b.used:], data)
	b.used += len(data)
	return nil
}

// Write implements io.Writer.
func (b *Buffer) Write(data []byte) (int, error) {
	if err := b.Add(data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// AddHead inserts data at the head. Under AllocIO existing headroom is
// consumed first, making repeated prepends cheap; otherwise the content
// is shifted.
func (b *Buffer) AddHead(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if b.start >= len(data) {
		b.start -= len(data)
		copy(b.store[b.start:], data)
		b.used += len(data)
		return nil
	}

	total := b.used + len(data)
	if err := b.checkCeiling(total); err != nil {
		return err
	}
	newCap := b.growSize(total)
	head := 0
	if b.scheme == AllocIO {
		head = ioHeadroom
	}
	newStore := make([]byte, head+newCap)
	n := copy(newStore[head:], data)
	copy(newStore[head+n:], b.Bytes())
	b.store = newStore
	b.start = head
	b.used = total
	return nil
}

// Grow makes room for at least n more bytes.
func (b *Buffer) Grow(n int) error {
	if n <= 0 {
		return nil
	}
	return b.ensure(b.used + n)
}

// Shrink discards up to n bytes from the front of the content. It
// reports the number of bytes actually removed.
func (b *Buffer) Shrink(n int) (int, error) {
	if b.scheme == AllocImmutable {
		return 0, ErrImmutableBuffer
	}
	if n <= 0 {
		return 0, nil
	}
	if n >= b.used {
		n = b.used
		if err := b.Empty(); err != nil {
			return 0, err
		}
		return n, nil
	}
	b.start += n
	b.used -= n
	return n, nil
}

// Empty discards the content but keeps the storage.
func (b *Buffer) Empty() error {
	if b.scheme == AllocImmutable {
		return ErrImmutableBuffer
	}
	b.used = 0
	if b.scheme != AllocIO {
		b.start = 0
	}
	return nil
}

// Detach transfers ownership of the content to the caller and resets
// the buffer to empty, ready for reuse. It is the copy-free path for
// handing assembled content to a node.
func (b *Buffer) Detach() []byte {
	out := b.Bytes()
	b.store = nil
	b.start = 0
	b.used = 0
	return out
}

func (b *Buffer) checkCeiling(total int) error {
	switch b.scheme {
	case AllocImmutable:
		return ErrImmutableBuffer
	case AllocBounded:
		if b.maxSize > 0 && total > b.maxSize {
			return ErrCapacityExceeded
		}
	}
	return nil
}

// ensure guarantees usable capacity for total bytes of content.
func (b *Buffer) ensure(total int) error {
	if err := b.checkCeiling(total); err != nil {
		return err
	}
	if total <= b.Cap() {
		return nil
	}

	newCap := b.growSize(total)
	head := 0
	if b.scheme == AllocIO {
		head = ioHeadroom
	}
	newStore := make([]byte, head+newCap)
	copy(newStore[head:], b.Bytes())
	b.store = newStore
	b.start = head
	return nil
}

// growSize computes the new usable capacity for the active scheme.
func (b *Buffer) growSize(total int) int {
	switch b.scheme {
	case AllocExact:
		return total
	case AllocHybrid:
		if total <= HybridThreshold {
			return total
		}
	case AllocBounded:
		size := doubled(b.Cap(), total)
		if b.maxSize > 0 && size > b.maxSize {
			size = b.maxSize
		}
		return size
	}
	return doubled(b.Cap(), total)
}

// doubled at least doubles from the current capacity until the request fits.
func doubled(current, total int) int {
	size := current
	if size < 64 {
		size = 64
	}
	for size < total {
		size *= 2
	}
	return size
}

// reserveHeadroom reallocates so AddHead has room in front of the
// content. Only used by the AllocIO scheme.
func (b *Buffer) reserveHeadroom() {
	if b.start > 0 {
		return
	}
	newStore := make([]byte, ioHeadroom+len(b.store))
	copy(newStore[ioHeadroom:], b.Bytes())
	b.store = newStore
	b.start = ioHeadroom
}
