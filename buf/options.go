package buf

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identAllocationScheme struct{}
type identInitialCapacity struct{}
type identMaxSize struct{}
type identContent struct{}

// WithAllocationScheme selects the growth policy for the buffer.
func WithAllocationScheme(v AllocationScheme) Option {
	return option.New(identAllocationScheme{}, v)
}

// WithInitialCapacity preallocates the underlying storage.
func WithInitialCapacity(v int) Option {
	return option.New(identInitialCapacity{}, v)
}

// WithMaxSize sets the hard capacity ceiling for AllocBounded buffers.
func WithMaxSize(v int) Option {
	return option.New(identMaxSize{}, v)
}

// WithContent seeds the buffer with initial content. This is the only
// way to put content into an AllocImmutable buffer.
func WithContent(v []byte) Option {
	return option.New(identContent{}, v)
}
