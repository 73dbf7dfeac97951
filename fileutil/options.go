package fileutil

// defaultBufferSize is the copy buffer size used when WithBufferSize
// is not given.
const defaultBufferSize = 8192

// Option configures a fileutil operation.
type Option func(*options)

type options struct {
	workers    int
	bufferSize int
}

func newOptions(opts ...Option) options {
	o := options{
		workers:    1,
		bufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	if o.bufferSize < 1 {
		o.bufferSize = defaultBufferSize
	}
	return o
}

// WithWorkers sets the number of concurrent file copies used by
// CopyDir and MoveDir. The default of one keeps copies serial.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBufferSize sets the copy buffer size in bytes.
func WithBufferSize(n int) Option {
	return func(o *options) {
		o.bufferSize = n
	}
}
