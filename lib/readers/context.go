// Package readers provides io.Reader wrappers used while hashing
// inputs.
package readers

import (
	"context"
	"io"
	"sync/atomic"
)

// NewContextReader creates a reader, that returns any errors that ctx gives
func NewContextReader(ctx context.Context, r io.Reader) *ContextReader {
	return &ContextReader{
		ctx: ctx,
		r:   r,
	}
}

// ContextReader stops reading once its context is done and counts
// the bytes it has passed on.
type ContextReader struct {
	ctx context.Context
	r   io.Reader
	n   atomic.Int64
}

// Read bytes as per io.Reader interface
func (cr *ContextReader) Read(p []byte) (n int, err error) {
	err = cr.ctx.Err()
	if err != nil {
		return 0, err
	}
	n, err = cr.r.Read(p)
	cr.n.Add(int64(n))
	return n, err
}

// BytesRead returns the number of bytes read so far
func (cr *ContextReader) BytesRead() int64 {
	return cr.n.Load()
}
