package render

import (
	"image/png"
	"sync"
)

// encoderBufferPool recycles PNG encoder scratch buffers so rendering a
// frame sequence does not allocate a fresh deflate state per frame.
type encoderBufferPool struct {
	pool sync.Pool
}

var _ png.EncoderBufferPool = (*encoderBufferPool)(nil)

// Get returns a pooled buffer, or nil and lets the encoder allocate one.
func (p *encoderBufferPool) Get() *png.EncoderBuffer {
	b, _ := p.pool.Get().(*png.EncoderBuffer)
	return b
}

// Put returns a buffer to the pool.
func (p *encoderBufferPool) Put(b *png.EncoderBuffer) {
	p.pool.Put(b)
}

var encoderBuffers = &encoderBufferPool{}
