package jsbind

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Pool manages a fixed-size set of pre-warmed contexts. Booting an engine is
// the expensive step; embedders that bind objects per request check contexts
// out and back in instead.
type Pool struct {
	contexts chan *Context
	size     int
	mu       sync.Mutex
}

// NewPool creates size contexts up front, each with the given config.
func NewPool(size int, cfg Config) (*Pool, error) {
	if size <= 0 {
		size = 1
	}
	p := &Pool{
		contexts: make(chan *Context, size),
		size:     size,
	}

	for i := 0; i < size; i++ {
		cx, err := NewContext(cfg)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("creating pool context %d: %w", i, err)
		}
		p.contexts <- cx
	}

	Logger().Debug("context pool ready",
		zap.Int("size", size),
		zap.String("backend", backendName))
	return p, nil
}

// Get acquires a context. Blocks until one is available.
func (p *Pool) Get() (*Context, error) {
	cx, ok := <-p.contexts
	if !ok {
		return nil, fmt.Errorf("context pool is closed")
	}
	return cx, nil
}

// Put returns a context to the pool, closing it if the pool is already full.
func (p *Pool) Put(cx *Context) {
	select {
	case p.contexts <- cx:
	default:
		cx.Close()
	}
}

// Close disposes every pooled context.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for {
		select {
		case cx := <-p.contexts:
			cx.Close()
		default:
			return
		}
	}
}
