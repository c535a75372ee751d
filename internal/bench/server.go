package bench

import (
	"context"
	"sync"
)

type request struct {
	resp chan uint64
}

// server runs every call on one goroutine, fed over a channel.
type server struct {
	ctx       context.Context
	reqCh     chan request
	done      chan struct{}
	closeOnce sync.Once
	pool      sync.Pool
}

func newServer(ctx context.Context, fn call) *server {
	s := &server{
		ctx:   ctx,
		reqCh: make(chan request),
		done:  make(chan struct{}),
	}
	s.pool.New = func() any { return make(chan uint64, 1) }
	go s.serve(fn)
	return s
}

func (s *server) serve(fn call) {
	defer close(s.done)
	for {
		select {
		case req := <-s.reqCh:
			req.resp <- fn()
		case <-s.ctx.Done():
			return
		}
	}
}

// call sends one request and waits for the reply. After the context ends
// it returns the zero value without blocking.
func (s *server) call() uint64 {
	resp := s.pool.Get().(chan uint64)
	select {
	case s.reqCh <- request{resp: resp}:
	case <-s.ctx.Done():
		s.pool.Put(resp)
		return 0
	}
	v := <-resp
	s.pool.Put(resp)
	return v
}

// close waits for the serving goroutine to exit. The owning context must
// already be cancelled or about to be.
func (s *server) close() {
	s.closeOnce.Do(func() { <-s.done })
}
