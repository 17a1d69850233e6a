package testutil

import (
	"context"
	"net/http"
	"sync"
)

// StubServer stands in for the runner's metrics listener. ListenAndServe blocks
// until Shutdown is called unless ListenErr is set.
type StubServer struct {
	AddrVal     string
	ListenErr   error
	ShutdownErr error

	mu            sync.Mutex
	listenCalls   int
	shutdownCalls int
	once          sync.Once
	done          chan struct{}
}

func (s *StubServer) init() {
	s.once.Do(func() { s.done = make(chan struct{}) })
}

func (s *StubServer) ListenAndServe() error {
	s.init()
	s.mu.Lock()
	s.listenCalls++
	s.mu.Unlock()
	if s.ListenErr != nil {
		return s.ListenErr
	}
	<-s.done
	return http.ErrServerClosed
}

func (s *StubServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.init()
	s.mu.Lock()
	s.shutdownCalls++
	if s.shutdownCalls == 1 {
		close(s.done)
	}
	s.mu.Unlock()
	return s.ShutdownErr
}

func (s *StubServer) Addr() string {
	return s.AddrVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownCalls
}
