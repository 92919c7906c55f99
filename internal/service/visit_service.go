package service

import (
	"context"
	"log"
	"sync/atomic"

	"theinsight/internal/cache"
)

// defaultVisitCount is shown before the counter has ever answered
const defaultVisitCount = 1124

// VisitService wraps the visitor counter. Counter failures are tolerated:
// callers always get a displayable number, falling back to the last value
// the counter was known to hold.
type VisitService struct {
	visits    cache.VisitCache
	lastKnown atomic.Int64
}

// NewVisitService creates a visit service over the given cache
func NewVisitService(visits cache.VisitCache) *VisitService {
	s := &VisitService{visits: visits}
	s.lastKnown.Store(defaultVisitCount)
	return s
}

// Increment bumps the counter and returns the new total. On failure the
// last-known value is returned and the error is logged, not surfaced.
func (s *VisitService) Increment(ctx context.Context) int64 {
	n, err := s.visits.Increment(ctx)
	if err != nil {
		log.Printf("visit counter increment failed: %v", err)
		return s.lastKnown.Load()
	}
	s.lastKnown.Store(n)
	return n
}

// Current returns the counter without incrementing it
func (s *VisitService) Current(ctx context.Context) int64 {
	n, err := s.visits.Current(ctx)
	if err != nil {
		log.Printf("visit counter read failed: %v", err)
		return s.lastKnown.Load()
	}
	if n > 0 {
		s.lastKnown.Store(n)
		return n
	}
	return s.lastKnown.Load()
}
