package session

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"resume-builder/internal/form"
	"resume-builder/pkg/logger"
	"resume-builder/pkg/metrics"
)

// Store keeps form sessions in memory, keyed by an opaque id. Sessions
// expire after ttl without access.
type Store struct {
	cache   *gocache.Cache
	ttl     time.Duration
	factory func() *form.Session
}

// NewStore creates a store; factory builds each new session.
func NewStore(ttl time.Duration, factory func() *form.Session) *Store {
	c := gocache.New(ttl, ttl/2)
	c.OnEvicted(func(id string, _ interface{}) {
		metrics.ActiveSessions.Dec()
		logger.Debug("form session expired", zap.String("session_id", id))
	})
	return &Store{cache: c, ttl: ttl, factory: factory}
}

// Get returns the session for id and extends its lifetime.
func (s *Store) Get(id string) (*form.Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	sess := v.(*form.Session)
	s.cache.Set(id, sess, gocache.DefaultExpiration)
	return sess, true
}

// Create starts a new session and returns its id.
func (s *Store) Create() (string, *form.Session) {
	id := uuid.NewString()
	sess := s.factory()
	s.cache.Set(id, sess, gocache.DefaultExpiration)
	metrics.ActiveSessions.Inc()
	return id, sess
}

// GetOrCreate returns the session for id, or a new one when id is unknown
// or expired. The returned id is the one to hand back to the client.
func (s *Store) GetOrCreate(id string) (string, *form.Session) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return id, sess
		}
	}
	return s.Create()
}

// Delete drops a session.
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Len reports the number of stored sessions, including expired ones not yet
// cleaned up.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
