package http_server

import (
	"errors"
	"sync"
	"time"

	"github.com/danthegoodman1/hgcalntuple/ntuple"
	"github.com/danthegoodman1/hgcalntuple/utils"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type (
	// Session is one open ntuple. An Ntuple keeps a single entry buffer, so
	// requests on the same session are serialized.
	Session struct {
		ID        string
		Path      string
		Tree      string
		CreatedAt time.Time

		mu sync.Mutex
		n  *ntuple.Ntuple
	}

	Sessions struct {
		mu       sync.Mutex
		sessions map[string]*Session
	}
)

func NewSessions() *Sessions {
	return &Sessions{
		sessions: map[string]*Session{},
	}
}

// Add registers an open ntuple and returns its session.
func (ss *Sessions) Add(path, tree string, n *ntuple.Ntuple) *Session {
	s := &Session{
		ID:        utils.GenRandomShortID(),
		Path:      path,
		Tree:      tree,
		CreatedAt: time.Now(),
		n:         n,
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[s.ID] = s
	return s
}

func (ss *Sessions) Get(id string) (*Session, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	s, ok := ss.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove drops the session and closes its ntuple.
func (ss *Sessions) Remove(id string) error {
	ss.mu.Lock()
	s, ok := ss.sessions[id]
	delete(ss.sessions, id)
	ss.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	return s.close()
}

func (ss *Sessions) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.sessions)
}

func (ss *Sessions) CloseAll() {
	ss.mu.Lock()
	all := ss.sessions
	ss.sessions = map[string]*Session{}
	ss.mu.Unlock()
	for id, s := range all {
		if err := s.close(); err != nil {
			logger.Warn().Err(err).Str("sessionID", id).Msg("error closing session")
		}
	}
}

// With runs f holding the session lock.
func (s *Session) With(f func(n *ntuple.Ntuple) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.n)
}

func (s *Session) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n.Close()
}
