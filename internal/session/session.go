package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/connect4/internal/games/connect4/engine"
)

// ID uniquely identifies a player's session (e.g., an SSH connection).
type ID string

// NewID returns a fresh random session ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Result is one finished game.
type Result struct {
	Variant  string
	Status   engine.Status
	Moves    int
	Finished time.Time
}

// Tally counts finished games within one session.
// It lives in memory only and goes away with the session.
type Tally struct {
	Player1Wins int
	Player2Wins int
	Ties        int
}

// Total returns the number of finished games.
func (t Tally) Total() int {
	return t.Player1Wins + t.Player2Wins + t.Ties
}

// Session is one connected terminal.
type Session struct {
	id      ID
	user    string
	remote  string
	started time.Time

	mu      sync.Mutex
	tally   Tally
	results []Result

	done     chan struct{}
	doneOnce sync.Once
}

// New creates a session for the given user and remote address.
func New(user, remote string) *Session {
	return &Session{
		id:      NewID(),
		user:    user,
		remote:  remote,
		started: time.Now(),
		done:    make(chan struct{}),
	}
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// User returns the user name the session was opened with.
func (s *Session) User() string {
	return s.user
}

// Remote returns the remote address of the session.
func (s *Session) Remote() string {
	return s.remote
}

// Duration returns how long the session has been open.
func (s *Session) Duration() time.Duration {
	return time.Since(s.started)
}

// Record adds a finished game to the session. Non-terminal statuses are
// ignored and reported as false.
func (s *Session) Record(variant string, st engine.Status, moves int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case st.Phase == engine.Tied:
		s.tally.Ties++
	case st.Phase == engine.Won && st.Winner == engine.Player1:
		s.tally.Player1Wins++
	case st.Phase == engine.Won && st.Winner == engine.Player2:
		s.tally.Player2Wins++
	default:
		return false
	}

	s.results = append(s.results, Result{
		Variant:  variant,
		Status:   st,
		Moves:    moves,
		Finished: time.Now(),
	})
	return true
}

// Results returns the finished games, most recent first.
func (s *Session) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Result, len(s.results))
	for i, r := range s.results {
		out[len(s.results)-1-i] = r
	}
	return out
}

// Tally returns the finished-game counts so far.
func (s *Session) Tally() Tally {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tally
}

// Done returns a channel that closes when the session ends.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close marks the session as done.
// Safe to call multiple times.
func (s *Session) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}

// Registry tracks active sessions.
// Safe for concurrent access.
type Registry struct {
	mu       sync.RWMutex
	sessions map[ID]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[ID]*Session),
	}
}

// Open creates and registers a new session.
func (r *Registry) Open(user, remote string) *Session {
	s := New(user, remote)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.id] = s
	return s
}

// Close closes a session and removes it from the registry.
// It returns the removed session, or false if the ID was unknown.
func (r *Registry) Close(id ID) (*Session, bool) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
	return s, ok
}

// Get retrieves a session by ID.
func (r *Registry) Get(id ID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of registered sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CloseAll closes every session, e.g. on server shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[ID]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
