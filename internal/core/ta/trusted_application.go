package ta

import (
	"fmt"
	"sync"

	"desta/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pion/logging"
)

// SessionID names an open session of the trusted application.
type SessionID uint32

// TrustedApplication hosts cipher sessions and runs the lifecycle hooks. At most
// one command runs against a session at any time; distinct sessions run
// independently.
type TrustedApplication struct {
	uuid        uuid.UUID
	name        string
	maxSessions int
	dispatcher  *CommandDispatcher
	log         logging.LeveledLogger

	mu       sync.Mutex
	running  bool
	nextID   SessionID
	sessions map[SessionID]*sessionSlot
}

type sessionSlot struct {
	mu      sync.Mutex
	closed  bool
	session *CipherSession
}

// ProvideTrustedApplication builds the trusted application from configuration
// and runs its create hook.
func ProvideTrustedApplication(
	config *domain.Config,
	dispatcher *CommandDispatcher,
	loggerFactory logging.LoggerFactory,
) (*TrustedApplication, error) {
	id, err := config.TrustedApp.ParseUUID()
	if err != nil {
		return nil, err
	}
	t := &TrustedApplication{
		uuid:        id,
		name:        config.TrustedApp.Name,
		maxSessions: config.TrustedApp.MaxSessions,
		dispatcher:  dispatcher,
		log:         NewLogger(loggerFactory, "ta"),
		sessions:    make(map[SessionID]*sessionSlot),
	}
	if err := t.Create(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TrustedApplication) UUID() uuid.UUID {
	return t.uuid
}

func (t *TrustedApplication) Name() string {
	return t.name
}

func (t *TrustedApplication) MaxSessions() int {
	return t.maxSessions
}

// Create marks the application as loaded. Calling it on a running application is a no-op.
func (t *TrustedApplication) Create() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.log.Trace("TA create")
	t.running = true
	return nil
}

// OpenSession allocates an empty cipher session.
func (t *TrustedApplication) OpenSession(_ *domain.Parameters) (SessionID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.log.Trace("TA open session")
	if !t.running {
		return 0, fmt.Errorf("%w: trusted application %s is not running", domain.ErrBadState, t.uuid)
	}
	if t.maxSessions > 0 && len(t.sessions) >= t.maxSessions {
		return 0, fmt.Errorf("%w: limit is %d", domain.ErrOutOfSessions, t.maxSessions)
	}

	id := t.nextID + 1
	for id == 0 || t.sessions[id] != nil {
		id++
	}
	t.nextID = id
	t.sessions[id] = &sessionSlot{session: NewCipherSession()}
	return id, nil
}

// CloseSession waits for a running command to finish and releases the session's handles.
func (t *TrustedApplication) CloseSession(id SessionID) error {
	t.mu.Lock()
	slot, ok := t.sessions[id]
	delete(t.sessions, id)
	t.mu.Unlock()
	t.log.Trace("TA close session")
	if !ok {
		return fmt.Errorf("%w: session %d", domain.ErrItemNotFound, id)
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	slot.closed = true
	slot.session.Close()
	return nil
}

// InvokeCommand runs a single command against the named session.
func (t *TrustedApplication) InvokeCommand(id SessionID, commandID uint32, params *domain.Parameters) error {
	t.mu.Lock()
	slot, ok := t.sessions[id]
	t.mu.Unlock()
	t.log.Trace("TA invoke command")
	if !ok {
		return fmt.Errorf("%w: session %d", domain.ErrItemNotFound, id)
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.closed {
		return fmt.Errorf("%w: session %d", domain.ErrItemNotFound, id)
	}
	return t.dispatcher.Invoke(slot.session, commandID, params)
}

// SessionCount returns the number of open sessions.
func (t *TrustedApplication) SessionCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// Destroy closes every open session and stops accepting new ones.
func (t *TrustedApplication) Destroy() {
	t.mu.Lock()
	slots := t.sessions
	t.sessions = make(map[SessionID]*sessionSlot)
	t.running = false
	t.mu.Unlock()
	t.log.Trace("TA destroy")

	for _, slot := range slots {
		slot.mu.Lock()
		slot.closed = true
		slot.session.Close()
		slot.mu.Unlock()
	}
}
