package selection

import (
	"sync"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/notify"
	"github.com/google/uuid"
)

// Session owns one customer's draft and notification slot. Drafts are
// in-memory only; a restart discards them.
type Session struct {
	mu      sync.Mutex
	draft   models.Selection
	notices *notify.Notifier
}

var (
	regMu    sync.Mutex
	sessions = make(map[uuid.UUID]*Session)
)

// ForCustomer returns the customer's session, creating it on first use.
func ForCustomer(id uuid.UUID) *Session {
	regMu.Lock()
	defer regMu.Unlock()
	s, ok := sessions[id]
	if !ok {
		s = &Session{notices: notify.NewNotifier()}
		sessions[id] = s
	}
	return s
}

func (s *Session) Snapshot() models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *Session) PickCategory(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	PickCategory(&s.draft, key)
}

func (s *Session) PickService(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	PickService(&s.draft, id)
}

func (s *Session) SetLink(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	SetLink(&s.draft, text)
}

func (s *Session) SetQuantity(raw float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	SetQuantity(&s.draft, raw)
}

func (s *Session) SetAcknowledged(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	SetAcknowledged(&s.draft, v)
}

// Reset discards the draft entirely (navigation away / explicit clear).
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = models.Selection{}
}

// FinishSubmission clears the per-order fields after a successful
// placement while keeping category and service selected, so the customer
// can order against the same service again.
func (s *Session) FinishSubmission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Link = ""
	s.draft.Quantity = 0
	s.draft.Acknowledged = false
}

func (s *Session) Notices() *notify.Notifier {
	return s.notices
}
