package notify

import (
	"sync"
	"time"

	"github.com/Voltify-Social/voltify-panel-backend/models"
)

// DefaultTTL is how long a notification stays live before auto-clearing.
const DefaultTTL = 4500 * time.Millisecond

// Notifier holds at most one live notification. Showing a new one replaces
// the current message and restarts the expiry; the replaced timer is
// sequence-checked so it can never blank a newer message.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current models.Notification
	timer   *time.Timer
	seq     uint64
}

func NewNotifier() *Notifier {
	return &Notifier{ttl: DefaultTTL}
}

// Show replaces any pending notification and restarts the expiry timer.
func (n *Notifier) Show(kind, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.current = models.Notification{Kind: kind, Text: text}

	ttl := n.ttl
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	n.timer = time.AfterFunc(ttl, func() { n.expire(seq) })
}

// Clear drops the current notification and cancels the pending expiry.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = models.Notification{}
}

// Current returns the live notification, zero when none.
func (n *Notifier) Current() models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// expire clears only if no newer Show or Clear happened since the timer
// was armed.
func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq != seq {
		return
	}
	n.current = models.Notification{}
	n.timer = nil
}
