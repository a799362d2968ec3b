package notify

import (
	"testing"
	"time"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestShowThenCurrent(t *testing.T) {
	n := NewNotifier()
	n.Show(models.NoteInfo, "Placing your order...")

	got := n.Current()
	assert.Equal(t, models.NoteInfo, got.Kind)
	assert.Equal(t, "Placing your order...", got.Text)
}

func TestAutoExpiry(t *testing.T) {
	n := &Notifier{ttl: 40 * time.Millisecond}
	n.Show(models.NoteSuccess, "Order placed successfully.")

	time.Sleep(100 * time.Millisecond)
	assert.True(t, n.Current().Empty())
}

func TestReplacementRestartsExpiry(t *testing.T) {
	n := &Notifier{ttl: 80 * time.Millisecond}

	n.Show(models.NoteInfo, "first")
	time.Sleep(50 * time.Millisecond)
	n.Show(models.NoteError, "second")

	// The first message's timer would have fired by now; it must not
	// blank the replacement.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "second", n.Current().Text)

	// The replacement still expires on its own schedule.
	time.Sleep(80 * time.Millisecond)
	assert.True(t, n.Current().Empty())
}

func TestClearCancelsPendingExpiry(t *testing.T) {
	n := &Notifier{ttl: 40 * time.Millisecond}

	n.Show(models.NoteInfo, "first")
	n.Clear()
	assert.True(t, n.Current().Empty())

	// A message shown after Clear must not be wiped by the cancelled timer.
	n.Show(models.NoteError, "second")
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, "second", n.Current().Text)
}
