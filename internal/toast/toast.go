// Package toast manages the dashboard's transient notifications: short
// messages that appear on fetch outcomes and user actions, then expire on
// their own. Each notification carries an independent deadline; expiring
// one never disturbs its neighbors' timers.
package toast

import "time"

// Kind classifies a notification for styling.
type Kind int

const (
	Info Kind = iota
	Success
	Warning
	Error
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 5 * time.Second

// DefaultMaxVisible bounds how many notifications render at once; older
// ones still expire on their own schedule while hidden.
const DefaultMaxVisible = 4

// Notification is one transient message.
type Notification struct {
	ID        int
	Message   string
	Kind      Kind
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Queue holds live notifications in insertion order. It is mutated only
// from the TUI goroutine; the TUI schedules one expiry timer per
// notification and calls Expire with the notification's id when it fires.
type Queue struct {
	notifications []Notification
	nextID        int
	duration      time.Duration
	maxVisible    int
}

// NewQueue creates a queue with the given display duration and visible
// cap. Zero values fall back to the defaults.
func NewQueue(duration time.Duration, maxVisible int) *Queue {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	return &Queue{duration: duration, maxVisible: maxVisible}
}

// Duration returns the configured display duration.
func (q *Queue) Duration() time.Duration {
	return q.duration
}

// SetDuration changes the display duration for notifications pushed from
// now on; deadlines already set are unaffected. Non-positive values are
// ignored.
func (q *Queue) SetDuration(d time.Duration) {
	if d > 0 {
		q.duration = d
	}
}

// SetMaxVisible changes the visible cap. Non-positive values are ignored.
func (q *Queue) SetMaxVisible(n int) {
	if n > 0 {
		q.maxVisible = n
	}
}

// Push enqueues a notification and returns it; the returned ID is the
// handle for Expire and Cancel. Identical messages are not deduplicated:
// enqueueing twice shows two notifications.
func (q *Queue) Push(message string, kind Kind, now time.Time) Notification {
	q.nextID++
	n := Notification{
		ID:        q.nextID,
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(q.duration),
	}
	q.notifications = append(q.notifications, n)
	return n
}

// Expire removes the notification with the given id if its deadline has
// passed. A timer firing for an already-cancelled id is a no-op.
func (q *Queue) Expire(id int, now time.Time) {
	for i, n := range q.notifications {
		if n.ID != id {
			continue
		}
		if now.Before(n.ExpiresAt) {
			return
		}
		q.notifications = append(q.notifications[:i], q.notifications[i+1:]...)
		return
	}
}

// Cancel removes a notification before its deadline. No caller in the
// dashboard needs this today, but the handle contract allows it.
func (q *Queue) Cancel(id int) {
	for i, n := range q.notifications {
		if n.ID == id {
			q.notifications = append(q.notifications[:i], q.notifications[i+1:]...)
			return
		}
	}
}

// Len returns the number of live notifications.
func (q *Queue) Len() int {
	return len(q.notifications)
}

// Visible returns up to maxVisible notifications in insertion order.
func (q *Queue) Visible() []Notification {
	n := len(q.notifications)
	if n > q.maxVisible {
		n = q.maxVisible
	}
	out := make([]Notification, n)
	copy(out, q.notifications[:n])
	return out
}
