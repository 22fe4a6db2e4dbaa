// Package notify shows song changes as freedesktop desktop notifications.
package notify

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification is one desktop notification.
type Notification struct {
	Title      string
	Body       string // may hold the basic markup notification servers accept
	Icon       string // icon name or image path
	Timeout    int32  // ms; -1 leaves it to the server, 0 never expires
	ReplacesID uint32 // id of a notification to update in place
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its id. A disabled notifier returns 0.
	Notify(n Notification) (uint32, error)
	// Close withdraws the notification with the given id.
	Close(id uint32) error
}

// nopNotifier is used when there is no notification server to talk to.
type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }

func (nopNotifier) Close(uint32) error { return nil }
