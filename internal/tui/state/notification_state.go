package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single status-line message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the message shown in the status line.
// Only the latest notification is kept.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a new NotificationState with no notification.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Info replaces the current notification with an informational one.
func (s *NotificationState) Info(message string) {
	s.current = &Notification{Level: LevelInfo, Message: message}
}

// Error replaces the current notification with an error.
func (s *NotificationState) Error(message string) {
	s.current = &Notification{Level: LevelError, Message: message}
}

// Clear removes the current notification.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the notification to display, if any.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}
