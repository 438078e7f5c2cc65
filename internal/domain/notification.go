package domain

import "sort"

// NotificationKey is the closed set of notification categories.
// Unknown values are rejected at the validation boundary.
type NotificationKey string

const (
	KeyRegistration NotificationKey = "registration"
	KeyNewMessage   NotificationKey = "new_message"
	KeyNewPost      NotificationKey = "new_post"
	KeyNewLogin     NotificationKey = "new_login"
)

// Valid reports whether k is one of the known categories.
func (k NotificationKey) Valid() bool {
	switch k {
	case KeyRegistration, KeyNewMessage, KeyNewPost, KeyNewLogin:
		return true
	}
	return false
}

// Notification is a single event record surfaced to a user.
// IsNew is the only field that may change after creation, and only from true to false.
type Notification struct {
	ID        string          `json:"id" dynamodbav:"id"`
	Timestamp int64           `json:"timestamp" dynamodbav:"timestamp"`
	IsNew     bool            `json:"is_new" dynamodbav:"is_new"`
	Key       NotificationKey `json:"key" dynamodbav:"key"`
	TargetID  *string         `json:"target_id" dynamodbav:"target_id"`
	Data      map[string]any  `json:"data" dynamodbav:"data"`
}

// UserRecord is the per-user document: the whole notification inbox for one user.
// The list is append-only; entries keep their insertion order.
type UserRecord struct {
	UserID        string         `json:"user_id" dynamodbav:"user_id"`
	Notifications []Notification `json:"notifications" dynamodbav:"notifications"`
}

// CountNew returns the number of unread notifications in the record.
func (r *UserRecord) CountNew() int {
	n := 0
	for i := range r.Notifications {
		if r.Notifications[i].IsNew {
			n++
		}
	}
	return n
}

// IndexOf returns the position of the notification with the given id
// within the record's list, or -1 when absent.
func (r *UserRecord) IndexOf(notificationID string) int {
	for i := range r.Notifications {
		if r.Notifications[i].ID == notificationID {
			return i
		}
	}
	return -1
}

// Page returns the notifications ordered by timestamp descending, sliced
// [skip, skip+limit). Equal timestamps keep their insertion order. Slicing
// past the end of the list yields an empty page, never an error.
func (r *UserRecord) Page(skip, limit int) []Notification {
	sorted := make([]Notification, len(r.Notifications))
	copy(sorted, r.Notifications)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})

	if skip >= len(sorted) || limit <= 0 {
		return []Notification{}
	}
	end := skip + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[skip:end]
}
