package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func record(notifications ...Notification) *UserRecord {
	return &UserRecord{UserID: "u1", Notifications: notifications}
}

func n(id string, ts int64, isNew bool) Notification {
	return Notification{ID: id, Timestamp: ts, IsNew: isNew, Key: KeyNewMessage}
}

func TestNotificationKey_Valid(t *testing.T) {
	for _, k := range []NotificationKey{KeyRegistration, KeyNewMessage, KeyNewPost, KeyNewLogin} {
		assert.True(t, k.Valid(), string(k))
	}
	assert.False(t, NotificationKey("new_follower").Valid())
	assert.False(t, NotificationKey("").Valid())
}

func TestUserRecord_CountNew(t *testing.T) {
	r := record(n("a", 1, true), n("b", 2, false), n("c", 3, true))
	assert.Equal(t, 2, r.CountNew())
	assert.Equal(t, 0, record().CountNew())
}

func TestUserRecord_IndexOf(t *testing.T) {
	r := record(n("a", 1, true), n("b", 2, true))
	assert.Equal(t, 1, r.IndexOf("b"))
	assert.Equal(t, -1, r.IndexOf("missing"))
}

func TestUserRecord_Page_OrdersByTimestampDescending(t *testing.T) {
	r := record(n("old", 10, true), n("newest", 30, true), n("mid", 20, true))

	page := r.Page(0, 10)

	assert.Equal(t, []string{"newest", "mid", "old"}, ids(page))
}

func TestUserRecord_Page_EqualTimestampsKeepInsertionOrder(t *testing.T) {
	r := record(n("first", 5, true), n("second", 5, true), n("third", 5, true))

	page := r.Page(0, 10)

	assert.Equal(t, []string{"first", "second", "third"}, ids(page))
}

func TestUserRecord_Page_SlicesSkipLimit(t *testing.T) {
	var all []Notification
	for i := 0; i < 7; i++ {
		all = append(all, n(fmt.Sprintf("n%d", i), int64(i), true))
	}
	r := record(all...)

	// Descending order is n6..n0; [2, 2+3) of that sequence.
	assert.Equal(t, []string{"n4", "n3", "n2"}, ids(r.Page(2, 3)))
}

func TestUserRecord_Page_BeyondLengthIsEmpty(t *testing.T) {
	r := record(n("a", 1, true))

	assert.Empty(t, r.Page(5, 10))
	assert.Empty(t, record().Page(0, 10))
}

func TestUserRecord_Page_LimitPastEndIsClamped(t *testing.T) {
	r := record(n("a", 2, true), n("b", 1, true))

	assert.Equal(t, []string{"a", "b"}, ids(r.Page(0, 100)))
	assert.Equal(t, []string{"b"}, ids(r.Page(1, 100)))
}

func TestUserRecord_Page_DoesNotMutateRecord(t *testing.T) {
	r := record(n("old", 1, true), n("new", 2, true))

	_ = r.Page(0, 10)

	assert.Equal(t, []string{"old", "new"}, ids(r.Notifications))
}

func ids(list []Notification) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = list[i].ID
	}
	return out
}
