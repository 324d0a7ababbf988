package amqp

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangwaemm/The-Partners-App/internal/core/domain"
)

func TestNotificationMessage_JSON(t *testing.T) {
	date := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	now := date.Add(time.Second)
	n := domain.Notification{
		ID:         "n-1",
		Message:    "New loan issued to: Alice",
		Type:       domain.NotificationInfo,
		Date:       date,
		TargetRole: domain.RoleAdmin,
	}

	body, err := NewNotificationMessage(n, now).ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "n-1", decoded["id"])
	assert.Equal(t, "New loan issued to: Alice", decoded["message"])
	assert.Equal(t, "info", decoded["type"])
	assert.Equal(t, "ADMIN", decoded["targetRole"])
	assert.Equal(t, "2024-03-15T09:30:00Z", decoded["date"])
	assert.Equal(t, "2024-03-15T09:30:01Z", decoded["timestamp"])
}

func TestNotificationMessage_OmitsEmptyTarget(t *testing.T) {
	body, err := NewNotificationMessage(domain.Notification{ID: "n-2", Type: domain.NotificationSuccess}, time.Now()).ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(body), "targetRole")
}
