package settings

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memMeta struct {
	data map[int64]map[string]string
	err  error
}

func (m *memMeta) UserMeta(ctx context.Context, userID int64, prefix string) (map[string]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := map[string]string{}
	for k, v := range m.data[userID] {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out, nil
}

func (m *memMeta) SetUserMeta(ctx context.Context, userID int64, values map[string]string) error {
	if m.err != nil {
		return m.err
	}
	if m.data == nil {
		m.data = map[int64]map[string]string{}
	}
	if m.data[userID] == nil {
		m.data[userID] = map[string]string{}
	}
	for k, v := range values {
		m.data[userID][k] = v
	}
	return nil
}

func TestGet_Defaults(t *testing.T) {
	got, err := NewService(&memMeta{}).Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, Defaults, got)
}

func TestSaveThenGet(t *testing.T) {
	store := &memMeta{}
	svc := NewService(store)

	saved, err := svc.Save(context.Background(), 5, model.SaveSettingsRequest{
		Theme:                  "dark",
		Language:               "ar",
		Timezone:               "Asia/Riyadh",
		NotificationsEmail:     true,
		NotificationsFrequency: "daily",
		QuickAccessVisible:     []string{"sales", "hr", "unknown"},
	})
	require.NoError(t, err)

	assert.Equal(t, "dark", saved.Theme)
	assert.Equal(t, "d/m/Y", saved.DateFormat)
	assert.True(t, saved.NotificationsEmail)
	assert.False(t, saved.NotificationsPush)
	assert.Equal(t, []string{"orders", "reports", "inventory", "customers"}, saved.QuickAccessHidden)

	assert.Equal(t, "1", store.data[5]["dofs_notifications_email"])
	assert.Equal(t, "0", store.data[5]["dofs_notifications_push"])
	assert.Equal(t, "dark", store.data[5]["dofs_theme_preference"])

	got, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestNotificationPreferences(t *testing.T) {
	store := &memMeta{data: map[int64]map[string]string{
		2: {"dofs_notifications_email": "0", "dofs_notifications_frequency": "weekly"},
	}}
	svc := NewService(store)

	fresh, err := svc.NotificationPreferences(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, model.NotificationPreferences{EmailEnabled: true, PushEnabled: true, Frequency: "instant", SendNow: true}, fresh)

	digest, err := svc.NotificationPreferences(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, model.NotificationPreferences{EmailEnabled: false, PushEnabled: true, Frequency: "weekly", SendNow: false}, digest)
}

func TestShouldSendNow(t *testing.T) {
	assert.True(t, ShouldSendNow(""))
	assert.True(t, ShouldSendNow("instant"))
	assert.False(t, ShouldSendNow("daily"))
	assert.False(t, ShouldSendNow("weekly"))
}

func TestStoreErrors(t *testing.T) {
	svc := NewService(&memMeta{err: errors.New("db down")})

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorContains(t, err, "db down")
	_, err = svc.Save(context.Background(), 1, model.SaveSettingsRequest{})
	assert.ErrorContains(t, err, "db down")
}

func TestFromMeta_CorruptHiddenList(t *testing.T) {
	got := fromMeta(map[string]string{"dofs_quick_access_hidden": "not json"})
	assert.Equal(t, []string{}, got.QuickAccessHidden)
}
