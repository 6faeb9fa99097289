package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/onabhani/SimpleDashboard/pkg"
	"github.com/onabhani/SimpleDashboard/pkg/model"
)

const metaPrefix = "dofs_"

// user_meta keys
const (
	keyTheme        = metaPrefix + "theme_preference"
	keyLanguage     = metaPrefix + "language"
	keyDateFormat   = metaPrefix + "date_format"
	keyTimeFormat   = metaPrefix + "time_format"
	keyTimezone     = metaPrefix + "timezone"
	keyCurrency     = metaPrefix + "currency"
	keyNumberFormat = metaPrefix + "number_format"
	keyEmail        = metaPrefix + "notifications_email"
	keyPush         = metaPrefix + "notifications_push"
	keyFrequency    = metaPrefix + "notifications_frequency"
	keyHidden       = metaPrefix + "quick_access_hidden"
)

const FrequencyInstant = "instant"

// Defaults applied when a user has not saved a value.
var Defaults = model.UserSettings{
	Theme:                  "system",
	Language:               "en_US",
	DateFormat:             "d/m/Y",
	TimeFormat:             "g:i a",
	Timezone:               "UTC",
	Currency:               "SAR",
	NumberFormat:           "en",
	NotificationsEmail:     true,
	NotificationsPush:      true,
	NotificationsFrequency: FrequencyInstant,
	QuickAccessHidden:      []string{},
}

// QuickAccessIDs are the dashboard cards a user may hide.
var QuickAccessIDs = []string{"sales", "orders", "hr", "reports", "inventory", "customers"}

type MetaStore interface {
	UserMeta(ctx context.Context, userID int64, prefix string) (map[string]string, error)
	SetUserMeta(ctx context.Context, userID int64, values map[string]string) error
}

type Service struct {
	store MetaStore
}

func NewService(store MetaStore) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, userID int64) (model.UserSettings, error) {
	meta, err := s.store.UserMeta(ctx, userID, metaPrefix)
	if err != nil {
		return model.UserSettings{}, fmt.Errorf("load settings for user %d: %w", userID, err)
	}
	return fromMeta(meta), nil
}

// Save stores req and returns the resulting settings. Empty text values fall
// back to their defaults.
func (s *Service) Save(ctx context.Context, userID int64, req model.SaveSettingsRequest) (model.UserSettings, error) {
	hidden := make([]string, 0, len(QuickAccessIDs))
	for _, id := range QuickAccessIDs {
		if !slices.Contains(req.QuickAccessVisible, id) {
			hidden = append(hidden, id)
		}
	}
	hiddenJSON, err := json.Marshal(hidden)
	if err != nil {
		return model.UserSettings{}, fmt.Errorf("marshal hidden cards: %w", err)
	}

	values := map[string]string{
		keyTheme:        text(req.Theme, Defaults.Theme),
		keyLanguage:     text(req.Language, Defaults.Language),
		keyDateFormat:   text(req.DateFormat, Defaults.DateFormat),
		keyTimeFormat:   text(req.TimeFormat, Defaults.TimeFormat),
		keyTimezone:     text(req.Timezone, Defaults.Timezone),
		keyCurrency:     text(req.Currency, Defaults.Currency),
		keyNumberFormat: text(req.NumberFormat, Defaults.NumberFormat),
		keyEmail:        flag(req.NotificationsEmail),
		keyPush:         flag(req.NotificationsPush),
		keyFrequency:    text(req.NotificationsFrequency, Defaults.NotificationsFrequency),
		keyHidden:       string(hiddenJSON),
	}
	if err := s.store.SetUserMeta(ctx, userID, values); err != nil {
		return model.UserSettings{}, fmt.Errorf("save settings for user %d: %w", userID, err)
	}
	return fromMeta(values), nil
}

func (s *Service) NotificationPreferences(ctx context.Context, userID int64) (model.NotificationPreferences, error) {
	meta, err := s.store.UserMeta(ctx, userID, metaPrefix+"notifications_")
	if err != nil {
		return model.NotificationPreferences{}, fmt.Errorf("load notification preferences for user %d: %w", userID, err)
	}

	freq := meta[keyFrequency]
	prefs := model.NotificationPreferences{
		EmailEnabled: meta[keyEmail] != "0",
		PushEnabled:  meta[keyPush] != "0",
		Frequency:    freq,
		SendNow:      ShouldSendNow(freq),
	}
	if prefs.Frequency == "" {
		prefs.Frequency = FrequencyInstant
	}
	return prefs, nil
}

// ShouldSendNow is false when the user asked for a daily or weekly digest.
func ShouldSendNow(frequency string) bool {
	return frequency == "" || frequency == FrequencyInstant
}

func fromMeta(meta map[string]string) model.UserSettings {
	out := Defaults
	out.Theme = or(meta[keyTheme], Defaults.Theme)
	out.Language = or(meta[keyLanguage], Defaults.Language)
	out.DateFormat = or(meta[keyDateFormat], Defaults.DateFormat)
	out.TimeFormat = or(meta[keyTimeFormat], Defaults.TimeFormat)
	out.Timezone = or(meta[keyTimezone], Defaults.Timezone)
	out.Currency = or(meta[keyCurrency], Defaults.Currency)
	out.NumberFormat = or(meta[keyNumberFormat], Defaults.NumberFormat)
	out.NotificationsEmail = meta[keyEmail] != "0"
	out.NotificationsPush = meta[keyPush] != "0"
	out.NotificationsFrequency = or(meta[keyFrequency], Defaults.NotificationsFrequency)

	out.QuickAccessHidden = []string{}
	if raw := meta[keyHidden]; raw != "" {
		var hidden []string
		if err := json.Unmarshal([]byte(raw), &hidden); err == nil && hidden != nil {
			out.QuickAccessHidden = hidden
		}
	}
	return out
}

func text(v, def string) string {
	return or(pkg.SanitizeTextField(v), def)
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
