package model

type UserSettings struct {
	Theme                  string   `json:"theme"`
	Language               string   `json:"language"`
	DateFormat             string   `json:"date_format"`
	TimeFormat             string   `json:"time_format"`
	Timezone               string   `json:"timezone"`
	Currency               string   `json:"currency"`
	NumberFormat           string   `json:"number_format"`
	NotificationsEmail     bool     `json:"notifications_email"`
	NotificationsPush      bool     `json:"notifications_push"`
	NotificationsFrequency string   `json:"notifications_frequency"`
	QuickAccessHidden      []string `json:"quick_access_hidden"`
}

type SaveSettingsRequest struct {
	Theme                  string   `json:"theme" binding:"omitempty,oneof=system light dark"`
	Language               string   `json:"language"`
	DateFormat             string   `json:"date_format"`
	TimeFormat             string   `json:"time_format"`
	Timezone               string   `json:"timezone"`
	Currency               string   `json:"currency"`
	NumberFormat           string   `json:"number_format"`
	NotificationsEmail     bool     `json:"notifications_email"`
	NotificationsPush      bool     `json:"notifications_push"`
	NotificationsFrequency string   `json:"notifications_frequency" binding:"omitempty,oneof=instant daily weekly"`
	QuickAccessVisible     []string `json:"quick_access_visible"`
}

type NotificationPreferences struct {
	EmailEnabled bool   `json:"email_enabled"`
	PushEnabled  bool   `json:"push_enabled"`
	Frequency    string `json:"frequency"`
	SendNow      bool   `json:"send_now"`
}
