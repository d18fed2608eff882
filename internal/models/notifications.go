package models

// NotificationChannel is a delivery medium for notifications.
type NotificationChannel string

const (
	ChannelEmail   NotificationChannel = "email"
	ChannelDesktop NotificationChannel = "desktop"
)

// NotificationCategory is a notification sub-type within a channel.
type NotificationCategory string

const (
	CategoryDueTasks    NotificationCategory = "dueTasks"
	CategoryNewFeatures NotificationCategory = "newFeatures"
)

type EmailNotifications struct {
	Enabled     bool `bson:"enabled" json:"enabled"`
	DueTasks    bool `bson:"dueTasks" json:"dueTasks"`
	NewFeatures bool `bson:"newFeatures" json:"newFeatures"`
}

type DesktopNotifications struct {
	Enabled  bool `bson:"enabled" json:"enabled"`
	DueTasks bool `bson:"dueTasks" json:"dueTasks"`
}

// Notifications holds the per-user preference flags. Category flags only
// matter while the channel-level Enabled flag is true.
type Notifications struct {
	Email   EmailNotifications   `bson:"email" json:"email"`
	Desktop DesktopNotifications `bson:"desktop" json:"desktop"`
}

// DefaultNotifications returns the preferences a fresh account starts with:
// both channels off, category flags pre-ticked so enabling a channel
// immediately delivers.
func DefaultNotifications() Notifications {
	return Notifications{
		Email:   EmailNotifications{Enabled: false, DueTasks: true, NewFeatures: true},
		Desktop: DesktopNotifications{Enabled: false, DueTasks: true},
	}
}

// ResolveNotifications materializes defaults for a possibly missing
// preference structure. Pure: callers persist the result themselves if they
// want the defaults written back.
func ResolveNotifications(prefs *Notifications) Notifications {
	if prefs == nil {
		return DefaultNotifications()
	}
	return *prefs
}

// NotificationSettingsUpdate is a partial preference update: only the flags
// present in the request body are changed.
type NotificationSettingsUpdate struct {
	Email *struct {
		Enabled     *bool `json:"enabled"`
		DueTasks    *bool `json:"dueTasks"`
		NewFeatures *bool `json:"newFeatures"`
	} `json:"email"`
	Desktop *struct {
		Enabled  *bool `json:"enabled"`
		DueTasks *bool `json:"dueTasks"`
	} `json:"desktop"`
}

// Apply merges the update into resolved preferences.
func (u NotificationSettingsUpdate) Apply(prefs Notifications) Notifications {
	if u.Email != nil {
		if u.Email.Enabled != nil {
			prefs.Email.Enabled = *u.Email.Enabled
		}
		if u.Email.DueTasks != nil {
			prefs.Email.DueTasks = *u.Email.DueTasks
		}
		if u.Email.NewFeatures != nil {
			prefs.Email.NewFeatures = *u.Email.NewFeatures
		}
	}
	if u.Desktop != nil {
		if u.Desktop.Enabled != nil {
			prefs.Desktop.Enabled = *u.Desktop.Enabled
		}
		if u.Desktop.DueTasks != nil {
			prefs.Desktop.DueTasks = *u.Desktop.DueTasks
		}
	}
	return prefs
}

// NotificationsAllow reports whether the user opted into the given channel
// and category. A missing preference structure means not opted in; unknown
// channel/category combinations are likewise denied.
func (u *User) NotificationsAllow(channel NotificationChannel, category NotificationCategory) bool {
	if u == nil || u.Notifications == nil {
		return false
	}
	switch channel {
	case ChannelEmail:
		e := u.Notifications.Email
		if !e.Enabled {
			return false
		}
		switch category {
		case CategoryDueTasks:
			return e.DueTasks
		case CategoryNewFeatures:
			return e.NewFeatures
		}
	case ChannelDesktop:
		d := u.Notifications.Desktop
		if !d.Enabled {
			return false
		}
		if category == CategoryDueTasks {
			return d.DueTasks
		}
	}
	return false
}
