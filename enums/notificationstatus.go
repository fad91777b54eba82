package enums

type NotificationStatus string

const (
	NotificationUnread  NotificationStatus = "unread"
	NotificationRead    NotificationStatus = "read"
	NotificationIgnored NotificationStatus = "ignored"
)

func (s NotificationStatus) Valid() bool {
	return s == NotificationUnread || s == NotificationRead || s == NotificationIgnored
}
