package polaris

// NotificationStatus is the Polaris NotificationStatuses id recorded for a
// delivered (or attempted) notice.
type NotificationStatus int

const (
	StatusCallCompleted    NotificationStatus = 1  // voice call answered live
	StatusAnsweringMachine NotificationStatus = 2  // voice call hit a machine
	StatusEmailSuccess     NotificationStatus = 12
	StatusEmailFailed      NotificationStatus = 14
	StatusMailPrinted      NotificationStatus = 15
	StatusSent             NotificationStatus = 16 // SMS handoff accepted
)

// NotificationType is the Polaris NotificationTypes id for the kind of
// notice being sent.
type NotificationType int

const (
	TypeOverdue       NotificationType = 1
	TypeHold          NotificationType = 2
	TypeAlmostOverdue NotificationType = 7 // courtesy / auto-renew reminder
	TypeFine          NotificationType = 8
)
