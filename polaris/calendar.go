package polaris

import "time"

// Circulation rules for the modeled branch.
const (
	LoanPeriodDays = 21
	MaxRenewals    = 2
)

// ApplySundayRule shifts a date that falls on Sunday forward to Monday.
// The branch is closed on Sundays, so no due date or hold expiration may
// land there. The shifted date is the stored value; nothing downstream
// ever sees the raw Sunday date.
func ApplySundayRule(t time.Time) time.Time {
	if t.Weekday() == time.Sunday {
		return t.AddDate(0, 0, 1)
	}

	return t
}

// CheckoutDate derives the checkout date from a due date and the number of
// renewals taken. Each renewal extends the loan by one full loan period, so
// the item left the building LoanPeriodDays*(renewals+1) days before it is
// due back.
func CheckoutDate(dueDate time.Time, renewals int) time.Time {
	return dueDate.AddDate(0, 0, -LoanPeriodDays*(renewals+1))
}

// OverdueNoticeCount returns the escalation tier for an item that has been
// overdue for the given number of days: 0 for the first notice, 1 for the
// second, 2 for the billing notice.
func OverdueNoticeCount(daysOverdue int) int {
	switch {
	case daysOverdue <= 7:
		return 0
	case daysOverdue <= 14:
		return 1
	default:
		return 2
	}
}
