package polaris

import "time"

// Datetime renderings used in the exported tables. Polaris stores SQL
// datetimes; the exports carry them with differing fractional precision
// per table, so the exact layouts matter for downstream compatibility.

// FormatDateTime renders a full timestamp with two fractional digits, the
// precision used by most datetime columns.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.00")
}

// FormatNoticeDate renders a timestamp with a single fractional digit, the
// precision of NotificationHistory.NoticeDate.
func FormatNoticeDate(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.0")
}

// FormatEndOfDay renders the date pinned to 23:59:59.000, used for due
// dates and hold expirations.
func FormatEndOfDay(t time.Time) string {
	return t.Format("2006-01-02") + " 23:59:59.000"
}

// FormatStartOfDay renders the date pinned to midnight, used for
// activation and expiration dates carried as whole days.
func FormatStartOfDay(t time.Time) string {
	return t.Format("2006-01-02") + " 00:00:00.000"
}
