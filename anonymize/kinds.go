package anonymize

import "strings"

// tableKind selects the anonymization strategy for a file. Classification
// is by filename, mirroring the naming scheme of the Polaris export:
// schema.owner.table.csv plus a handful of raw extracts.
type tableKind int

const (
	// kindGeneric gets no column-specific handling; rows pass through
	// unchanged.
	kindGeneric tableKind = iota

	// kindKeepReal marks reference tables whose content is not PII and
	// must survive verbatim.
	kindKeepReal

	// kindPatronRegistration carries the full patron identity column set.
	kindPatronRegistration

	// kindPatrons carries only the patron barcode.
	kindPatrons

	// kindAddresses carries street and municipality columns.
	kindAddresses

	// kindNoticeView covers the notice exports: mixed columns handled by
	// per-value shape classification.
	kindNoticeView

	// kindPhoneNotices is the raw phone-dispatch extract with unexported
	// column names; handled by stricter literal patterns on every value.
	kindPhoneNotices
)

// keepRealData lists reference tables (statuses, types, labels) that hold
// no PII and must not be touched.
var keepRealData = map[string]struct{}{
	"Polaris.Polaris.DeliveryOptions.csv":                 {},
	"Polaris.Polaris.NotificationStatuses.csv":            {},
	"Polaris.Polaris.NotificationTypes.csv":               {},
	"Polaris.Polaris.SysHoldStatuses.csv":                 {},
	"Polaris.Polaris.ItemStatuse.csv":                     {},
	"Polaris.Polaris.AddressTypes.csv":                    {},
	"Polaris.Polaris.AddressLabels.csv":                   {},
	"Polaris.Polaris.SA_DeliveryOptions.csv":              {},
	"PolarisTransactions.Polaris.TransactionSubTypes.csv": {},
	"PolarisTransactions.Polaris.TransactionTypes.csv":    {},
}

// noticeViewMarkers identify the notice exports by table-name substring.
var noticeViewMarkers = []string{
	"PhoneNotices", "HoldNotices", "NotificationQueue", "NotificationHistory",
	"NotificationLogs", "OverdueNotices", "ManualBillNotices", "FineNotices",
	"CircReminders",
}

// classifyFile maps a filename to its table kind.
func classifyFile(filename string) tableKind {
	if _, ok := keepRealData[filename]; ok {
		return kindKeepReal
	}

	switch {
	case filename == "PhoneNotices.csv":
		return kindPhoneNotices
	case strings.Contains(filename, "PatronRegistration"):
		return kindPatronRegistration
	case filename == "Polaris.Polaris.Patrons.csv":
		return kindPatrons
	case strings.Contains(filename, "Addresses.csv"):
		return kindAddresses
	}

	for _, marker := range noticeViewMarkers {
		if strings.Contains(filename, marker) {
			return kindNoticeView
		}
	}

	return kindGeneric
}
