package anonymize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ClassifyFile(t *testing.T) {
	tests := []struct {
		filename string
		expected tableKind
	}{
		{filename: "Polaris.Polaris.PatronRegistration.csv", expected: kindPatronRegistration},
		{filename: "Polaris.Polaris.Patrons.csv", expected: kindPatrons},
		{filename: "Polaris.Polaris.PatronAddresses.csv", expected: kindAddresses},
		{filename: "Polaris.Polaris.Addresses.csv", expected: kindAddresses},
		{filename: "Results.Polaris.HoldNotices.csv", expected: kindNoticeView},
		{filename: "Results.Polaris.NotificationQueue.csv", expected: kindNoticeView},
		{filename: "Results.Polaris.NotificationHistory.csv", expected: kindNoticeView},
		{filename: "PolarisTransactions.Polaris.NotificationLogs.csv", expected: kindNoticeView},
		{filename: "Results.Polaris.OverdueNotices.csv", expected: kindNoticeView},
		{filename: "PhoneNotices.csv", expected: kindPhoneNotices},
		{filename: "Polaris.Polaris.DeliveryOptions.csv", expected: kindKeepReal},
		{filename: "PolarisTransactions.Polaris.TransactionTypes.csv", expected: kindKeepReal},
		{filename: "Polaris.Polaris.SysHoldRequests.csv", expected: kindGeneric},
		{filename: "Polaris.Polaris.ItemCheckouts.csv", expected: kindGeneric},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifyFile(tc.filename))
		})
	}
}
