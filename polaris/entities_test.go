package polaris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcplibrary/polaris-sampledata/polaris"
)

func Test_Dataset_LookupByID(t *testing.T) {
	dataset := polaris.NewDataset()

	patron := &polaris.Patron{PatronID: 10000, Barcode: "23307000000001"}
	item := &polaris.Item{ItemRecordID: 100000, Barcode: "33307000000001"}
	dataset.AddPatron(patron)
	dataset.AddItem(item)

	foundPatron, err := dataset.PatronByID(10000)
	require.NoError(t, err)
	assert.Same(t, patron, foundPatron)

	foundItem, err := dataset.ItemByID(100000)
	require.NoError(t, err)
	assert.Same(t, item, foundItem)
}

func Test_Dataset_LookupByID_UnknownIDs(t *testing.T) {
	dataset := polaris.NewDataset()

	_, err := dataset.PatronByID(99999)
	assert.ErrorIs(t, err, polaris.ErrUnknownPatronID)

	_, err = dataset.ItemByID(99999)
	assert.ErrorIs(t, err, polaris.ErrUnknownItemID)
}

func Test_Dataset_AddHold_RecordsBackReference(t *testing.T) {
	dataset := polaris.NewDataset()
	patron := &polaris.Patron{PatronID: 10000}
	dataset.AddPatron(patron)

	hold := &polaris.Hold{SysHoldRequestID: 800000, PatronID: 10000}
	dataset.AddHold(hold, patron)

	require.Len(t, dataset.Holds, 1)
	require.Len(t, patron.Holds, 1)
	assert.Same(t, hold, patron.Holds[0])
}

func Test_DeliveryOption_ChannelPredicates(t *testing.T) {
	tests := []struct {
		name          string
		option        polaris.DeliveryOption
		requiresEmail bool
		requiresPhone bool
		phoneChannel  bool
	}{
		{name: "mail", option: polaris.DeliveryMail},
		{name: "email", option: polaris.DeliveryEmail, requiresEmail: true},
		{name: "voice", option: polaris.DeliveryVoice, requiresPhone: true, phoneChannel: true},
		{name: "sms", option: polaris.DeliverySMS, requiresPhone: true, phoneChannel: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.requiresEmail, tc.option.RequiresEmail())
			assert.Equal(t, tc.requiresPhone, tc.option.RequiresPhone())
			assert.Equal(t, tc.phoneChannel, tc.option.PhoneChannel())
		})
	}
}
