package generate

import (
	"time"

	"go.uber.org/zap"

	"github.com/dcplibrary/polaris-sampledata/fakedata"
	"github.com/dcplibrary/polaris-sampledata/polaris"
)

// renewalChoices biases overdue renewal counts toward fewer renewals.
var renewalChoices = []int{0, 0, 1, 1, 2}

// itemPool hands out items in allocation order. Items are never reused
// across concurrently-active holds and checkouts within one run.
type itemPool struct {
	items []*polaris.Item
	next  int
}

func (p *itemPool) take() (*polaris.Item, bool) {
	if p.next >= len(p.items) {
		return nil, false
	}

	item := p.items[p.next]
	p.next++

	return item, true
}

// buildCirculation creates the holds, overdues and almost-overdues each
// scenario asks for, consuming the shared item pool. Pool exhaustion is
// not an error: remaining allocations are skipped and generation degrades
// gracefully.
func (g *Generator) buildCirculation(dataset *polaris.Dataset) {
	pool := &itemPool{items: dataset.Items}

	for idx, patron := range dataset.Patrons {
		scenario := g.scenarios[idx]

		for i := 0; i < scenario.Holds; i++ {
			item, ok := pool.take()
			if !ok {
				g.log.Debug("item pool exhausted, skipping remaining holds",
					zap.Int("patron_id", patron.PatronID))
				break
			}
			dataset.AddHold(g.buildHold(dataset, patron, item), patron)
		}

		for i := 0; i < scenario.Overdues; i++ {
			item, ok := pool.take()
			if !ok {
				g.log.Debug("item pool exhausted, skipping remaining overdues",
					zap.Int("patron_id", patron.PatronID))
				break
			}
			dataset.AddOverdue(g.buildOverdue(patron, item), patron)
		}

		for i := 0; i < scenario.AlmostOverdues; i++ {
			item, ok := pool.take()
			if !ok {
				g.log.Debug("item pool exhausted, skipping remaining almost-overdues",
					zap.Int("patron_id", patron.PatronID))
				break
			}
			dataset.AddAlmostOverdue(g.buildAlmostOverdue(patron, item), patron)
		}
	}
}

func (g *Generator) buildHold(dataset *polaris.Dataset, patron *polaris.Patron, item *polaris.Item) *polaris.Hold {
	creation := g.now.AddDate(0, 0, -g.src.IntBetween(1, 10))
	notification := creation.Add(time.Duration(g.src.IntBetween(1, 24)) * time.Hour)
	holdTill := polaris.ApplySundayRule(notification.AddDate(0, 0, g.src.IntBetween(3, 5)))

	return &polaris.Hold{
		SysHoldRequestID: polaris.HoldIDStart + len(dataset.Holds),
		PatronID:         patron.PatronID,
		ItemRecordID:     item.ItemRecordID,
		CreationDate:     creation,
		NotificationDate: notification,
		HoldTillDate:     holdTill,
		DeliveryOption:   patron.DeliveryOption, // copied at creation, never re-derived
		PickupOrgID:      polaris.DefaultPickupOrgID,
	}
}

func (g *Generator) buildOverdue(patron *polaris.Patron, item *polaris.Item) *polaris.Overdue {
	daysOverdue := g.src.IntBetween(1, 20)
	dueDate := polaris.ApplySundayRule(g.now.AddDate(0, 0, -daysOverdue))
	renewals := fakedata.Pick(g.src, renewalChoices)

	return &polaris.Overdue{
		PatronID:           patron.PatronID,
		ItemRecordID:       item.ItemRecordID,
		DueDate:            dueDate,
		CheckoutDate:       polaris.CheckoutDate(dueDate, renewals),
		Renewals:           renewals,
		OverdueNoticeCount: polaris.OverdueNoticeCount(daysOverdue),
	}
}

func (g *Generator) buildAlmostOverdue(patron *polaris.Patron, item *polaris.Item) *polaris.AlmostOverdue {
	// Due in exactly three days with no renewals left: the item can no
	// longer auto-renew, so the patron gets a courtesy notice.
	dueDate := polaris.ApplySundayRule(g.now.AddDate(0, 0, 3))

	return &polaris.AlmostOverdue{
		PatronID:     patron.PatronID,
		ItemRecordID: item.ItemRecordID,
		DueDate:      dueDate,
		CheckoutDate: polaris.CheckoutDate(dueDate, polaris.MaxRenewals),
		Renewals:     polaris.MaxRenewals,
		RenewalLimit: polaris.MaxRenewals,
	}
}
