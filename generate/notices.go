package generate

import (
	"time"

	"github.com/dcplibrary/polaris-sampledata/fakedata"
	"github.com/dcplibrary/polaris-sampledata/polaris"
)

// Batch windows of the external dispatch systems. Email and mail notices
// go out in a single morning batch; phone-channel notices ride one of the
// fixed upload windows of the phone/text dispatcher.
var holdPhoneBatchHours = []int{8, 9, 13, 17}

var voiceOutcomes = []polaris.NotificationStatus{
	polaris.StatusCallCompleted,
	polaris.StatusAnsweringMachine,
}

var voiceOutcomeWeights = []float64{0.7, 0.3}

type noticeKind int

const (
	noticeHold noticeKind = iota
	noticeOverdue
	noticeAlmostOverdue
)

// HistoryRecord is one row of the notification history: a single notice
// sent for one hold, overdue or almost-overdue.
type HistoryRecord struct {
	PatronID     int
	ItemRecordID int
	Type         polaris.NotificationType
	Delivery     polaris.DeliveryOption
	NoticeDate   time.Time
	Status       polaris.NotificationStatus
	Title        string
}

// LogRecord is one row of the notification log: all notices for one patron
// folded into one dispatch batch, with the first notice's delivery string
// and status as representative values.
type LogRecord struct {
	LogID          int
	PatronID       int
	PatronBarcode  string
	BatchTime      time.Time
	Type           polaris.NotificationType
	Delivery       polaris.DeliveryOption
	DeliveryString string
	HoldsCount     int
	OverduesCount  int
	Status         polaris.NotificationStatus
}

// noticeAssembly is the output of the cross-reference assembler.
type noticeAssembly struct {
	History []HistoryRecord
	Logs    []LogRecord
}

// noticeEvent is the per-notice detail tracked for batch aggregation.
type noticeEvent struct {
	patronID       int
	kind           noticeKind
	delivery       polaris.DeliveryOption
	deliveryString string
	status         polaris.NotificationStatus
}

// noticeBatches groups notices by their minute-truncated dispatch time,
// preserving insertion order so log-id assignment is deterministic.
type noticeBatches struct {
	order []time.Time
	byKey map[int64][]noticeEvent
}

func newNoticeBatches() *noticeBatches {
	return &noticeBatches{byKey: make(map[int64][]noticeEvent)}
}

func (b *noticeBatches) add(noticeDate time.Time, event noticeEvent) {
	key := noticeDate.Truncate(time.Minute)
	unix := key.Unix()
	if _, seen := b.byKey[unix]; !seen {
		b.order = append(b.order, key)
	}
	b.byKey[unix] = append(b.byKey[unix], event)
}

// assembleNotices walks every hold, overdue and almost-overdue, computes
// the channel-specific notice timestamp and delivery outcome, and derives
// the history rows plus the per-patron-per-batch log rows.
func (g *Generator) assembleNotices(dataset *polaris.Dataset) (*noticeAssembly, error) {
	assembly := &noticeAssembly{}
	batches := newNoticeBatches()

	for _, hold := range dataset.Holds {
		patron, err := dataset.PatronByID(hold.PatronID)
		if err != nil {
			return nil, err
		}
		item, err := dataset.ItemByID(hold.ItemRecordID)
		if err != nil {
			return nil, err
		}

		// Email/mail hold notices batch at 8:00; phone-channel notices ride
		// one of the dispatcher's upload windows at five past the hour.
		var noticeDate time.Time
		if hold.DeliveryOption.PhoneChannel() {
			hour := fakedata.Pick(g.src, holdPhoneBatchHours)
			noticeDate = g.batchTime(hold.NotificationDate, hour, 5)
		} else {
			noticeDate = g.batchTime(hold.NotificationDate, 8, 0)
		}

		status, deliveryString := g.deliveryOutcome(patron, hold.DeliveryOption)

		assembly.History = append(assembly.History, HistoryRecord{
			PatronID:     patron.PatronID,
			ItemRecordID: item.ItemRecordID,
			Type:         polaris.TypeHold,
			Delivery:     hold.DeliveryOption,
			NoticeDate:   noticeDate,
			Status:       status,
			Title:        item.Title,
		})
		batches.add(noticeDate, noticeEvent{
			patronID:       patron.PatronID,
			kind:           noticeHold,
			delivery:       hold.DeliveryOption,
			deliveryString: deliveryString,
			status:         status,
		})
	}

	for _, overdue := range dataset.Overdues {
		patron, err := dataset.PatronByID(overdue.PatronID)
		if err != nil {
			return nil, err
		}
		item, err := dataset.ItemByID(overdue.ItemRecordID)
		if err != nil {
			return nil, err
		}

		// Overdue notices go out the morning after the due date: 8:00 for
		// email/mail, 8:04 for the phone-channel upload.
		dayAfterDue := overdue.DueDate.AddDate(0, 0, 1)
		var noticeDate time.Time
		if patron.DeliveryOption.PhoneChannel() {
			noticeDate = g.batchTime(dayAfterDue, 8, 4)
		} else {
			noticeDate = g.batchTime(dayAfterDue, 8, 0)
		}

		status, deliveryString := g.deliveryOutcome(patron, patron.DeliveryOption)

		assembly.History = append(assembly.History, HistoryRecord{
			PatronID:     patron.PatronID,
			ItemRecordID: item.ItemRecordID,
			Type:         polaris.TypeOverdue,
			Delivery:     patron.DeliveryOption,
			NoticeDate:   noticeDate,
			Status:       status,
			Title:        item.Title,
		})
		batches.add(noticeDate, noticeEvent{
			patronID:       patron.PatronID,
			kind:           noticeOverdue,
			delivery:       patron.DeliveryOption,
			deliveryString: deliveryString,
			status:         status,
		})
	}

	for _, almost := range dataset.AlmostOverdues {
		patron, err := dataset.PatronByID(almost.PatronID)
		if err != nil {
			return nil, err
		}
		item, err := dataset.ItemByID(almost.ItemRecordID)
		if err != nil {
			return nil, err
		}

		// Courtesy reminders go out three days before the due date: 8:00
		// for email/mail; the phone dispatcher uploads its courtesy batch
		// at 7:30 and its renew batch at 8:03.
		reminderDay := almost.DueDate.AddDate(0, 0, -3)
		var noticeDate time.Time
		switch {
		case !patron.DeliveryOption.PhoneChannel():
			noticeDate = g.batchTime(reminderDay, 8, 0)
		case g.src.Chance(0.5):
			noticeDate = g.batchTime(reminderDay, 7, 30)
		default:
			noticeDate = g.batchTime(reminderDay, 8, 3)
		}

		status, deliveryString := g.deliveryOutcome(patron, patron.DeliveryOption)

		assembly.History = append(assembly.History, HistoryRecord{
			PatronID:     patron.PatronID,
			ItemRecordID: item.ItemRecordID,
			Type:         polaris.TypeAlmostOverdue,
			Delivery:     patron.DeliveryOption,
			NoticeDate:   noticeDate,
			Status:       status,
			Title:        item.Title,
		})
		batches.add(noticeDate, noticeEvent{
			patronID:       patron.PatronID,
			kind:           noticeAlmostOverdue,
			delivery:       patron.DeliveryOption,
			deliveryString: deliveryString,
			status:         status,
		})
	}

	logs, err := g.buildLogs(dataset, batches)
	if err != nil {
		return nil, err
	}
	assembly.Logs = logs

	return assembly, nil
}

// buildLogs folds the batched notices into one log row per patron per
// batch. Iteration follows insertion order on both levels, and log ids are
// assigned sequentially from 1, so the numbering is stable for a given
// seed.
func (g *Generator) buildLogs(dataset *polaris.Dataset, batches *noticeBatches) ([]LogRecord, error) {
	var logs []LogRecord
	logID := 1

	for _, batchTime := range batches.order {
		events := batches.byKey[batchTime.Unix()]

		var patronOrder []int
		byPatron := make(map[int][]noticeEvent)
		for _, event := range events {
			if _, seen := byPatron[event.patronID]; !seen {
				patronOrder = append(patronOrder, event.patronID)
			}
			byPatron[event.patronID] = append(byPatron[event.patronID], event)
		}

		for _, patronID := range patronOrder {
			patron, err := dataset.PatronByID(patronID)
			if err != nil {
				return nil, err
			}

			grouped := byPatron[patronID]
			first := grouped[0]

			holds, overdues := 0, 0
			for _, event := range grouped {
				switch event.kind {
				case noticeHold:
					holds++
				case noticeOverdue:
					overdues++
				case noticeAlmostOverdue:
					// Courtesy notices are logged but not counted in either column.
				}
			}

			logType := polaris.TypeOverdue
			if holds > 0 {
				logType = polaris.TypeHold
			}

			logs = append(logs, LogRecord{
				LogID:          logID,
				PatronID:       patronID,
				PatronBarcode:  patron.Barcode,
				BatchTime:      batchTime,
				Type:           logType,
				Delivery:       first.delivery,
				DeliveryString: first.deliveryString,
				HoldsCount:     holds,
				OverduesCount:  overdues,
				Status:         first.status,
			})
			logID++
		}
	}

	return logs, nil
}

// batchTime pins the given day to a nominal batch time and adds up to 59
// seconds of jitter, modeling dispatch runs that never start exactly on
// the minute.
func (g *Generator) batchTime(day time.Time, hour, minute int) time.Time {
	nominal := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())

	return nominal.Add(time.Duration(g.src.IntBetween(0, 59)) * time.Second)
}

// deliveryOutcome samples the delivery status for one notice and returns
// it with the delivery string recorded alongside: email notices fail 5% of
// the time, SMS handoffs always succeed, voice calls split between live
// answers and answering machines, and mail is always printed.
func (g *Generator) deliveryOutcome(patron *polaris.Patron, delivery polaris.DeliveryOption) (polaris.NotificationStatus, string) {
	switch delivery {
	case polaris.DeliveryEmail:
		if g.src.Chance(0.05) {
			return polaris.StatusEmailFailed, patron.Email
		}
		return polaris.StatusEmailSuccess, patron.Email

	case polaris.DeliverySMS:
		return polaris.StatusSent, patron.Phone

	case polaris.DeliveryVoice:
		status := fakedata.WeightedPick(g.src, voiceOutcomes, voiceOutcomeWeights)
		return status, patron.Phone

	default: // mail
		return polaris.StatusMailPrinted, ""
	}
}
