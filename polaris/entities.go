package polaris

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownPatronID = errors.New("no patron with this id in the dataset")
var ErrUnknownItemID = errors.New("no item with this id in the dataset")

// Patron is a registered borrower. Display-name fields are derived once at
// creation time; the holds/overdues slices are back-references filled in
// while the dataset is assembled, the canonical store is the Dataset.
type Patron struct {
	PatronID            int
	Barcode             string
	FirstName           string
	LastName            string
	MiddleName          string
	Email               string
	Phone               string
	DeliveryOption      DeliveryOption
	PasswordHash        string
	ObfuscatedPassword  string
	FullName            string // "LAST, FIRST MIDDLE"
	FirstLastName       string // "FIRST MIDDLE LAST"
	Birthdate           time.Time

	Holds          []*Hold
	Overdues       []*Overdue
	AlmostOverdues []*AlmostOverdue
}

// Item is a single circulating copy: a book, DVD or video game.
type Item struct {
	ItemRecordID int
	Barcode      string
	Title        string
	Author       string
	CallNumber   string
	Price        float64
	FormatID     int
}

// Hold links a patron to an item waiting on the hold shelf. The delivery
// option is copied from the patron at creation time and never re-derived.
type Hold struct {
	SysHoldRequestID int
	PatronID         int
	ItemRecordID     int
	CreationDate     time.Time
	NotificationDate time.Time
	HoldTillDate     time.Time // Sunday-shifted
	DeliveryOption   DeliveryOption
	PickupOrgID      int
}

// Overdue is a checked-out item past its due date.
type Overdue struct {
	PatronID           int
	ItemRecordID       int
	DueDate            time.Time // Sunday-shifted
	CheckoutDate       time.Time // derived, never chosen independently
	Renewals           int
	OverdueNoticeCount int // escalation tier 0/1/2
}

// AlmostOverdue is a checkout due three days out with no renewals left,
// eligible for a courtesy reminder instead of an auto-renewal.
type AlmostOverdue struct {
	PatronID     int
	ItemRecordID int
	DueDate      time.Time // Sunday-shifted
	CheckoutDate time.Time
	Renewals     int // always MaxRenewals
	RenewalLimit int
}

// Dataset is the canonical in-memory store for one generation run. Lookup
// indexes are maintained on insert so cross-referencing during assembly is
// a map access with an explicit failure mode, not a linear scan.
type Dataset struct {
	Patrons        []*Patron
	Items          []*Item
	Holds          []*Hold
	Overdues       []*Overdue
	AlmostOverdues []*AlmostOverdue

	patronByID map[int]*Patron
	itemByID   map[int]*Item
}

// NewDataset creates an empty dataset with initialized indexes.
func NewDataset() *Dataset {
	return &Dataset{
		patronByID: make(map[int]*Patron),
		itemByID:   make(map[int]*Item),
	}
}

// AddPatron appends a patron and indexes it by id.
func (d *Dataset) AddPatron(p *Patron) {
	d.Patrons = append(d.Patrons, p)
	d.patronByID[p.PatronID] = p
}

// AddItem appends an item and indexes it by id.
func (d *Dataset) AddItem(i *Item) {
	d.Items = append(d.Items, i)
	d.itemByID[i.ItemRecordID] = i
}

// AddHold appends a hold and records the back-reference on its patron.
func (d *Dataset) AddHold(h *Hold, p *Patron) {
	d.Holds = append(d.Holds, h)
	p.Holds = append(p.Holds, h)
}

// AddOverdue appends an overdue and records the back-reference on its patron.
func (d *Dataset) AddOverdue(o *Overdue, p *Patron) {
	d.Overdues = append(d.Overdues, o)
	p.Overdues = append(p.Overdues, o)
}

// AddAlmostOverdue appends an almost-overdue and records the back-reference
// on its patron.
func (d *Dataset) AddAlmostOverdue(a *AlmostOverdue, p *Patron) {
	d.AlmostOverdues = append(d.AlmostOverdues, a)
	p.AlmostOverdues = append(p.AlmostOverdues, a)
}

// PatronByID resolves a patron id recorded on a hold or checkout.
// Returns ErrUnknownPatronID if the reference is dangling, which indicates
// a defect in the entity builders.
func (d *Dataset) PatronByID(id int) (*Patron, error) {
	p, ok := d.patronByID[id]
	if !ok {
		return nil, fmt.Errorf("patron id %d: %w", id, ErrUnknownPatronID)
	}

	return p, nil
}

// ItemByID resolves an item record id recorded on a hold or checkout.
func (d *Dataset) ItemByID(id int) (*Item, error) {
	i, ok := d.itemByID[id]
	if !ok {
		return nil, fmt.Errorf("item record id %d: %w", id, ErrUnknownItemID)
	}

	return i, nil
}
