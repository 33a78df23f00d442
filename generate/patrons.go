package generate

import (
	"strings"

	"github.com/dcplibrary/polaris-sampledata/fakedata"
	"github.com/dcplibrary/polaris-sampledata/polaris"
)

var deliveryOptions = []polaris.DeliveryOption{
	polaris.DeliveryEmail,
	polaris.DeliverySMS,
	polaris.DeliveryVoice,
	polaris.DeliveryMail,
}

var deliveryWeights = []float64{0.60, 0.20, 0.10, 0.10}

// buildPatrons creates one patron per scenario template, ids assigned
// sequentially from polaris.PatronIDStart.
func (g *Generator) buildPatrons(dataset *polaris.Dataset) {
	for idx := range g.scenarios {
		dataset.AddPatron(g.buildPatron(polaris.PatronIDStart + idx))
	}
}

func (g *Generator) buildPatron(patronID int) *polaris.Patron {
	var firstName string
	if g.src.Chance(0.5) {
		firstName = g.src.FemaleFirstName()
	} else {
		firstName = g.src.MaleFirstName()
	}

	lastName := g.src.LastName()

	middleName := ""
	if g.src.Chance(0.7) {
		middleName = g.src.FirstName()
	}

	delivery := fakedata.WeightedPick(g.src, deliveryOptions, deliveryWeights)

	// Contact info is generated independently of the delivery preference:
	// most patrons have both on file regardless of how they want notices.
	email := ""
	if g.src.Chance(0.85) {
		email = g.src.Email(firstName, lastName)
	}
	phone := ""
	if g.src.Chance(0.85) {
		phone = g.src.FictionalPhone()
	}

	// Backfill the contact field the chosen delivery channel depends on.
	// Records are never discarded for a missing field.
	if delivery.RequiresEmail() && email == "" {
		email = g.src.Email(firstName, lastName)
	}
	if delivery.RequiresPhone() && phone == "" {
		phone = g.src.FictionalPhone()
	}

	first := strings.ToUpper(firstName)
	last := strings.ToUpper(lastName)
	middle := strings.ToUpper(middleName)

	fullName := last + ", " + first
	firstLast := first
	if middle != "" {
		fullName += " " + middle
		firstLast += " " + middle
	}
	firstLast += " " + last

	return &polaris.Patron{
		PatronID:           patronID,
		Barcode:            g.src.Barcode(polaris.PatronBarcodePrefix, polaris.BarcodeLength),
		FirstName:          first,
		LastName:           last,
		MiddleName:         middle,
		Email:              email,
		Phone:              phone,
		DeliveryOption:     delivery,
		PasswordHash:       g.src.PasswordHash(),
		ObfuscatedPassword: g.src.ObfuscatedPassword(),
		FullName:           fullName,
		FirstLastName:      firstLast,
		Birthdate:          g.src.Birthdate(g.now, 18, 80),
	}
}
