package anonymize

import (
	"strings"

	"github.com/dcplibrary/polaris-sampledata/fakedata"
	"github.com/dcplibrary/polaris-sampledata/polaris"
)

// fakeIdentity is the replacement persona for one patron id. All name
// fields are upper-cased to match the export convention; optional fields
// may be empty.
type fakeIdentity struct {
	firstName          string
	lastName           string
	middleName         string
	fullName           string
	firstLastName      string
	email              string
	phone1             string
	phone2             string
	phone3             string
	barcode            string
	passwordHash       string
	obfuscatedPassword string
}

// fakeAddress is the replacement for one address id.
type fakeAddress struct {
	streetOne    string
	streetTwo    string
	streetThree  string
	municipality string
}

// identityCache hands out fake personas keyed by the identifiers found in
// the source tables, so a patron keeps one consistent substitute identity
// across all files of a run.
type identityCache struct {
	src       *fakedata.Source
	patrons   map[string]*fakeIdentity
	addresses map[string]*fakeAddress
	barcodes  map[string]string
}

func newIdentityCache(src *fakedata.Source) *identityCache {
	return &identityCache{
		src:       src,
		patrons:   make(map[string]*fakeIdentity),
		addresses: make(map[string]*fakeAddress),
		barcodes:  make(map[string]string),
	}
}

// patron returns the cached persona for a patron id, creating it on first
// use. The id is the raw field value; it is never parsed.
func (c *identityCache) patron(patronID string) *fakeIdentity {
	if identity, ok := c.patrons[patronID]; ok {
		return identity
	}

	var first string
	if c.src.Chance(0.5) {
		first = c.src.FemaleFirstName()
	} else {
		first = c.src.MaleFirstName()
	}
	last := c.src.LastName()

	middle := ""
	if c.src.Chance(0.7) {
		middle = c.src.FirstName()
	}

	first = strings.ToUpper(first)
	last = strings.ToUpper(last)
	middle = strings.ToUpper(middle)

	fullName := last + ", " + first
	firstLast := first + " " + last
	if middle != "" {
		fullName += " " + middle
		firstLast = first + " " + middle + " " + last
	}

	email := ""
	if c.src.Chance(0.8) {
		email = c.src.Email(first, last)
	}

	identity := &fakeIdentity{
		firstName:          first,
		lastName:           last,
		middleName:         middle,
		fullName:           fullName,
		firstLastName:      firstLast,
		email:              email,
		phone1:             c.optionalPhone(0.9),
		phone2:             c.optionalPhone(0.2),
		phone3:             c.optionalPhone(0.1),
		barcode:            c.src.Barcode(polaris.PatronBarcodePrefix, polaris.BarcodeLength),
		passwordHash:       c.src.PasswordHash(),
		obfuscatedPassword: c.src.ObfuscatedPassword(),
	}
	c.patrons[patronID] = identity

	return identity
}

func (c *identityCache) optionalPhone(probability float64) string {
	if !c.src.Chance(probability) {
		return ""
	}

	return c.src.Phone()
}

// address returns the cached substitute for an address id.
func (c *identityCache) address(addressID string) *fakeAddress {
	if addr, ok := c.addresses[addressID]; ok {
		return addr
	}

	addr := &fakeAddress{
		streetOne: strings.ToUpper(c.src.StreetAddress()),
	}
	if c.src.Chance(0.3) {
		addr.streetTwo = strings.ToUpper(c.src.SecondaryAddress())
	}
	if c.src.Chance(0.5) {
		addr.municipality = strings.ToUpper(c.src.City())
	}
	c.addresses[addressID] = addr

	return addr
}

// barcode returns a stable fake barcode for a literal barcode value,
// preserving its length.
func (c *identityCache) barcode(old string) string {
	if fake, ok := c.barcodes[old]; ok {
		return fake
	}

	fake := c.src.Barcode(polaris.PatronBarcodePrefix, len(old))
	c.barcodes[old] = fake

	return fake
}

// randomEmail builds an email for a throwaway name pair. Used where the
// source value is email-shaped but not tied to a known patron id.
func (c *identityCache) randomEmail() string {
	return c.src.Email(c.src.FirstName(), c.src.LastName())
}
