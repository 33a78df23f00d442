package anonymize

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/dcplibrary/polaris-sampledata/fakedata"
	"github.com/dcplibrary/polaris-sampledata/tabular"
)

var (
	phoneShape      = regexp.MustCompile(`^[\d()\-\s]{10,}$`)
	barcodeShape    = regexp.MustCompile(`^\d{13,20}$`)
	rawPhoneShape   = regexp.MustCompile(`^270\d{7}$`)
	rawBarcodeShape = regexp.MustCompile(`^233070\d{8}$`)
	capsNameShape   = regexp.MustCompile(`^[A-Z\s\-']+$`)
)

// Anonymizer rewrites the csv files of one export directory. It is single
// use: the identifier caches accumulate across files and are discarded
// with the Anonymizer.
type Anonymizer struct {
	cache *identityCache
	log   *zap.Logger
}

// Summary reports what one ProcessDir pass did.
type Summary struct {
	FilesProcessed int
	FilesSkipped   int
	FilesFailed    int
	Patrons        int
	Addresses      int
	Barcodes       int
}

// New creates an Anonymizer seeded for reproducible substitute identities.
// A nil logger is replaced with a no-op logger.
func New(seed int64, logger *zap.Logger) *Anonymizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Anonymizer{
		cache: newIdentityCache(fakedata.NewSource(seed)),
		log:   logger,
	}
}

// ProcessDir anonymizes every csv file in dir, in sorted filename order,
// rewriting each file in place with its original delimiter and column
// order. A file that cannot be read or written is logged and skipped; the
// pass continues with the next file. Only an unreadable directory fails
// the whole pass.
func (a *Anonymizer) ProcessDir(dir string) (*Summary, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("list csv files in %q: %w", dir, err)
	}
	sort.Strings(paths)

	summary := &Summary{}
	for _, path := range paths {
		filename := filepath.Base(path)
		kind := classifyFile(filename)

		if kind == kindKeepReal {
			a.log.Info("keeping real data", zap.String("file", filename))
			summary.FilesSkipped++
			continue
		}

		if err := a.processFile(path, kind); err != nil {
			if errors.Is(err, tabular.ErrNoHeader) {
				a.log.Warn("no header row, skipping", zap.String("file", filename))
				summary.FilesSkipped++
				continue
			}
			a.log.Error("file failed, continuing", zap.String("file", filename), zap.Error(err))
			summary.FilesFailed++
			continue
		}

		summary.FilesProcessed++
	}

	summary.Patrons = len(a.cache.patrons)
	summary.Addresses = len(a.cache.addresses)
	summary.Barcodes = len(a.cache.barcodes)

	return summary, nil
}

func (a *Anonymizer) processFile(path string, kind tableKind) error {
	table, err := tabular.ReadFile(path)
	if err != nil {
		return err
	}

	for _, row := range table.Rows {
		a.anonymizeRow(kind, table.Columns, row)
	}

	if err := tabular.WriteFile(filepath.Dir(path), table); err != nil {
		return err
	}

	a.log.Info("anonymized", zap.String("file", filepath.Base(path)), zap.Int("rows", len(table.Rows)))

	return nil
}

// anonymizeRow rewrites one row in place according to the table kind.
func (a *Anonymizer) anonymizeRow(kind tableKind, columns []string, row tabular.Row) {
	switch kind {
	case kindPatronRegistration:
		a.anonymizeRegistration(columns, row)
	case kindPatrons:
		a.anonymizePatron(row)
	case kindAddresses:
		a.anonymizeAddress(row)
	case kindNoticeView:
		a.anonymizeNoticeView(columns, row)
	case kindPhoneNotices:
		a.anonymizeNoticeView(columns, row)
		a.anonymizeRawPhoneExtract(columns, row)
	}
}

// registrationColumns maps registration column names to identity fields.
// Columns absent from a given file are simply not touched.
func (a *Anonymizer) anonymizeRegistration(columns []string, row tabular.Row) {
	patronID := row["PatronID"]
	if patronID == "" {
		return
	}
	identity := a.cache.patron(patronID)

	replacements := map[string]string{
		"NameFirst":           identity.firstName,
		"NameLast":            identity.lastName,
		"NameMiddle":          identity.middleName,
		"PatronFullName":      identity.fullName,
		"PatronFirstLastName": identity.firstLastName,
		"EmailAddress":        identity.email,
		"PhoneVoice1":         identity.phone1,
		"PhoneVoice2":         identity.phone2,
		"PhoneVoice3":         identity.phone3,
		"PasswordHash":        identity.passwordHash,
		"ObfuscatedPassword":  identity.obfuscatedPassword,
	}

	for _, col := range columns {
		if value, ok := replacements[col]; ok {
			row[col] = value
			continue
		}

		switch col {
		case "AltEmailAddress":
			if row[col] != "" {
				row[col] = a.cache.src.Email(identity.firstName, identity.lastName)
			}
		case "PhoneFAX":
			if row[col] != "" {
				row[col] = a.cache.src.Phone()
			}
		case "Username":
			if row[col] != "" {
				row[col] = usernameFromEmail(identity.email)
			}
		}
	}
}

func (a *Anonymizer) anonymizePatron(row tabular.Row) {
	patronID := row["PatronID"]
	if patronID == "" {
		return
	}
	if _, ok := row["Barcode"]; !ok {
		return
	}

	row["Barcode"] = a.cache.patron(patronID).barcode
}

func (a *Anonymizer) anonymizeAddress(row tabular.Row) {
	addressID := row["AddressID"]
	if addressID == "" {
		return
	}
	addr := a.cache.address(addressID)

	replace := func(col, value string) {
		if _, ok := row[col]; ok {
			row[col] = value
		}
	}
	replace("StreetOne", addr.streetOne)
	replace("StreetTwo", addr.streetTwo)
	replace("StreetThree", addr.streetThree)
	replace("MunicipalityName", addr.municipality)
}

// anonymizeNoticeView classifies each value by shape. The phone and
// barcode patterns can match non-PII numeric columns; that over-reach is
// intentional, replacing too much is safer than leaking.
func (a *Anonymizer) anonymizeNoticeView(columns []string, row tabular.Row) {
	for _, col := range columns {
		value := row[col]
		if value == "" {
			continue
		}

		switch {
		case strings.Contains(value, "@") && strings.Contains(value, "."):
			row[col] = a.cache.randomEmail()
		case phoneShape.MatchString(value):
			row[col] = a.cache.src.Phone()
		case barcodeShape.MatchString(value):
			row[col] = a.cache.barcode(value)
		}
	}

	if value := row["DeliveryString"]; strings.Contains(value, "@") {
		row["DeliveryString"] = a.cache.randomEmail()
	}
}

// anonymizeRawPhoneExtract applies the literal patterns of the raw
// phone-dispatch file, where column names carry no meaning.
func (a *Anonymizer) anonymizeRawPhoneExtract(columns []string, row tabular.Row) {
	for _, col := range columns {
		value := row[col]
		if value == "" {
			continue
		}

		switch {
		case strings.Contains(value, "@"):
			row[col] = a.cache.randomEmail()
		case rawPhoneShape.MatchString(value):
			row[col] = a.cache.src.Phone()
		case rawBarcodeShape.MatchString(value):
			row[col] = a.cache.barcode(value)
		case len(value) > 2 && value == strings.ToUpper(value) && capsNameShape.MatchString(value):
			row[col] = a.replaceCapsName(value)
		}
	}
}

// replaceCapsName substitutes an all-caps name token: a single word is
// treated as a last name, multiple words as first name plus last names.
func (a *Anonymizer) replaceCapsName(value string) string {
	parts := strings.Fields(value)
	if len(parts) <= 1 {
		return strings.ToUpper(a.cache.src.LastName())
	}

	for i := range parts {
		if i == 0 {
			parts[i] = strings.ToUpper(a.cache.src.FirstName())
		} else {
			parts[i] = strings.ToUpper(a.cache.src.LastName())
		}
	}

	return strings.Join(parts, " ")
}

func usernameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return ""
	}

	return local
}
