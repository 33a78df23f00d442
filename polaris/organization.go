package polaris

// Organization constants for the modeled deployment. Every generated table
// reports against the same branch, matching the production export this
// sample set stands in for.
const (
	ReportingOrgID      = 3
	OrgAbbreviation     = "DCPL"
	OrgName             = "Daviess County Public Library"
	OrgPhone            = "270-684-0211 x262"
	AdminLanguageID     = 1033
	DefaultPickupOrgID  = 3
	DefaultItemFormatID = 49 // book
)

// Identifier ranges for generated records. Offsets keep the sample ids in
// the same bands the production system uses.
const (
	PatronIDStart = 10000
	ItemIDStart   = 100000
	HoldIDStart   = 800000

	// BibRecordIDOffset maps an item record id to its bibliographic record id.
	BibRecordIDOffset = 500000
)

// Barcode prefixes distinguish patron cards from item labels.
const (
	PatronBarcodePrefix = "23307"
	ItemBarcodePrefix   = "33307"
	BarcodeLength       = 14
)
