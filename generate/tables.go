package generate

import (
	"strconv"

	"github.com/dcplibrary/polaris-sampledata/polaris"
	"github.com/dcplibrary/polaris-sampledata/tabular"
)

// Output filenames. The schema.owner.table naming mirrors the export tool
// the downstream consumer ingests from.
const (
	FilePatrons             = "Polaris.Polaris.Patrons.csv"
	FilePatronRegistration  = "Polaris.Polaris.PatronRegistration.csv"
	FileHoldNotices         = "Results.Polaris.HoldNotices.csv"
	FileNotificationHistory = "Results.Polaris.NotificationHistory.csv"
	FileNotificationLogs    = "PolarisTransactions.Polaris.NotificationLogs.csv"
	FileSysHoldRequests     = "Polaris.Polaris.SysHoldRequests.csv"
	FileNotificationQueue   = "Results.Polaris.NotificationQueue.csv"
	FileOverdueNotices      = "Results.Polaris.OverdueNotices.csv"
	FileItemCheckouts       = "Polaris.Polaris.ItemCheckouts.csv"
)

// renderTables produces every output table in the fixed serialization
// order. The order matters: table rendering consumes random values, and
// the determinism contract depends on a stable consumption sequence.
func (g *Generator) renderTables(dataset *polaris.Dataset, assembly *noticeAssembly) ([]*tabular.Table, error) {
	tables := lookupTables()

	tables = append(tables,
		g.patronsTable(dataset),
		g.patronRegistrationTable(dataset),
	)

	holdNotices, err := g.holdNoticesTable(dataset)
	if err != nil {
		return nil, err
	}
	tables = append(tables, holdNotices)

	tables = append(tables,
		notificationHistoryTable(assembly),
		notificationLogsTable(assembly),
	)

	sysHoldRequests, err := g.sysHoldRequestsTable(dataset)
	if err != nil {
		return nil, err
	}
	tables = append(tables, sysHoldRequests)

	queue, err := g.notificationQueueTable(dataset)
	if err != nil {
		return nil, err
	}
	tables = append(tables, queue)

	overdueNotices, err := g.overdueNoticesTable(dataset)
	if err != nil {
		return nil, err
	}
	tables = append(tables, overdueNotices)

	checkouts, err := itemCheckoutsTable(dataset)
	if err != nil {
		return nil, err
	}
	tables = append(tables, checkouts)

	return tables, nil
}

func (g *Generator) patronsTable(dataset *polaris.Dataset) *tabular.Table {
	table := tabular.NewTable(FilePatrons,
		"PatronID", "PatronCodeID", "OrganizationID", "CreatorID", "ModifierID",
		"Barcode", "SystemBlocks", "YTDCircCount", "LifetimeCircCount", "LastActivityDate",
		"ClaimCount", "LostItemCount", "ChargesAmount", "CreditsAmount", "RecordStatusID",
		"RecordStatusDate", "YTDYouSavedAmount", "LifetimeYouSavedAmount",
	)

	for _, p := range dataset.Patrons {
		lastActivity := g.now.AddDate(0, 0, -g.src.IntBetween(1, 30))
		table.Append(tabular.Row{
			"PatronID":               itoa(p.PatronID),
			"PatronCodeID":           "3",
			"OrganizationID":         itoa(polaris.ReportingOrgID),
			"CreatorID":              "1",
			"ModifierID":             "17",
			"Barcode":                p.Barcode,
			"SystemBlocks":           "0",
			"YTDCircCount":           "0",
			"LifetimeCircCount":      itoa(g.src.IntBetween(0, 500)),
			"LastActivityDate":       polaris.FormatDateTime(lastActivity),
			"ClaimCount":             "0",
			"LostItemCount":          "0",
			"ChargesAmount":          "0.0000",
			"CreditsAmount":          "0.0000",
			"RecordStatusID":         "1",
			"RecordStatusDate":       "2015-06-09 08:36:30.867",
			"YTDYouSavedAmount":      "0.0000",
			"LifetimeYouSavedAmount": strconv.FormatFloat(g.src.Float64Between(0, 1000), 'f', 4, 64),
		})
	}

	return table
}

func (g *Generator) patronRegistrationTable(dataset *polaris.Dataset) *tabular.Table {
	table := tabular.NewTable(FilePatronRegistration,
		"PatronID", "LanguageID", "NameFirst", "NameLast", "NameMiddle", "NameTitle", "NameSuffix",
		"PhoneVoice1", "PhoneVoice2", "PhoneVoice3", "EmailAddress", "EntryDate", "ExpirationDate",
		"AddrCheckDate", "UpdateDate", "User1", "User2", "User3", "User4", "User5",
		"Birthdate", "RegistrationDate", "FormerID", "ReadingList", "PhoneFAX", "DeliveryOptionID",
		"StatisticalClassID", "CollectionExempt", "AltEmailAddress", "ExcludeFromOverdues",
		"SDIEmailAddress", "SDIEmailFormatID", "SDIPositiveAssent", "SDIPositiveAssentDate",
		"DeletionExempt", "PatronFullName", "ExcludeFromHolds", "ExcludeFromBills", "EmailFormatID",
		"PatronFirstLastName", "Username", "MergeDate", "MergeUserID", "MergeBarcode", "EnableSMS",
		"RequestPickupBranchID", "Phone1CarrierID", "Phone2CarrierID", "Phone3CarrierID",
		"eReceiptOptionID", "TxtPhoneNumber", "ExcludeFromAlmostOverdueAutoRenew",
		"ExcludeFromPatronRecExpiration", "ExcludeFromInactivePatron", "DoNotShowEReceiptPrompt",
		"PasswordHash", "ObfuscatedPassword", "NameTitleID", "RBdigitalPatronID", "GenderID",
		"LegalNameFirst", "LegalNameLast", "LegalNameMiddle", "LegalFullName",
		"UseLegalNameOnNotices", "EnablePush", "StaffAcceptedUseSingleName",
		"ExtendedLoanPeriods", "IncreasedCheckOutLimits",
	)

	for _, p := range dataset.Patrons {
		enableSMS := "0"
		txtPhone := ""
		if p.DeliveryOption == polaris.DeliverySMS {
			enableSMS = "1"
			txtPhone = "1"
		}

		table.Append(tabular.Row{
			"PatronID":                          itoa(p.PatronID),
			"LanguageID":                        "1",
			"NameFirst":                         p.FirstName,
			"NameLast":                          p.LastName,
			"NameMiddle":                        p.MiddleName,
			"PhoneVoice1":                       p.Phone,
			"EmailAddress":                      p.Email,
			"EntryDate":                         "2009-09-04 12:44:05.483",
			"ExpirationDate":                    polaris.FormatStartOfDay(g.now.AddDate(0, 0, 365)),
			"AddrCheckDate":                     polaris.FormatStartOfDay(g.now.AddDate(0, 0, -30)),
			"UpdateDate":                        polaris.FormatDateTime(g.now.AddDate(0, 0, -g.src.IntBetween(1, 30))),
			"Birthdate":                         polaris.FormatStartOfDay(p.Birthdate),
			"RegistrationDate":                  "2006-08-22 00:00:00.000",
			"ReadingList":                       itoa(g.src.IntBetween(0, 1)),
			"DeliveryOptionID":                  itoa(int(p.DeliveryOption)),
			"StatisticalClassID":                itoa(statisticalClass(g)),
			"CollectionExempt":                  "0",
			"ExcludeFromOverdues":               "0",
			"DeletionExempt":                    "0",
			"PatronFullName":                    p.FullName,
			"ExcludeFromHolds":                  "0",
			"ExcludeFromBills":                  "0",
			"EmailFormatID":                     "1",
			"PatronFirstLastName":               p.FirstLastName,
			"EnableSMS":                         enableSMS,
			"RequestPickupBranchID":             itoa(polaris.DefaultPickupOrgID),
			"eReceiptOptionID":                  "1",
			"TxtPhoneNumber":                    txtPhone,
			"ExcludeFromAlmostOverdueAutoRenew": "0",
			"ExcludeFromPatronRecExpiration":    "0",
			"ExcludeFromInactivePatron":         "0",
			"DoNotShowEReceiptPrompt":           "0",
			"PasswordHash":                      p.PasswordHash,
			"ObfuscatedPassword":                p.ObfuscatedPassword,
			"GenderID":                          "1",
			"UseLegalNameOnNotices":             "0",
			"EnablePush":                        "0",
			"StaffAcceptedUseSingleName":        "0",
			"ExtendedLoanPeriods":               "0",
			"IncreasedCheckOutLimits":           "0",
		})
	}

	return table
}

func (g *Generator) holdNoticesTable(dataset *polaris.Dataset) (*tabular.Table, error) {
	table := tabular.NewTable(FileHoldNotices,
		"ItemRecordID", "AssignedBranchID", "PickupOrganizationID", "PatronID", "ItemBarcode",
		"BrowseTitle", "BrowseAuthor", "ItemCallNumber", "Price", "Abbreviation", "Name",
		"PhoneNumberOne", "DeliveryOptionID", "HoldTillDate", "ItemFormatID", "AdminLanguageID",
		"NotificationTypeID", "HoldPickupAreaID",
	)

	for _, hold := range dataset.Holds {
		item, err := dataset.ItemByID(hold.ItemRecordID)
		if err != nil {
			return nil, err
		}

		table.Append(tabular.Row{
			"ItemRecordID":         itoa(item.ItemRecordID),
			"AssignedBranchID":     itoa(polaris.ReportingOrgID),
			"PickupOrganizationID": itoa(hold.PickupOrgID),
			"PatronID":             itoa(hold.PatronID),
			"ItemBarcode":          item.Barcode,
			"BrowseTitle":          item.Title,
			"BrowseAuthor":         item.Author,
			"ItemCallNumber":       item.CallNumber,
			"Price":                price(item.Price),
			"Abbreviation":         polaris.OrgAbbreviation,
			"Name":                 polaris.OrgName,
			"PhoneNumberOne":       polaris.OrgPhone,
			"DeliveryOptionID":     itoa(int(hold.DeliveryOption)),
			"HoldTillDate":         polaris.FormatEndOfDay(hold.HoldTillDate),
			"ItemFormatID":         itoa(item.FormatID),
			"AdminLanguageID":      itoa(polaris.AdminLanguageID),
			"NotificationTypeID":   itoa(int(polaris.TypeHold)),
		})
	}

	return table, nil
}

func notificationHistoryTable(assembly *noticeAssembly) *tabular.Table {
	table := tabular.NewTable(FileNotificationHistory,
		"PatronId", "ItemRecordId", "TxnId", "NotificationTypeId", "ReportingOrgId",
		"DeliveryOptionId", "NoticeDate", "Amount", "NotificationStatusId", "Title",
	)
	// The one comma-delimited export; the downstream importer expects it.
	table.Comma = ','

	for _, record := range assembly.History {
		table.Append(tabular.Row{
			"PatronId":             itoa(record.PatronID),
			"ItemRecordId":         itoa(record.ItemRecordID),
			"NotificationTypeId":   itoa(int(record.Type)),
			"ReportingOrgId":       itoa(polaris.ReportingOrgID),
			"DeliveryOptionId":     itoa(int(record.Delivery)),
			"NoticeDate":           polaris.FormatNoticeDate(record.NoticeDate),
			"Amount":               "0",
			"NotificationStatusId": itoa(int(record.Status)),
			"Title":                record.Title,
		})
	}

	return table
}

func notificationLogsTable(assembly *noticeAssembly) *tabular.Table {
	table := tabular.NewTable(FileNotificationLogs,
		"PatronID", "NotificationDateTime", "NotificationTypeID", "DeliveryOptionID",
		"DeliveryString", "OverduesCount", "HoldsCount", "CancelsCount", "RecallsCount",
		"NotificationStatusID", "Details", "RoutingsCount", "ReportingOrgID", "PatronBarcode",
		"Reported", "Overdues2ndCount", "Overdues3rdCount", "BillsCount", "LanguageID",
		"CarrierName", "ManualBillCount", "NotificationLogID",
	)

	for _, record := range assembly.Logs {
		table.Append(tabular.Row{
			"PatronID":             itoa(record.PatronID),
			"NotificationDateTime": polaris.FormatDateTime(record.BatchTime),
			"NotificationTypeID":   itoa(int(record.Type)),
			"DeliveryOptionID":     itoa(int(record.Delivery)),
			"DeliveryString":       record.DeliveryString,
			"OverduesCount":        itoa(record.OverduesCount),
			"HoldsCount":           itoa(record.HoldsCount),
			"CancelsCount":         "0",
			"RecallsCount":         "0",
			"NotificationStatusID": itoa(int(record.Status)),
			"RoutingsCount":        "0",
			"ReportingOrgID":       itoa(polaris.ReportingOrgID),
			"PatronBarcode":        record.PatronBarcode,
			"Reported":             "1",
			"NotificationLogID":    itoa(record.LogID),
		})
	}

	return table
}

func (g *Generator) sysHoldRequestsTable(dataset *polaris.Dataset) (*tabular.Table, error) {
	table := tabular.NewTable(FileSysHoldRequests,
		"SysHoldRequestID", "Sequence", "PatronID", "PickupBranchID", "SysHoldStatusID",
		"RTFCyclesPrimary", "CreationDate", "ActivationDate", "ExpirationDate",
		"LastStatusTransitionDate", "LCCN", "PublicationYear", "ISBN", "ISSN", "ItemBarcode",
		"BibliographicRecordID", "TrappingItemRecordID", "StaffDisplayNotes", "NonPublicNotes",
		"PatronNotes", "MessageID", "HoldTillDate", "Origin", "Series", "Pages", "CreatorID",
		"ModifierID", "ModificationDate", "Publisher", "Edition", "VolumeNumber",
		"HoldNotificationDate", "DeliveryOptionID", "Suspended", "UnlockedRequest",
		"RTFCyclesSecondary", "PrimarySecondaryFlag", "PrimaryRandomStartSequence",
		"SecondaryRandomStartSequence", "PrimaryMARCTOMID", "ISBNNormalized", "ISSNNormalized",
		"Designation", "ItemLevelHold", "ItemLevelHoldItemRecordID", "BorrowByMailRequest",
		"PACDisplayNotes", "TrackingInfo", "HoldNotification2ndDate", "ConstituentBibRecordID",
		"PrimaryRTFBeginDate", "PrimaryRTFEndDate", "SecondaryRTFBeginDate", "SecondaryRTFEndDate",
		"NotSuppliedReasonCodeID", "NewPickupBranchID", "HoldPickupAreaID", "NewHoldPickupAreaID",
		"FeeInserted",
	)

	for _, hold := range dataset.Holds {
		item, err := dataset.ItemByID(hold.ItemRecordID)
		if err != nil {
			return nil, err
		}

		table.Append(tabular.Row{
			"SysHoldRequestID":             itoa(hold.SysHoldRequestID),
			"Sequence":                     itoa(hold.SysHoldRequestID),
			"PatronID":                     itoa(hold.PatronID),
			"PickupBranchID":               itoa(hold.PickupOrgID),
			"SysHoldStatusID":              "1",
			"RTFCyclesPrimary":             "0",
			"CreationDate":                 polaris.FormatDateTime(hold.CreationDate),
			"ActivationDate":               polaris.FormatStartOfDay(hold.CreationDate),
			"ExpirationDate":               polaris.FormatEndOfDay(hold.HoldTillDate.AddDate(0, 0, 365)),
			"LastStatusTransitionDate":     polaris.FormatDateTime(hold.NotificationDate),
			"PublicationYear":              itoa(g.src.Year(2015, 2024)),
			"ItemBarcode":                  item.Barcode,
			"BibliographicRecordID":        itoa(item.ItemRecordID + polaris.BibRecordIDOffset),
			"TrappingItemRecordID":         itoa(item.ItemRecordID),
			"MessageID":                    g.src.MessageToken(),
			"HoldTillDate":                 polaris.FormatEndOfDay(hold.HoldTillDate),
			"Origin":                       "1",
			"CreatorID":                    "1",
			"ModifierID":                   "1",
			"ModificationDate":             polaris.FormatDateTime(hold.NotificationDate),
			"HoldNotificationDate":         polaris.FormatDateTime(hold.NotificationDate),
			"DeliveryOptionID":             itoa(int(hold.DeliveryOption)),
			"Suspended":                    "0",
			"UnlockedRequest":              "0",
			"RTFCyclesSecondary":           "0",
			"PrimarySecondaryFlag":         "1",
			"PrimaryRandomStartSequence":   "1",
			"SecondaryRandomStartSequence": itoa(g.src.IntBetween(1, 100)),
			"ItemLevelHold":                "0",
			"BorrowByMailRequest":          "0",
			"PrimaryRTFBeginDate":          polaris.FormatDateTime(hold.CreationDate),
			"PrimaryRTFEndDate":            polaris.FormatDateTime(hold.CreationDate),
			"FeeInserted":                  "0",
		})
	}

	return table, nil
}

// noticeViewColumns is the shared schema of the queue and overdue-notice
// views produced by the notices stored procedure.
var noticeViewColumns = []string{
	"ItemRecordID", "PatronID", "ItemBarcode", "DueDate", "BrowseTitle", "BrowseAuthor",
	"ItemCallNumber", "Price", "Abbreviation", "Name", "PhoneNumberOne", "LoaningOrganizationID",
	"FineCodeID", "LoanUnits", "BillingNotice", "ReplacementCost", "OverdueCharge",
	"ReportingOrgID", "DeliveryOptionID", "ReturnAddressOrgID", "NotificationTypeID",
	"IncludeClaimedItems", "ProcessingCharge", "AdminLanguageID", "OverdueNoticeID",
	"BaseProcessingCharge", "BaseReplacementCost",
}

// noticeViewRow fills the constant part of a queue/overdue-notice row.
func noticeViewRow(item *polaris.Item, patronID int, delivery polaris.DeliveryOption, noticeType polaris.NotificationType) tabular.Row {
	return tabular.Row{
		"ItemRecordID":          itoa(item.ItemRecordID),
		"PatronID":              itoa(patronID),
		"ItemBarcode":           item.Barcode,
		"BrowseTitle":           item.Title,
		"BrowseAuthor":          item.Author,
		"ItemCallNumber":        item.CallNumber,
		"Price":                 price(item.Price),
		"Abbreviation":          polaris.OrgAbbreviation,
		"Name":                  polaris.OrgName,
		"PhoneNumberOne":        polaris.OrgPhone,
		"LoaningOrganizationID": itoa(polaris.ReportingOrgID),
		"BillingNotice":         "0",
		"ReplacementCost":       "0.00",
		"OverdueCharge":         "0.00",
		"ReportingOrgID":        itoa(polaris.ReportingOrgID),
		"DeliveryOptionID":      itoa(int(delivery)),
		"ReturnAddressOrgID":    itoa(polaris.ReportingOrgID),
		"NotificationTypeID":    itoa(int(noticeType)),
		"IncludeClaimedItems":   "1",
		"ProcessingCharge":      "0.00",
		"AdminLanguageID":       itoa(polaris.AdminLanguageID),
		"BaseProcessingCharge":  "0.00",
		"BaseReplacementCost":   "0.00",
	}
}

// notificationQueueTable builds the pending-dispatch queue. Only
// phone-channel rows appear: email and mail notices are delivered directly
// and never reach the external dispatcher.
func (g *Generator) notificationQueueTable(dataset *polaris.Dataset) (*tabular.Table, error) {
	table := tabular.NewTable(FileNotificationQueue, noticeViewColumns...)

	for _, hold := range dataset.Holds {
		if !hold.DeliveryOption.PhoneChannel() {
			continue
		}
		item, err := dataset.ItemByID(hold.ItemRecordID)
		if err != nil {
			return nil, err
		}

		table.Append(noticeViewRow(item, hold.PatronID, hold.DeliveryOption, polaris.TypeHold))
	}

	for _, overdue := range dataset.Overdues {
		patron, err := dataset.PatronByID(overdue.PatronID)
		if err != nil {
			return nil, err
		}
		if !patron.DeliveryOption.PhoneChannel() {
			continue
		}
		item, err := dataset.ItemByID(overdue.ItemRecordID)
		if err != nil {
			return nil, err
		}

		row := noticeViewRow(item, overdue.PatronID, patron.DeliveryOption, polaris.TypeOverdue)
		row["DueDate"] = polaris.FormatEndOfDay(overdue.DueDate)
		row["FineCodeID"] = "5"
		row["LoanUnits"] = "1"
		row["OverdueNoticeID"] = itoa(overdue.OverdueNoticeCount + 1)
		table.Append(row)
	}

	for _, almost := range dataset.AlmostOverdues {
		patron, err := dataset.PatronByID(almost.PatronID)
		if err != nil {
			return nil, err
		}
		if !patron.DeliveryOption.PhoneChannel() {
			continue
		}
		item, err := dataset.ItemByID(almost.ItemRecordID)
		if err != nil {
			return nil, err
		}

		row := noticeViewRow(item, almost.PatronID, patron.DeliveryOption, polaris.TypeAlmostOverdue)
		row["DueDate"] = polaris.FormatEndOfDay(almost.DueDate)
		table.Append(row)
	}

	return table, nil
}

func (g *Generator) overdueNoticesTable(dataset *polaris.Dataset) (*tabular.Table, error) {
	table := tabular.NewTable(FileOverdueNotices, noticeViewColumns...)

	for _, overdue := range dataset.Overdues {
		patron, err := dataset.PatronByID(overdue.PatronID)
		if err != nil {
			return nil, err
		}
		item, err := dataset.ItemByID(overdue.ItemRecordID)
		if err != nil {
			return nil, err
		}

		row := noticeViewRow(item, overdue.PatronID, patron.DeliveryOption, polaris.TypeOverdue)
		row["DueDate"] = polaris.FormatEndOfDay(overdue.DueDate)
		row["FineCodeID"] = "5"
		row["LoanUnits"] = "1"
		row["OverdueNoticeID"] = itoa(overdue.OverdueNoticeCount + 1)
		table.Append(row)
	}

	return table, nil
}

func itemCheckoutsTable(dataset *polaris.Dataset) (*tabular.Table, error) {
	table := tabular.NewTable(FileItemCheckouts,
		"PatronID", "ItemRecordID", "ItemBarcode", "CheckOutDate", "DueDate",
		"Renewals", "RenewalLimit", "PatronBarcode",
	)

	appendCheckout := func(patronID, itemRecordID int, checkout, due string, renewals, limit int) error {
		patron, err := dataset.PatronByID(patronID)
		if err != nil {
			return err
		}
		item, err := dataset.ItemByID(itemRecordID)
		if err != nil {
			return err
		}

		table.Append(tabular.Row{
			"PatronID":      itoa(patronID),
			"ItemRecordID":  itoa(itemRecordID),
			"ItemBarcode":   item.Barcode,
			"CheckOutDate":  checkout,
			"DueDate":       due,
			"Renewals":      itoa(renewals),
			"RenewalLimit":  itoa(limit),
			"PatronBarcode": patron.Barcode,
		})

		return nil
	}

	for _, overdue := range dataset.Overdues {
		err := appendCheckout(overdue.PatronID, overdue.ItemRecordID,
			polaris.FormatDateTime(overdue.CheckoutDate), polaris.FormatEndOfDay(overdue.DueDate),
			overdue.Renewals, polaris.MaxRenewals)
		if err != nil {
			return nil, err
		}
	}

	for _, almost := range dataset.AlmostOverdues {
		err := appendCheckout(almost.PatronID, almost.ItemRecordID,
			polaris.FormatDateTime(almost.CheckoutDate), polaris.FormatEndOfDay(almost.DueDate),
			almost.Renewals, almost.RenewalLimit)
		if err != nil {
			return nil, err
		}
	}

	return table, nil
}

var statisticalClasses = []int{1, 8, 13}

func statisticalClass(g *Generator) int {
	return statisticalClasses[g.src.IntBetween(0, len(statisticalClasses)-1)]
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func price(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
