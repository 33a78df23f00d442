package generate

import "github.com/dcplibrary/polaris-sampledata/tabular"

// lookupTables returns the static reference tables. The rows are verbatim
// subsets of the modeled deployment's configuration and never vary between
// runs.
func lookupTables() []*tabular.Table {
	organizations := tabular.NewTable("Polaris.Polaris.Organizations.csv",
		"OrganizationID", "ParentOrganizationID", "OrganizationCodeID", "Name", "Abbreviation",
		"SA_ContactPersonID", "CreatorID", "ModifierID", "CreationDate", "ModificationDate", "DisplayName",
	)
	organizations.Append(
		tabular.Row{"OrganizationID": "1", "ParentOrganizationID": "", "OrganizationCodeID": "1", "Name": "Daviess County", "Abbreviation": "DC", "SA_ContactPersonID": "3", "CreatorID": "1", "ModifierID": "56", "CreationDate": "", "ModificationDate": "2020-07-28 13:00:35.500", "DisplayName": "Daviess County"},
		tabular.Row{"OrganizationID": "2", "ParentOrganizationID": "1", "OrganizationCodeID": "2", "Name": "Daviess County Public", "Abbreviation": "DCP", "SA_ContactPersonID": "3", "CreatorID": "1", "ModifierID": "11", "CreationDate": "", "ModificationDate": "2019-09-25 11:05:49.463", "DisplayName": "Daviess County Public Library"},
		tabular.Row{"OrganizationID": "3", "ParentOrganizationID": "2", "OrganizationCodeID": "3", "Name": "Daviess County Public Library", "Abbreviation": "DCPL", "SA_ContactPersonID": "3", "CreatorID": "1", "ModifierID": "11", "CreationDate": "", "ModificationDate": "2019-09-25 11:07:16.347", "DisplayName": "Daviess County Public Library"},
	)

	itemStatuses := tabular.NewTable("Polaris.Polaris.ItemStatuses.csv",
		"ItemStatusID", "Description", "Name", "BannerText",
	)
	itemStatuses.Append(
		tabular.Row{"ItemStatusID": "1", "Description": "Available", "Name": "In", "BannerText": "Available"},
		tabular.Row{"ItemStatusID": "2", "Description": "Out", "Name": "Out", "BannerText": "Out"},
		tabular.Row{"ItemStatusID": "3", "Description": "Out-ILL", "Name": "Out-ILL", "BannerText": "Out-ILL"},
		tabular.Row{"ItemStatusID": "4", "Description": "Held", "Name": "Held", "BannerText": "Held"},
		tabular.Row{"ItemStatusID": "5", "Description": "Transferred", "Name": "Transferred", "BannerText": "Transferred"},
		tabular.Row{"ItemStatusID": "6", "Description": "Outreach", "Name": "In-Transit", "BannerText": "Outreach"},
		tabular.Row{"ItemStatusID": "7", "Description": "Lost", "Name": "Lost", "BannerText": "Lost"},
		tabular.Row{"ItemStatusID": "8", "Description": "Claimed Returned", "Name": "Claim Returned", "BannerText": "Claimed"},
		tabular.Row{"ItemStatusID": "19", "Description": "Shelving Cart", "Name": "Shelving", "BannerText": "Shelving Cart"},
		tabular.Row{"ItemStatusID": "20", "Description": "Non-circulating", "Name": "Non-circulating", "BannerText": "Non-circulating"},
	)

	materialTypes := tabular.NewTable("Results.Polaris.MaterialTypes.csv",
		"MaterialTypeID", "Description", "MinimumAge",
	)
	materialTypes.Append(
		tabular.Row{"MaterialTypeID": "1", "Description": "Books", "MinimumAge": "0"},
		tabular.Row{"MaterialTypeID": "14", "Description": "Juvenile DVD/Video", "MinimumAge": "0"},
		tabular.Row{"MaterialTypeID": "21", "Description": "CD", "MinimumAge": "0"},
		tabular.Row{"MaterialTypeID": "24", "Description": "DVD/Video", "MinimumAge": "0"},
		tabular.Row{"MaterialTypeID": "26", "Description": "DVD/Video - Restricted", "MinimumAge": "0"},
		tabular.Row{"MaterialTypeID": "34", "Description": "Blu-ray Disc", "MinimumAge": "0"},
		tabular.Row{"MaterialTypeID": "37", "Description": "Video Game - E", "MinimumAge": "0"},
		tabular.Row{"MaterialTypeID": "38", "Description": "Video Game - Restricted", "MinimumAge": "0"},
		tabular.Row{"MaterialTypeID": "45", "Description": "Audiobook CD", "MinimumAge": "0"},
		tabular.Row{"MaterialTypeID": "49", "Description": "Juvenile Book", "MinimumAge": "0"},
	)

	fineCodes := tabular.NewTable("Polaris.Polaris.FineCodes.csv",
		"FineCodeID", "Description",
	)
	fineCodes.Append(
		tabular.Row{"FineCodeID": "1", "Description": ".20-2.00 max"},
		tabular.Row{"FineCodeID": "2", "Description": ".20-10.00 max"},
		tabular.Row{"FineCodeID": "3", "Description": "1.00-10.00 max"},
		tabular.Row{"FineCodeID": "4", "Description": "1.00-5.00 max"},
		tabular.Row{"FineCodeID": "5", "Description": "0-0.00"},
		tabular.Row{"FineCodeID": "6", "Description": ".50-10.00 max"},
		tabular.Row{"FineCodeID": "7", "Description": ".20-5.00 max"},
	)

	loanPeriods := tabular.NewTable("Polaris.Polaris.LoanPeriodCodes.csv",
		"LoanPeriodCodeID", "Description",
	)
	loanPeriods.Append(
		tabular.Row{"LoanPeriodCodeID": "1", "Description": "28 days"},
		tabular.Row{"LoanPeriodCodeID": "2", "Description": "14 days"},
		tabular.Row{"LoanPeriodCodeID": "3", "Description": "7 days"},
		tabular.Row{"LoanPeriodCodeID": "4", "Description": "0 days"},
		tabular.Row{"LoanPeriodCodeID": "6", "Description": "21 days"},
		tabular.Row{"LoanPeriodCodeID": "7", "Description": "2 days"},
	)

	recordStatuses := tabular.NewTable("Polaris.Polaris.RecordStatuses.csv",
		"RecordStatusID", "RecordStatusName",
	)
	recordStatuses.Append(
		tabular.Row{"RecordStatusID": "1", "RecordStatusName": "Final"},
		tabular.Row{"RecordStatusID": "2", "RecordStatusName": "Provisional"},
		tabular.Row{"RecordStatusID": "3", "RecordStatusName": "Secured"},
		tabular.Row{"RecordStatusID": "4", "RecordStatusName": "Deleted"},
	)

	shelfLocations := tabular.NewTable("Polaris.Polaris.ShelfLocations.csv",
		"ShelfLocationID", "OrganizationID", "Description",
	)
	shelfLocations.Append(
		tabular.Row{"ShelfLocationID": "1", "OrganizationID": "3", "Description": "1st Floor"},
		tabular.Row{"ShelfLocationID": "2", "OrganizationID": "3", "Description": "1st Floor-Reference"},
		tabular.Row{"ShelfLocationID": "3", "OrganizationID": "3", "Description": "1st Floor-Kentucky Room"},
		tabular.Row{"ShelfLocationID": "4", "OrganizationID": "3", "Description": "2nd Floor"},
		tabular.Row{"ShelfLocationID": "5", "OrganizationID": "3", "Description": "2nd Floor-Childrens' Area"},
		tabular.Row{"ShelfLocationID": "29", "OrganizationID": "3", "Description": "2nd Floor Wall 2"},
		tabular.Row{"ShelfLocationID": "73", "OrganizationID": "3", "Description": "2nd Floor Reference"},
		tabular.Row{"ShelfLocationID": "76", "OrganizationID": "3", "Description": "KR Storage"},
		tabular.Row{"ShelfLocationID": "79", "OrganizationID": "3", "Description": "2nd Floor Young Adult"},
	)

	statisticalCodes := tabular.NewTable("Polaris.Polaris.StatisticalCodes.csv",
		"StatisticalCodeID", "OrganizationID", "Description",
	)
	statisticalCodes.Append(
		tabular.Row{"StatisticalCodeID": "1", "OrganizationID": "3", "Description": "Adult Fiction"},
		tabular.Row{"StatisticalCodeID": "2", "OrganizationID": "3", "Description": "Adult Fiction-Mystery"},
		tabular.Row{"StatisticalCodeID": "5", "OrganizationID": "3", "Description": "Adult Nonfiction"},
		tabular.Row{"StatisticalCodeID": "12", "OrganizationID": "3", "Description": "AV DVD-Feature Film"},
		tabular.Row{"StatisticalCodeID": "27", "OrganizationID": "3", "Description": "Juvenile Fiction"},
		tabular.Row{"StatisticalCodeID": "31", "OrganizationID": "3", "Description": "Juvenile Nonfiction"},
		tabular.Row{"StatisticalCodeID": "39", "OrganizationID": "3", "Description": "Kentucky Room Genealogy"},
		tabular.Row{"StatisticalCodeID": "43", "OrganizationID": "3", "Description": "Large Print Fiction"},
		tabular.Row{"StatisticalCodeID": "49", "OrganizationID": "3", "Description": "Magazine"},
		tabular.Row{"StatisticalCodeID": "61", "OrganizationID": "3", "Description": "AV Blu-Ray Disc"},
	)

	workstations := tabular.NewTable("Polaris.Polaris.Workstations.csv",
		"WorkstationID", "OrganizationID", "DisplayName", "ComputerName", "CreatorID", "ModifierID",
		"CreationDate", "ModificationDate", "Enabled", "Status", "StatusDate", "NetworkDomainID",
		"LeapAllowed", "TerminalServer",
	)
	workstations.Append(
		tabular.Row{"WorkstationID": "1", "OrganizationID": "1", "DisplayName": "Anonymous OPAC Workstation", "ComputerName": "", "CreatorID": "1", "ModifierID": "", "CreationDate": "", "ModificationDate": "", "Enabled": "0", "Status": "0", "StatusDate": "", "NetworkDomainID": "", "LeapAllowed": "0", "TerminalServer": "0"},
		tabular.Row{"WorkstationID": "3", "OrganizationID": "3", "DisplayName": "DCPLPRO", "ComputerName": "DCPLPRO", "CreatorID": "1", "ModifierID": "1", "CreationDate": "2008-07-09 10:59:08.747", "ModificationDate": "2021-06-07 08:25:36.657", "Enabled": "1", "Status": "1", "StatusDate": "2025-11-04 08:27:46.393", "NetworkDomainID": "", "LeapAllowed": "1", "TerminalServer": "1"},
		tabular.Row{"WorkstationID": "60", "OrganizationID": "3", "DisplayName": "CircIT Check-in 1", "ComputerName": "SWS001620", "CreatorID": "1", "ModifierID": "21", "CreationDate": "2009-06-11 15:53:40.837", "ModificationDate": "2013-01-14 06:58:46.863", "Enabled": "1", "Status": "1", "StatusDate": "2024-07-11 07:59:46.120", "NetworkDomainID": "", "LeapAllowed": "0", "TerminalServer": "0"},
	)

	return []*tabular.Table{
		organizations, itemStatuses, materialTypes, fineCodes, loanPeriods,
		recordStatuses, shelfLocations, statisticalCodes, workstations,
	}
}
