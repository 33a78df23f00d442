package generate_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcplibrary/polaris-sampledata/generate"
	"github.com/dcplibrary/polaris-sampledata/polaris"
	"github.com/dcplibrary/polaris-sampledata/tabular"
)

const testSeed = 42

// A Wednesday, so no generated date arithmetic starts on the weekend edge.
var testReferenceDate = time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

func runGenerator(t *testing.T) *generate.Output {
	t.Helper()

	output, err := generate.NewGenerator(testSeed, testReferenceDate, nil).Run()
	require.NoError(t, err)

	return output
}

func Test_Run_BuildsOnePatronPerScenario(t *testing.T) {
	output := runGenerator(t)

	scenarios := generate.DefaultScenarios()
	require.Len(t, output.Dataset.Patrons, len(scenarios))
	assert.Len(t, output.Dataset.Items, generate.ItemPoolSize)

	wantHolds, wantOverdues, wantAlmosts := 0, 0, 0
	for _, s := range scenarios {
		wantHolds += s.Holds
		wantOverdues += s.Overdues
		wantAlmosts += s.AlmostOverdues
	}

	assert.Len(t, output.Dataset.Holds, wantHolds)
	assert.Len(t, output.Dataset.Overdues, wantOverdues)
	assert.Len(t, output.Dataset.AlmostOverdues, wantAlmosts)
}

func Test_Run_PatronIDsAndBarcodesFollowTheConventions(t *testing.T) {
	output := runGenerator(t)

	for i, patron := range output.Dataset.Patrons {
		assert.Equal(t, polaris.PatronIDStart+i, patron.PatronID)
		assert.Regexp(t, `^23307\d{9}$`, patron.Barcode)
		assert.NotEmpty(t, patron.FirstName)
		assert.NotEmpty(t, patron.LastName)
		assert.Equal(t, patron.FirstName, strings.ToUpper(patron.FirstName))
	}

	for i, item := range output.Dataset.Items {
		assert.Equal(t, polaris.ItemIDStart+i, item.ItemRecordID)
		assert.Regexp(t, `^33307\d{9}$`, item.Barcode)
	}
}

func Test_Run_EveryReferenceResolves(t *testing.T) {
	output := runGenerator(t)
	dataset := output.Dataset

	for _, hold := range dataset.Holds {
		_, err := dataset.PatronByID(hold.PatronID)
		assert.NoError(t, err)
		_, err = dataset.ItemByID(hold.ItemRecordID)
		assert.NoError(t, err)
	}
	for _, overdue := range dataset.Overdues {
		_, err := dataset.PatronByID(overdue.PatronID)
		assert.NoError(t, err)
		_, err = dataset.ItemByID(overdue.ItemRecordID)
		assert.NoError(t, err)
	}
	for _, almost := range dataset.AlmostOverdues {
		_, err := dataset.PatronByID(almost.PatronID)
		assert.NoError(t, err)
		_, err = dataset.ItemByID(almost.ItemRecordID)
		assert.NoError(t, err)
	}
}

func Test_Run_ItemsAreNeverSharedBetweenRecords(t *testing.T) {
	output := runGenerator(t)

	seen := make(map[int]bool)
	claim := func(itemRecordID int) {
		assert.False(t, seen[itemRecordID], "item %d allocated twice", itemRecordID)
		seen[itemRecordID] = true
	}

	for _, hold := range output.Dataset.Holds {
		claim(hold.ItemRecordID)
	}
	for _, overdue := range output.Dataset.Overdues {
		claim(overdue.ItemRecordID)
	}
	for _, almost := range output.Dataset.AlmostOverdues {
		claim(almost.ItemRecordID)
	}
}

func Test_Run_DeliveryChannelAlwaysHasItsContactField(t *testing.T) {
	output := runGenerator(t)

	for _, patron := range output.Dataset.Patrons {
		if patron.DeliveryOption.RequiresEmail() {
			assert.NotEmpty(t, patron.Email, "patron %d wants email notices", patron.PatronID)
		}
		if patron.DeliveryOption.RequiresPhone() {
			assert.NotEmpty(t, patron.Phone, "patron %d wants phone notices", patron.PatronID)
		}
	}
}

func Test_Run_NoDueDateOrHoldExpirationFallsOnSunday(t *testing.T) {
	output := runGenerator(t)

	for _, hold := range output.Dataset.Holds {
		assert.NotEqual(t, time.Sunday, hold.HoldTillDate.Weekday())
	}
	for _, overdue := range output.Dataset.Overdues {
		assert.NotEqual(t, time.Sunday, overdue.DueDate.Weekday())
	}
	for _, almost := range output.Dataset.AlmostOverdues {
		assert.NotEqual(t, time.Sunday, almost.DueDate.Weekday())
	}
}

func Test_Run_CheckoutDateIsDerivedFromDueDateAndRenewals(t *testing.T) {
	output := runGenerator(t)

	for _, overdue := range output.Dataset.Overdues {
		expected := overdue.DueDate.AddDate(0, 0, -polaris.LoanPeriodDays*(overdue.Renewals+1))
		assert.Equal(t, expected, overdue.CheckoutDate)
	}
	for _, almost := range output.Dataset.AlmostOverdues {
		assert.Equal(t, polaris.MaxRenewals, almost.Renewals)
		expected := almost.DueDate.AddDate(0, 0, -polaris.LoanPeriodDays*(polaris.MaxRenewals+1))
		assert.Equal(t, expected, almost.CheckoutDate)
	}
}

func Test_Run_MixedScenarioPatron(t *testing.T) {
	output := runGenerator(t)

	// Scenario index 7 is the mixed patron with 1 hold, 2 overdues and
	// 1 almost-overdue.
	patron, err := output.Dataset.PatronByID(polaris.PatronIDStart + 7)
	require.NoError(t, err)

	assert.Len(t, patron.Holds, 1)
	assert.Len(t, patron.Overdues, 2)
	assert.Len(t, patron.AlmostOverdues, 1)
}

func Test_Run_ProducesAllOutputTablesInOrder(t *testing.T) {
	output := runGenerator(t)

	expected := []string{
		"Polaris.Polaris.Organizations.csv",
		"Polaris.Polaris.ItemStatuses.csv",
		"Results.Polaris.MaterialTypes.csv",
		"Polaris.Polaris.FineCodes.csv",
		"Polaris.Polaris.LoanPeriodCodes.csv",
		"Polaris.Polaris.RecordStatuses.csv",
		"Polaris.Polaris.ShelfLocations.csv",
		"Polaris.Polaris.StatisticalCodes.csv",
		"Polaris.Polaris.Workstations.csv",
		generate.FilePatrons,
		generate.FilePatronRegistration,
		generate.FileHoldNotices,
		generate.FileNotificationHistory,
		generate.FileNotificationLogs,
		generate.FileSysHoldRequests,
		generate.FileNotificationQueue,
		generate.FileOverdueNotices,
		generate.FileItemCheckouts,
	}

	var filenames []string
	for _, table := range output.Tables {
		filenames = append(filenames, table.Filename)
	}

	assert.Equal(t, expected, filenames)
}

func Test_Run_OnlyHistoryTableIsCommaDelimited(t *testing.T) {
	output := runGenerator(t)

	for _, table := range output.Tables {
		if table.Filename == generate.FileNotificationHistory {
			assert.Equal(t, ',', table.Delimiter())
			continue
		}
		assert.Equal(t, '\t', table.Delimiter(), table.Filename)
	}
}

func Test_Run_QueueOnlyCarriesPhoneChannelNotices(t *testing.T) {
	output := runGenerator(t)
	queue := tableByName(t, output, generate.FileNotificationQueue)

	wantRows := 0
	for _, hold := range output.Dataset.Holds {
		if hold.DeliveryOption.PhoneChannel() {
			wantRows++
		}
	}
	for _, overdue := range output.Dataset.Overdues {
		patron, err := output.Dataset.PatronByID(overdue.PatronID)
		require.NoError(t, err)
		if patron.DeliveryOption.PhoneChannel() {
			wantRows++
		}
	}
	for _, almost := range output.Dataset.AlmostOverdues {
		patron, err := output.Dataset.PatronByID(almost.PatronID)
		require.NoError(t, err)
		if patron.DeliveryOption.PhoneChannel() {
			wantRows++
		}
	}

	assert.Len(t, queue.Rows, wantRows)
	for _, row := range queue.Rows {
		assert.Contains(t, []string{"3", "8"}, row["DeliveryOptionID"])
	}
}

func Test_Run_HistoryHasOneRowPerNotice(t *testing.T) {
	output := runGenerator(t)
	history := tableByName(t, output, generate.FileNotificationHistory)

	wantRows := len(output.Dataset.Holds) +
		len(output.Dataset.Overdues) +
		len(output.Dataset.AlmostOverdues)

	assert.Len(t, history.Rows, wantRows)
}

func Test_Run_LogIDsAreSequentialFromOne(t *testing.T) {
	output := runGenerator(t)
	logs := tableByName(t, output, generate.FileNotificationLogs)

	require.NotEmpty(t, logs.Rows)
	for i, row := range logs.Rows {
		assert.Equal(t, strconv.Itoa(i+1), row["NotificationLogID"])
	}
}

func Test_Run_NoticeTimesSitInTheDispatchWindows(t *testing.T) {
	output := runGenerator(t)
	history := tableByName(t, output, generate.FileNotificationHistory)

	for _, row := range history.Rows {
		noticeDate, err := time.Parse("2006-01-02 15:04:05.0", row["NoticeDate"])
		require.NoError(t, err)

		// Nominal batch times are 7:30, 8:00, 8:03, 8:04, X:05 plus up to
		// 59 seconds of jitter.
		assert.Contains(t, []int{7, 8, 9, 13, 17}, noticeDate.Hour(), row["NoticeDate"])
		assert.Contains(t, []int{0, 3, 4, 5, 30}, noticeDate.Minute(), row["NoticeDate"])
	}
}

func Test_Run_CheckoutsCoverOverduesAndAlmostOverdues(t *testing.T) {
	output := runGenerator(t)
	checkouts := tableByName(t, output, generate.FileItemCheckouts)

	wantRows := len(output.Dataset.Overdues) + len(output.Dataset.AlmostOverdues)
	assert.Len(t, checkouts.Rows, wantRows)
}

func Test_Run_SameSeedAndDateProduceByteIdenticalFiles(t *testing.T) {
	dirOne := t.TempDir()
	dirTwo := t.TempDir()

	for _, dir := range []string{dirOne, dirTwo} {
		output, err := generate.NewGenerator(testSeed, testReferenceDate, nil).Run()
		require.NoError(t, err)
		require.NoError(t, tabular.WriteAll(dir, output.Tables))
		require.NoError(t, generate.WriteManifest(dir, output.Manifest))
	}

	entries, err := os.ReadDir(dirOne)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		one, err := os.ReadFile(filepath.Join(dirOne, entry.Name()))
		require.NoError(t, err)
		two, err := os.ReadFile(filepath.Join(dirTwo, entry.Name()))
		require.NoError(t, err)

		assert.Equal(t, one, two, "file %s differs between identical runs", entry.Name())
	}
}

func Test_Run_DifferentSeedsProduceDifferentData(t *testing.T) {
	one, err := generate.NewGenerator(1, testReferenceDate, nil).Run()
	require.NoError(t, err)
	two, err := generate.NewGenerator(2, testReferenceDate, nil).Run()
	require.NoError(t, err)

	assert.NotEqual(t, one.Dataset.Patrons[0].Barcode, two.Dataset.Patrons[0].Barcode)
}

func Test_Run_ManifestMatchesTheOutput(t *testing.T) {
	output := runGenerator(t)
	manifest := output.Manifest

	assert.Equal(t, int64(testSeed), manifest.Seed)
	assert.Equal(t, "2026-03-18", manifest.ReferenceDate)
	assert.Equal(t, len(output.Dataset.Patrons), manifest.Entities.Patrons)
	assert.Equal(t, len(output.Dataset.Holds), manifest.Entities.Holds)
	assert.Equal(t, len(output.Dataset.Overdues), manifest.Entities.Overdues)

	require.Len(t, manifest.Tables, len(output.Tables))
	for i, table := range output.Tables {
		assert.Equal(t, table.Filename, manifest.Tables[i].Filename)
		assert.Equal(t, len(table.Rows), manifest.Tables[i].Rows)
	}
}

func tableByName(t *testing.T, output *generate.Output, filename string) *tabular.Table {
	t.Helper()

	for _, table := range output.Tables {
		if table.Filename == filename {
			return table
		}
	}

	t.Fatalf("no table named %s in the output", filename)
	return nil
}
