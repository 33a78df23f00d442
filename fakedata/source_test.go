package fakedata_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcplibrary/polaris-sampledata/fakedata"
)

func Test_Source_SameSeedProducesSameStream(t *testing.T) {
	one := fakedata.NewSource(42)
	two := fakedata.NewSource(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, one.IntBetween(0, 1000), two.IntBetween(0, 1000))
	}

	assert.Equal(t, one.FullName(), two.FullName())
	assert.Equal(t, one.Email("Jane", "Doe"), two.Email("Jane", "Doe"))
	assert.Equal(t, one.MessageToken(), two.MessageToken())
}

func Test_Source_IntBetween_StaysInBounds(t *testing.T) {
	src := fakedata.NewSource(1)

	for i := 0; i < 1000; i++ {
		v := src.IntBetween(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
}

func Test_Source_Barcode(t *testing.T) {
	src := fakedata.NewSource(1)

	barcode := src.Barcode("23307", 14)

	assert.Len(t, barcode, 14)
	assert.True(t, strings.HasPrefix(barcode, "23307"))
	assert.Regexp(t, `^\d{14}$`, barcode)
}

func Test_Source_PhoneNumbers(t *testing.T) {
	src := fakedata.NewSource(1)

	assert.Regexp(t, `^27055501\d{2}$`, src.FictionalPhone())
	assert.Regexp(t, `^270\d{7}$`, src.Phone())
}

func Test_Source_Email_Shape(t *testing.T) {
	src := fakedata.NewSource(1)
	emailShape := regexp.MustCompile(`^[a-z0-9.]+@(gmail|yahoo|hotmail|outlook|icloud)\.com$`)

	for i := 0; i < 20; i++ {
		email := src.Email("Jane", "Doe")
		local, _, found := strings.Cut(email, "@")

		require.True(t, found)
		assert.True(t, strings.Contains(local, "jane") || strings.Contains(local, "doe"),
			"local part %q should derive from a name", local)
		assert.Regexp(t, emailShape, email)
	}
}

func Test_Source_CredentialPlaceholders(t *testing.T) {
	src := fakedata.NewSource(1)

	hash := src.PasswordHash()
	assert.Len(t, hash, 60)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))

	obfuscated := src.ObfuscatedPassword()
	assert.Len(t, obfuscated, 24)
	assert.True(t, strings.HasSuffix(obfuscated, "=="))
}

func Test_Source_MessageToken(t *testing.T) {
	src := fakedata.NewSource(1)

	token := src.MessageToken()

	assert.Regexp(t, `^[0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12}$`, token)
	assert.NotEqual(t, token, src.MessageToken())
}

func Test_Source_Birthdate_RespectsAgeBounds(t *testing.T) {
	src := fakedata.NewSource(1)
	reference := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	// The bounds are counted in 365-day years, so allow a leap-day margin.
	youngest := reference.AddDate(-18, 0, 18)
	oldest := reference.AddDate(-81, 0, 0)

	for i := 0; i < 100; i++ {
		birthdate := src.Birthdate(reference, 18, 80)

		assert.False(t, birthdate.After(youngest), "birthdate %v younger than 18 years", birthdate)
		assert.False(t, birthdate.Before(oldest), "birthdate %v older than 81 years", birthdate)
	}
}

func Test_WeightedPick_HonorsZeroWeight(t *testing.T) {
	src := fakedata.NewSource(1)
	items := []string{"never", "always"}
	weights := []float64{0, 1}

	for i := 0; i < 100; i++ {
		assert.Equal(t, "always", fakedata.WeightedPick(src, items, weights))
	}
}

func Test_WeightedPick_OnlyReturnsGivenItems(t *testing.T) {
	src := fakedata.NewSource(1)
	items := []int{1, 2, 8}
	weights := []float64{0.6, 0.3, 0.1}

	for i := 0; i < 200; i++ {
		assert.Contains(t, items, fakedata.WeightedPick(src, items, weights))
	}
}
