package fakedata

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker/v2"
)

const passwordHashAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789./"
const obfuscatedAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+/"

// Source produces realistic fake values from a single seeded random stream.
// It is safe to share within one generation run but not across goroutines;
// the pipelines are single-threaded by design.
type Source struct {
	faker faker.Faker
	rng   *rand.Rand
}

// NewSource creates a Source seeded with the given value. Two Sources with
// the same seed produce identical value streams when consumed in the same
// order.
func NewSource(seed int64) *Source {
	base := rand.NewSource(seed)

	return &Source{
		faker: faker.NewWithSeed(base),
		rng:   rand.New(base),
	}
}

// IntBetween returns a uniform value in [minVal, maxVal], both inclusive.
// Panics if maxVal < minVal: the bounds are developer-controlled input.
func (s *Source) IntBetween(minVal, maxVal int) int {
	return minVal + s.rng.Intn(maxVal-minVal+1)
}

// Float64Between returns a uniform value in [minVal, maxVal).
func (s *Source) Float64Between(minVal, maxVal float64) float64 {
	return minVal + s.rng.Float64()*(maxVal-minVal)
}

// Chance returns true with the given probability.
func (s *Source) Chance(probability float64) bool {
	return s.rng.Float64() < probability
}

// Digits returns a string of n random decimal digits.
func (s *Source) Digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + s.rng.Intn(10)))
	}

	return b.String()
}

// Barcode returns a barcode starting with the given prefix, padded with
// random digits to the requested length.
func (s *Source) Barcode(prefix string, length int) string {
	return prefix + s.Digits(length-len(prefix))
}

// FictionalPhone returns a phone number in the 270-555-01XX block reserved
// for fictional use, as ten bare digits.
func (s *Source) FictionalPhone() string {
	return "2705550" + strconv.Itoa(s.IntBetween(100, 199))
}

// Phone returns a ten-digit phone number in the 270 area code.
func (s *Source) Phone() string {
	return "270" + s.Digits(7)
}

// Email builds a plausible personal address from the given names using one
// of several common local-part formats.
func (s *Source) Email(firstName, lastName string) string {
	first := strings.ToLower(firstName)
	last := strings.ToLower(lastName)

	locals := []string{
		first + "." + last,
		first + last,
		first + strconv.Itoa(s.IntBetween(1, 999)),
		last + first[:1],
	}
	providers := []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "icloud.com"}

	return Pick(s, locals) + "@" + Pick(s, providers)
}

// PasswordHash returns a string shaped like a bcrypt hash. It is not a
// hash of anything; the sample data only needs the shape.
func (s *Source) PasswordHash() string {
	return "$2a$10$" + s.fromAlphabet(passwordHashAlphabet, 53)
}

// ObfuscatedPassword returns a base64-looking credential placeholder.
func (s *Source) ObfuscatedPassword() string {
	return s.fromAlphabet(obfuscatedAlphabet, 22) + "=="
}

// FemaleFirstName returns a female-coded given name.
func (s *Source) FemaleFirstName() string {
	return s.faker.Person().FirstNameFemale()
}

// MaleFirstName returns a male-coded given name.
func (s *Source) MaleFirstName() string {
	return s.faker.Person().FirstNameMale()
}

// FirstName returns a given name with no gender constraint.
func (s *Source) FirstName() string {
	return s.faker.Person().FirstName()
}

// LastName returns a family name.
func (s *Source) LastName() string {
	return s.faker.Person().LastName()
}

// FullName returns a "First Last" person name.
func (s *Source) FullName() string {
	return s.faker.Person().Name()
}

// CatchPhrase returns a short catch-phrase suitable as a generated title.
func (s *Source) CatchPhrase() string {
	return s.faker.Company().CatchPhrase()
}

// BuzzPhrase returns a short business-buzzword phrase.
func (s *Source) BuzzPhrase() string {
	return s.faker.Company().BS()
}

// Word returns a single lowercase word.
func (s *Source) Word() string {
	return s.faker.Lorem().Word()
}

// TitleWord returns a single word with its first letter capitalized.
func (s *Source) TitleWord() string {
	w := s.Word()
	if w == "" {
		return w
	}

	return strings.ToUpper(w[:1]) + w[1:]
}

// City returns a city name.
func (s *Source) City() string {
	return s.faker.Address().City()
}

// StreetAddress returns a street address line.
func (s *Source) StreetAddress() string {
	return s.faker.Address().StreetAddress()
}

// SecondaryAddress returns an apartment/suite line.
func (s *Source) SecondaryAddress() string {
	return s.faker.Address().SecondaryAddress()
}

// Birthdate returns a date of birth between minAge and maxAge years before
// the reference date.
func (s *Source) Birthdate(reference time.Time, minAge, maxAge int) time.Time {
	days := s.IntBetween(minAge*365, maxAge*365)

	return reference.AddDate(0, 0, -days)
}

// Year returns a year in [minYear, maxYear].
func (s *Source) Year(minYear, maxYear int) int {
	return s.IntBetween(minYear, maxYear)
}

// MessageToken returns an uppercase UUID string (32 hex digits plus
// dashes) drawn from the seeded stream, so tokens stay unique within a run
// and reproducible across runs.
func (s *Source) MessageToken() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		// rand.Rand.Read never fails.
		panic(err)
	}

	return strings.ToUpper(id.String())
}

func (s *Source) fromAlphabet(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[s.rng.Intn(len(alphabet))])
	}

	return b.String()
}

// Pick returns one of the given items, uniformly.
func Pick[T any](s *Source, items []T) T {
	return items[s.rng.Intn(len(items))]
}

// WeightedPick returns one of the given items using the matching weights.
// Panics if the slices differ in length or the weights sum to zero: the
// distributions are fixed, developer-controlled input.
func WeightedPick[T any](s *Source, items []T, weights []float64) T {
	if len(items) != len(weights) {
		panic("fakedata: items and weights must have the same length")
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("fakedata: weights must sum to a positive value")
	}

	target := s.rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return items[i]
		}
	}

	return items[len(items)-1]
}
