package generate

import (
	"fmt"
	"math"
	"strings"

	"github.com/dcplibrary/polaris-sampledata/fakedata"
	"github.com/dcplibrary/polaris-sampledata/polaris"
)

type itemCategory int

const (
	categoryFiction itemCategory = iota
	categoryJuvenileFiction
	categoryNonfiction
	categoryDVD
	categoryGame
	categoryYoungAdult
)

var itemCategories = []itemCategory{
	categoryFiction,
	categoryJuvenileFiction,
	categoryNonfiction,
	categoryDVD,
	categoryGame,
	categoryYoungAdult,
}

var itemCategoryWeights = []float64{0.30, 0.20, 0.20, 0.15, 0.10, 0.05}

var dvdGenres = []string{"ACTION", "COMEDY", "DRAMA", "HORROR", "SCI-FI"}
var gamePlatforms = []string{"PS5", "XBOX", "SWITCH", "PS4"}

// buildItems fills the shared item pool, ids assigned sequentially from
// polaris.ItemIDStart.
func (g *Generator) buildItems(dataset *polaris.Dataset) {
	for i := 0; i < ItemPoolSize; i++ {
		dataset.AddItem(g.buildItem(polaris.ItemIDStart + i))
	}
}

func (g *Generator) buildItem(itemID int) *polaris.Item {
	item := &polaris.Item{
		ItemRecordID: itemID,
		Barcode:      g.src.Barcode(polaris.ItemBarcodePrefix, polaris.BarcodeLength),
		FormatID:     polaris.DefaultItemFormatID,
	}

	switch fakedata.WeightedPick(g.src, itemCategories, itemCategoryWeights) {
	case categoryFiction:
		item.Author = g.src.FullName()
		item.Title = g.src.CatchPhrase()
		item.CallNumber = "F " + surnameToken(item.Author)
		item.Price = centsBetween(g.src, 12.99, 29.99)

	case categoryJuvenileFiction:
		item.Author = g.src.FullName()
		item.Title = g.src.TitleWord() + " and the " + g.src.Word()
		item.CallNumber = "JF " + surnameToken(item.Author)
		item.Price = centsBetween(g.src, 8.99, 19.99)

	case categoryNonfiction:
		item.Author = g.src.FullName()
		dewey := fmt.Sprintf("%03d.%02d", g.src.IntBetween(0, 999), g.src.IntBetween(0, 99))
		item.Title = titleCase(g.src.BuzzPhrase())
		item.CallNumber = dewey + " " + surnameToken(item.Author)
		item.Price = centsBetween(g.src, 15.99, 45.99)

	case categoryDVD:
		item.Title = fmt.Sprintf("%s [%d]", g.src.CatchPhrase(), g.src.Year(1970, g.now.Year()))
		genre := fakedata.Pick(g.src, dvdGenres)
		item.CallNumber = "DVD " + genre + " " + wordToken(g.src)
		item.Price = centsBetween(g.src, 9.99, 24.99)

	case categoryGame:
		platform := fakedata.Pick(g.src, gamePlatforms)
		item.Title = fmt.Sprintf("%s [%s]", g.src.CatchPhrase(), platform)
		item.CallNumber = platform + " " + wordToken(g.src)
		item.Price = centsBetween(g.src, 29.99, 69.99)

	case categoryYoungAdult:
		item.Author = g.src.FullName()
		item.Title = "The " + g.src.TitleWord() + " of " + g.src.TitleWord()
		item.CallNumber = "YA " + surnameToken(item.Author)
		item.Price = centsBetween(g.src, 10.99, 22.99)
	}

	return item
}

// surnameToken returns the call-number token for an author: the first four
// characters of the last word of the name.
func surnameToken(author string) string {
	words := strings.Fields(author)
	if len(words) == 0 {
		return ""
	}

	last := words[len(words)-1]
	if len(last) > 4 {
		last = last[:4]
	}

	return last
}

// wordToken returns an uppercased four-character word fragment.
func wordToken(src *fakedata.Source) string {
	w := src.Word()
	if len(w) > 4 {
		w = w[:4]
	}

	return strings.ToUpper(w)
}

// titleCase capitalizes the first letter of every word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}

// centsBetween draws a price in [low, high] rounded to whole cents.
func centsBetween(src *fakedata.Source, low, high float64) float64 {
	return math.Round(src.Float64Between(low, high)*100) / 100
}
