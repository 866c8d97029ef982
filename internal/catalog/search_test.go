package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/cakeshop/internal/catalog"
	"github.com/nikolayk812/cakeshop/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases and trims", input: "  Chocolate  ", want: "chocolate"},
		{name: "strips punctuation", input: "Choc'late!", want: "choclate"},
		{name: "keeps letters digits and inner spaces", input: "RM45 cake", want: "rm45 cake"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Normalize(tt.input))
		})
	}
}

func TestMatches(t *testing.T) {
	products := catalog.Products()
	chocolate := products[0] // Chocolate Birthday Delight, RM45

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "name substring", query: "choc", want: true},
		{name: "case insensitive", query: "CHOCOLATE", want: true},
		{name: "punctuation in query ignored", query: "choc!", want: true},
		{name: "keyword", query: "kids", want: true},
		{name: "description", query: "frosting", want: true},
		{name: "category", query: "birthday", want: true},
		{name: "bare price", query: "45", want: true},
		{name: "prefixed price", query: "RM45", want: true},
		{name: "blank matches everything", query: "   ", want: true},
		{name: "no match", query: "durian", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Matches(chocolate, tt.query))
		})
	}
}

func TestSearch_TextMatch(t *testing.T) {
	engine := catalog.Default()

	results := engine.Search("choc", catalog.Filter{})
	require.NotEmpty(t, results)

	ids := resultIDs(results)
	assert.Contains(t, ids, "birthday-1")           // Chocolate Birthday Delight
	assert.NotContains(t, ids, "birthday-2")        // Rainbow Sprinkle Fantasy
	for _, p := range results {
		assert.True(t, catalog.Matches(p, "choc"), p.ID)
	}
}

func TestSearch_BlankQueryKeepsCatalogueOrder(t *testing.T) {
	engine := catalog.Default()

	// queries that normalize to nothing, whitespace or punctuation alike
	for _, query := range []string{"", "   ", "!!!"} {
		results := engine.Search(query, catalog.Filter{})

		assert.Empty(t, cmp.Diff(catalog.Products(), results), "query %q", query)
		assert.Len(t, results, 24)
	}
}

func TestSearch_BlankQueryStillFilters(t *testing.T) {
	engine := catalog.Default()

	results := engine.Search("", catalog.Filter{Category: domain.CategoryBirthday})

	require.Len(t, results, 6)
	for _, p := range results {
		assert.Equal(t, domain.CategoryBirthday, p.Category)
	}
	assert.Equal(t, "birthday-1", results[0].ID)
}

func TestSearch_CategoryFilter(t *testing.T) {
	engine := catalog.Default()

	results := engine.Search("cake", catalog.Filter{Category: domain.CategoryWedding})
	require.NotEmpty(t, results)

	ids := resultIDs(results)
	for _, p := range results {
		assert.Equal(t, domain.CategoryWedding, p.Category)
	}
	assert.Contains(t, ids, "wedding-1")
	// Modern Minimalist never mentions "cake" in any searchable field
	assert.NotContains(t, ids, "wedding-5")
}

func TestSearch_PriceBounds(t *testing.T) {
	engine := catalog.Default()

	results := engine.Search("", catalog.Filter{MinPrice: 100, MaxPrice: 200})
	require.NotEmpty(t, results)

	for _, p := range results {
		assert.GreaterOrEqual(t, p.Price, 100, p.ID)
		assert.LessOrEqual(t, p.Price, 200, p.ID)
	}

	ids := resultIDs(results)
	assert.Contains(t, ids, "event-1")
	assert.NotContains(t, ids, "birthday-1") // RM45
	assert.NotContains(t, ids, "wedding-2")  // RM350
}

func TestSearch_RanksNameMatchesFirstThenPrice(t *testing.T) {
	engine := catalog.Default()

	results := engine.Search("cake", catalog.Filter{})
	require.Greater(t, len(results), 6)

	// every product named "...Cake" sorts before description/keyword matches,
	// cheapest first
	wantFirst := []string{
		"birthday-3", // Strawberry Dream Cake, RM60
		"birthday-5", // Caramel Surprise Cake, RM70
		"custom-3",   // Hobby & Interest Cake, RM130
		"custom-2",   // Character Fantasy Cake, RM160
		"custom-4",   // Photo Print Cake, RM180
		"custom-1",   // Personalized Theme Cake, RM200
	}
	assert.Equal(t, wantFirst, resultIDs(results)[:len(wantFirst)])

	rest := results[len(wantFirst):]
	for i := 1; i < len(rest); i++ {
		assert.LessOrEqual(t, rest[i-1].Price, rest[i].Price, rest[i].ID)
	}
}

func TestSuggestions(t *testing.T) {
	engine := catalog.Default()

	t.Run("name and keyword, distinct", func(t *testing.T) {
		got := engine.Suggestions("choc", 0)
		assert.Equal(t, []string{"Chocolate Birthday Delight", "chocolate"}, got)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := engine.Suggestions("CHOC", 0)
		assert.Equal(t, []string{"Chocolate Birthday Delight", "chocolate"}, got)
	})

	t.Run("respects limit", func(t *testing.T) {
		got := engine.Suggestions("wedding", 2)
		assert.Len(t, got, 2)
	})

	t.Run("default limit", func(t *testing.T) {
		got := engine.Suggestions("cake", 0)
		assert.LessOrEqual(t, len(got), 5)
	})

	t.Run("too short", func(t *testing.T) {
		assert.Nil(t, engine.Suggestions("c", 0))
		assert.Nil(t, engine.Suggestions(" ! ", 0))
	})
}

func resultIDs(products []domain.ProductRecord) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
