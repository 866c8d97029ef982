package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/nikolayk812/cakeshop/internal/domain"
)

const defaultSuggestionLimit = 5

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// Normalize lowercases, trims and strips punctuation so queries and candidate
// fields compare the same way.
func Normalize(text string) string {
	return nonWordChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "")
}

// Filter narrows search results. A zero price bound means unset, an empty
// category means any.
type Filter struct {
	Category domain.Category
	MinPrice int
	MaxPrice int
}

// Engine matches free-text queries against an immutable product set. It is
// stateless per call.
type Engine struct {
	products []domain.ProductRecord
}

func NewEngine(products []domain.ProductRecord) *Engine {
	return &Engine{products: products}
}

// Default returns an engine over the built-in catalogue.
func Default() *Engine {
	return NewEngine(Products())
}

// Matches reports whether any searchable field of the product contains the
// normalized query: name, description, category, each keyword, and the price
// both bare and currency-prefixed.
func Matches(p domain.ProductRecord, query string) bool {
	normalized := Normalize(query)
	if normalized == "" {
		return true
	}

	fields := []string{
		p.Name,
		p.Description,
		string(p.Category),
		"RM" + strconv.Itoa(p.Price),
		strconv.Itoa(p.Price),
	}
	fields = append(fields, p.Keywords...)

	for _, field := range fields {
		if strings.Contains(Normalize(field), normalized) {
			return true
		}
	}

	return false
}

// Search returns the filtered product set ranked by relevance: products whose
// name contains the query sort before products matching only through other
// fields, ties broken by ascending price. A blank query skips the text
// condition and keeps catalogue order; category and price bounds always apply.
func (e *Engine) Search(query string, filter Filter) []domain.ProductRecord {
	normalized := Normalize(query)

	var results []domain.ProductRecord
	for _, p := range e.products {
		if normalized != "" && !Matches(p, query) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice > 0 && p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}

		results = append(results, p)
	}

	if normalized == "" {
		return results
	}

	sort.SliceStable(results, func(i, j int) bool {
		iName := strings.Contains(Normalize(results[i].Name), normalized)
		jName := strings.Contains(Normalize(results[j].Name), normalized)
		if iName != jName {
			return iName
		}

		return results[i].Price < results[j].Price
	})

	return results
}

// Suggestions returns up to limit distinct product names and keywords
// containing the normalized partial query. Partials shorter than two
// normalized characters yield nothing.
func (e *Engine) Suggestions(partial string, limit int) []string {
	normalized := Normalize(partial)
	if len(normalized) < 2 {
		return nil
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	seen := make(map[string]struct{})
	var suggestions []string

	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		if !strings.Contains(Normalize(s), normalized) {
			return
		}

		seen[s] = struct{}{}
		suggestions = append(suggestions, s)
	}

	for _, p := range e.products {
		add(p.Name)
		for _, keyword := range p.Keywords {
			add(keyword)
		}
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions
}
