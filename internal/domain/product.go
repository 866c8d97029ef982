package domain

type Category string

const (
	CategoryBirthday Category = "birthday"
	CategoryWedding  Category = "wedding"
	CategoryEvent    Category = "event"
	CategoryCustom   Category = "custom"
)

// ProductRecord is a static catalogue entry, fixed at build time. The search
// engine never creates, updates or deletes these.
type ProductRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       int      `json:"price"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Image       string   `json:"image"`
}
