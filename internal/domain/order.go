package domain

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LooseString tolerates persisted payloads that stored a field as either a
// JSON string or a bare number.
type LooseString string

func (s *LooseString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	}

	*s = LooseString(b)
	return nil
}

// OrderDraft is what the configurator hands over when its form is submitted.
// Nothing here is validated at add time, absent fields stay zero-valued.
type OrderDraft struct {
	Type            string
	Image           string
	Size            string
	SizeMultiplier  decimal.Decimal
	Flavor          string
	Delivery        string
	DeliveryFee     Money
	Date            string
	Time            string
	Quantity        int
	BasePrice       Money
	CakeWriting     string
	OrderNotes      string
	SpecialRequests string
}

// OrderLineItem is one configured cake with all selections frozen at the
// moment it was added. It is never mutated after creation.
type OrderLineItem struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Image           string          `json:"image,omitempty"`
	Size            string          `json:"size"`
	SizeMultiplier  decimal.Decimal `json:"sizeMultiplier"`
	Flavor          string          `json:"flavor"`
	Delivery        string          `json:"delivery"`
	DeliveryFee     Money           `json:"deliveryFee"`
	Date            string          `json:"date"`
	Time            string          `json:"time"`
	Quantity        LooseString     `json:"quantity"`
	BasePrice       Money           `json:"basePrice"`
	Price           LooseString     `json:"price"`
	CakeWriting     string          `json:"cakeWriting,omitempty"`
	OrderNotes      string          `json:"orderNotes,omitempty"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	AddedAt         time.Time       `json:"addedAt"`
}

// NewOrderLineItem freezes a draft into a line item. The display price is
// computed once here (base price x size multiplier x quantity + delivery fee,
// rounded to 2 decimal places); later aggregation re-parses the stored string
// rather than recomputing from these components.
func NewOrderLineItem(draft OrderDraft, id string, now time.Time) OrderLineItem {
	quantity := draft.Quantity
	if quantity < 1 {
		quantity = 1
	}

	price := draft.BasePrice.Amount.
		Mul(draft.SizeMultiplier).
		Mul(decimal.NewFromInt(int64(quantity))).
		Add(draft.DeliveryFee.Amount).
		Round(2)

	return OrderLineItem{
		ID:              id,
		Type:            draft.Type,
		Image:           draft.Image,
		Size:            draft.Size,
		SizeMultiplier:  draft.SizeMultiplier,
		Flavor:          draft.Flavor,
		Delivery:        draft.Delivery,
		DeliveryFee:     draft.DeliveryFee,
		Date:            draft.Date,
		Time:            draft.Time,
		Quantity:        LooseString(strconv.Itoa(quantity)),
		BasePrice:       draft.BasePrice,
		Price:           LooseString(MYR(price).Display()),
		CakeWriting:     draft.CakeWriting,
		OrderNotes:      draft.OrderNotes,
		SpecialRequests: draft.SpecialRequests,
		AddedAt:         now,
	}
}

var nonPriceChars = regexp.MustCompile(`[^\d.]`)

// ParsePrice extracts a numeric amount from a display-price string such as
// "RM170" or "Rm 45.50". Anything unparseable contributes zero.
func ParsePrice(s string) decimal.Decimal {
	cleaned := nonPriceChars.ReplaceAllString(s, "")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// ParseQuantity parses a stored quantity, defaulting to 1 when it is missing
// or unparseable.
func ParseQuantity(s string) int {
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || q == 0 {
		return 1
	}

	return q
}

// Amount re-derives the numeric price from the frozen display string. The
// string is authoritative for totals, not the base components.
func (i OrderLineItem) Amount() decimal.Decimal {
	return ParsePrice(string(i.Price))
}

// Qty returns the parsed quantity of the item.
func (i OrderLineItem) Qty() int {
	return ParseQuantity(string(i.Quantity))
}

// TotalAmount folds the items into their aggregate value: the sum of parsed
// price times parsed quantity per item. It never fails; malformed prices
// count as zero.
func TotalAmount(items []OrderLineItem) decimal.Decimal {
	total := decimal.Zero

	for _, item := range items {
		total = total.Add(item.Amount().Mul(decimal.NewFromInt(int64(item.Qty()))))
	}

	return total
}
