package whatsapp

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/nikolayk812/cakeshop/internal/config"
	"github.com/nikolayk812/cakeshop/internal/domain"
)

// ErrNoItems is returned when there is nothing in the cart to format.
var ErrNoItems = errors.New("no items in cart to format")

const divider = "▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬▬"

const (
	longDateLayout = "Monday, 2 January 2006"
	clockLayout    = "03:04 PM"
	storedLayout   = "2006-01-02"
)

// Formatter renders order-line items into WhatsApp-ready text blocks and the
// deep link carrying them.
type Formatter struct {
	shop  config.Shop
	nowFn func() time.Time
}

func NewFormatter(shop config.Shop) *Formatter {
	return &Formatter{shop: shop, nowFn: time.Now}
}

// FormatOrderMessage renders the full order message. It fails on an empty
// item list and on any item missing one of type/size/flavor/price, naming the
// 1-based index of the incomplete item. Once these checks pass it never
// aborts: malformed prices and quantities fall back to 0 and 1.
func (f *Formatter) FormatOrderMessage(items []domain.OrderLineItem) (string, error) {
	if len(items) == 0 {
		return "", ErrNoItems
	}

	for i, item := range items {
		if item.Type == "" || item.Size == "" || item.Flavor == "" || item.Price == "" {
			return "", fmt.Errorf("cart item %d is missing required information", i+1)
		}
	}

	now := f.nowFn()

	var b strings.Builder
	fmt.Fprintf(&b, "🍰 *CAKE ORDER - %s* 🍰\n\n", strings.ToUpper(f.shop.Name))
	fmt.Fprintf(&b, "📅 *Order Date:* %s\n", now.Format(longDateLayout))
	fmt.Fprintf(&b, "⏰ *Order Time:* %s\n", now.Format(clockLayout))
	b.WriteString(divider + "\n\n")

	b.WriteString("📋 *ORDER DETAILS*\n")
	fmt.Fprintf(&b, "Total Items: *%d*\n\n", len(items))

	for i, item := range items {
		writeItem(&b, i+1, item)
	}

	total := domain.TotalAmount(items)
	fmt.Fprintf(&b, "%s\n💰 *TOTAL AMOUNT: RM%s*\n%s\n\n", divider, total.StringFixed(2), divider)

	fmt.Fprintf(&b, "✨ *Dear %s Team,*\n\n", f.shop.Name)
	b.WriteString("I would like to place this cake order.\n\n")
	b.WriteString("Please confirm:\n")
	b.WriteString("• Order availability\n")
	b.WriteString("• Payment details\n")
	b.WriteString("• Delivery confirmation\n\n")
	b.WriteString("Thank you for your excellent service! 🙏\n\n")

	b.WriteString("🏪 *Contact Information:*\n")
	b.WriteString(f.shop.Name + "\n")
	fmt.Fprintf(&b, "📞 %s\n", f.shop.Phone)
	fmt.Fprintf(&b, "🕒 %s\n", f.shop.BusinessHours)
	fmt.Fprintf(&b, "🎂 %s", f.shop.Services)

	return b.String(), nil
}

func writeItem(b *strings.Builder, n int, item domain.OrderLineItem) {
	fmt.Fprintf(b, "*%d. %s*\n", n, CleanText(item.Type))
	fmt.Fprintf(b, "   📏 Size: %s\n", CleanText(item.Size))
	fmt.Fprintf(b, "   🧁 Flavor: %s\n", CleanText(item.Flavor))
	fmt.Fprintf(b, "   🚚 Delivery: %s\n", CleanText(orNotSpecified(item.Delivery)))
	fmt.Fprintf(b, "   📅 Date: %s\n", deliveryDate(item.Date))
	fmt.Fprintf(b, "   ⏰ Time: %s\n", CleanText(orNotSpecified(item.Time)))
	fmt.Fprintf(b, "   #️⃣ Quantity: %d\n", item.Qty())
	fmt.Fprintf(b, "   💰 Price: *%s*\n", CleanPrice(string(item.Price)))

	if writing := strings.TrimSpace(item.CakeWriting); writing != "" {
		fmt.Fprintf(b, "   ✏️ Cake Writing: \"%s\"\n", CleanText(writing))
	}
	if notes := strings.TrimSpace(item.OrderNotes); notes != "" {
		fmt.Fprintf(b, "   📝 Notes: %s\n", CleanText(notes))
	}
	if special := strings.TrimSpace(item.SpecialRequests); special != "" {
		fmt.Fprintf(b, "   💬 Special: %s\n", CleanText(special))
	}

	b.WriteString("\n")
}

// FormatInquiryMessage renders a short general-inquiry message.
func (f *Formatter) FormatInquiryMessage(subject string) string {
	if subject == "" {
		subject = "General Inquiry"
	}
	now := f.nowFn()

	var b strings.Builder
	fmt.Fprintf(&b, "🍰 *INQUIRY - %s* 🍰\n\n", strings.ToUpper(f.shop.Name))
	fmt.Fprintf(&b, "📅 Date: %s\n", now.Format(longDateLayout))
	fmt.Fprintf(&b, "⏰ Time: %s\n", now.Format(clockLayout))
	fmt.Fprintf(&b, "📝 Subject: %s\n\n", CleanText(subject))
	b.WriteString("Hello! I would like to inquire about your cake services.\n\n")
	b.WriteString("Please provide more information.\n\n")
	b.WriteString("Thank you! 🙏")

	return b.String()
}

// FormatConfirmationMessage renders the short post-order summary.
func (f *Formatter) FormatConfirmationMessage(orderID string, items []domain.OrderLineItem) (string, error) {
	if len(items) == 0 {
		return "", ErrNoItems
	}

	totalQty := 0
	for _, item := range items {
		totalQty += item.Qty()
	}

	var b strings.Builder
	b.WriteString("🍰 *ORDER CONFIRMATION* 🍰\n\n")
	fmt.Fprintf(&b, "Order ID: *%s*\n", orderID)
	fmt.Fprintf(&b, "Items: %d cake(s)\n", totalQty)
	fmt.Fprintf(&b, "Total: *RM%s*\n\n", domain.TotalAmount(items).StringFixed(2))
	b.WriteString("Your order has been received and is being processed.\n\n")
	b.WriteString("We will contact you shortly for confirmation and payment details.\n\n")
	fmt.Fprintf(&b, "Thank you for choosing %s! 🎂", f.shop.Name)

	return b.String(), nil
}

// OrderURL is FormatOrderMessage plus the deep link in one step.
func (f *Formatter) OrderURL(items []domain.OrderLineItem) (string, error) {
	message, err := f.FormatOrderMessage(items)
	if err != nil {
		return "", fmt.Errorf("f.FormatOrderMessage: %w", err)
	}

	return GenerateURL(message, f.shop.Phone), nil
}

var phoneStripChars = regexp.MustCompile(`[\s\-+()]`)

// GenerateURL builds the wa.me deep link: digits-only phone, percent-encoded
// message. QueryEscape already covers quote characters, unlike some encoders;
// spaces become %20 rather than '+'.
func GenerateURL(message, phone string) string {
	digits := phoneStripChars.ReplaceAllString(phone, "")
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, encoded)
}

// NewOrderID generates a human-quotable order reference.
func NewOrderID() string {
	return fmt.Sprintf("AKA%d%03d", time.Now().UnixMilli(), rand.IntN(1000))
}

var (
	disallowedChars = regexp.MustCompile(`[^\w\s\-.,!@#$%^&*()+=]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// CleanText strips characters WhatsApp renders as "?" and collapses
// whitespace runs.
func CleanText(text string) string {
	cleaned := disallowedChars.ReplaceAllString(text, "")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")

	return strings.TrimSpace(cleaned)
}

// CleanPrice re-formats any stored price representation as "RM<amount>",
// tolerating currency prefixes and defaulting to zero.
func CleanPrice(price string) string {
	return "RM" + domain.ParsePrice(price).StringFixed(2)
}

// deliveryDate renders a stored calendar date in long form, falling back to
// the raw string when it does not parse.
func deliveryDate(s string) string {
	if s == "" {
		return "Not specified"
	}

	t, err := time.Parse(storedLayout, s)
	if err != nil {
		return s
	}

	return t.Format(longDateLayout)
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}

	return s
}
