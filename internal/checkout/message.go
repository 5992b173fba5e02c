package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nextlayer-studio/storefront-backend/internal/cart"
	"github.com/nextlayer-studio/storefront-backend/pkg/currency"
)

const (
	greetingFormat = "Hola! Soy %s, quisiera realizar el siguiente pedido en 3D Print Master:\n\n"
	closingLine    = "Quedo a la espera de la confirmación y datos de pago (Transferencia/Efectivo)."
	offerTag       = "(OFERTA)"
)

// BuildMessage renders the WhatsApp order text. The layout is a fixed
// contract with the shop owner: greeting, one line per cart entry in cart
// order, bolded total, closing payment note. Lines without an offer keep the
// double space left by the empty tag.
func BuildMessage(customerName string, lines []cart.Line) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(greetingFormat, customerName))

	total := 0
	for _, line := range lines {
		tag := ""
		if line.HasOffer() {
			tag = offerTag
		}
		subtotal := line.Subtotal()
		total += subtotal
		b.WriteString(fmt.Sprintf("- %dx %s %s (%s)\n", line.Quantity, line.Name, tag, currency.FormatARS(subtotal)))
	}

	b.WriteString(fmt.Sprintf("\n*Total: %s*", currency.FormatARS(total)))
	b.WriteString("\n\n" + closingLine)
	return b.String()
}

// BuildURL wraps the message into a wa.me deep link. Spaces are encoded as
// %20 so the target chat renders the text verbatim.
func BuildURL(phoneNumber, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phoneNumber, encoded)
}
