package notify

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// OrderPlaced is the immutable snapshot of a stored order that the
// Dispatcher renders into both channel messages. The Dispatcher never
// mutates it.
type OrderPlaced struct {
	OrderID         string
	CompanyName     string
	ContactName     string
	MobileNumber    string
	BottleType      string
	Quantity        int
	DeliveryAddress string
	DeliveryDate    string
	Notes           string
}

var emailTemplate = template.Must(template.New("order-email").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">New Order Received - Amrut Dhara</h2>
  <p>A new order has been placed:</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #1f2937;">Order Details</h3>
    <table style="width: 100%; border-collapse: collapse;">
      <tr><td style="padding: 8px 0;"><strong>Order ID:</strong></td><td style="padding: 8px 0;">{{.OrderID}}</td></tr>
      <tr><td style="padding: 8px 0;"><strong>Company:</strong></td><td style="padding: 8px 0;">{{.CompanyName}}</td></tr>
      <tr><td style="padding: 8px 0;"><strong>Contact Person:</strong></td><td style="padding: 8px 0;">{{.ContactName}}</td></tr>
      <tr><td style="padding: 8px 0;"><strong>Mobile Number:</strong></td><td style="padding: 8px 0;">{{.MobileNumber}}</td></tr>
      <tr><td style="padding: 8px 0;"><strong>Bottle Type:</strong></td><td style="padding: 8px 0;">{{.BottleType}}</td></tr>
      <tr><td style="padding: 8px 0;"><strong>Quantity:</strong></td><td style="padding: 8px 0;">{{.Quantity}}</td></tr>
      <tr><td style="padding: 8px 0;"><strong>Delivery Date:</strong></td><td style="padding: 8px 0;">{{.DeliveryDateDisplay}}</td></tr>
      <tr><td style="padding: 8px 0;"><strong>Delivery Address:</strong></td><td style="padding: 8px 0;">{{.DeliveryAddress}}</td></tr>
    </table>
    {{if .Notes}}<p><strong>Notes:</strong> {{.Notes}}</p>{{end}}
  </div>
  <p>Please process this order at your earliest convenience.</p>
  <p style="color: #6b7280;"><em>Amrut Dhara Admin System</em></p>
</div>`))

type emailData struct {
	OrderPlaced
	DeliveryDateDisplay string
}

func renderEmailHTML(order OrderPlaced) (string, error) {
	var b strings.Builder
	data := emailData{OrderPlaced: order, DeliveryDateDisplay: formatDeliveryDate(order.DeliveryDate)}
	if err := emailTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func emailSubject(order OrderPlaced) string {
	return fmt.Sprintf("New Order #%s - %s", shortID(order.OrderID), order.CompanyName)
}

func smsBody(order OrderPlaced) string {
	return fmt.Sprintf("New Order! %s - %s. %dx %s. Delivery: %s. ID: %s",
		order.CompanyName, order.ContactName, order.Quantity, order.BottleType,
		formatDeliveryDate(order.DeliveryDate), shortID(order.OrderID))
}

// shortID truncates the opaque order id to its first 8 characters for
// human readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDeliveryDate renders a YYYY-MM-DD date as a calendar date. Values
// that do not parse pass through unchanged; the dispatcher never validates
// the date.
func formatDeliveryDate(date string) string {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return parsed.Format("02 Jan 2006")
}

// normalizePhone prefixes the country code when the destination does not
// already start with an international prefix marker.
func normalizePhone(number, countryCode string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "+") {
		return number
	}
	return countryCode + number
}
