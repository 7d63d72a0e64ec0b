package notifications

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
)

const confirmationSubject = "We received your custom package booking"

var confirmationTemplate = template.Must(template.New("confirmation").Funcs(template.FuncMap{
	"money": formatMoney,
	"date":  formatDate,
}).Parse(`Hello {{.CustomerName}},

Thank you for booking a custom package with us. Your request is pending
review and we will get back to you once it has been confirmed.

Travel date: {{date .TravelDate}}

Your selection:
{{range .Items}}  - {{.Category}}: {{.Name}} ({{money .Price}})
{{end}}
Total: {{money .TotalPrice}}
{{with .AdditionalNotes}}
Notes: {{.}}
{{end}}
Booking reference: {{.BookingID}}
`))

type Email struct {
	To      string
	Subject string
	Body    string
}

func RenderConfirmation(n BookingNotification) (Email, error) {
	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, n); err != nil {
		return Email{}, fmt.Errorf("failed to render confirmation email: %w", err)
	}
	return Email{
		To:      n.Email,
		Subject: confirmationSubject,
		Body:    body.String(),
	}, nil
}

func formatDate(t time.Time) string {
	return t.Format("Monday, 02 January 2006")
}

func formatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
