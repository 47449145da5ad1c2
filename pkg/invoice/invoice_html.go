package invoice

import (
	"bytes"
	"fitcoach-backend/entities"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Invoice.Number}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; margin: 0; }
h1 { font-size: 22px; margin: 0 0 4px; }
.muted { color: #777; }
.head { display: flex; justify-content: space-between; margin-bottom: 32px; }
table { width: 100%; border-collapse: collapse; margin-top: 16px; }
th { text-align: left; border-bottom: 2px solid #222; padding: 6px 4px; }
td { border-bottom: 1px solid #ddd; padding: 6px 4px; }
.num { text-align: right; white-space: nowrap; }
.totals td { border: none; }
.totals .grand td { font-weight: bold; border-top: 2px solid #222; }
</style>
</head>
<body>
<div class="head">
  <div>
    <h1>{{.CompanyName}}</h1>
    <div class="muted">Invoice {{.Invoice.Number}}</div>
  </div>
  <div class="num">
    <div>Issue date: {{date .Invoice.IssueDate}}</div>
    <div>Due date: {{date .Invoice.DueDate}}</div>
    <div>Status: {{.Invoice.Status}}</div>
  </div>
</div>
{{with .Invoice.Customer}}
<div>
  <strong>Bill to</strong><br>
  {{.Name}}<br>
  {{.Email}}{{if .Phone}}<br>{{.Phone}}{{end}}
</div>
{{end}}
<table>
  <thead>
    <tr><th>Description</th><th class="num">Qty</th><th class="num">Unit price</th><th class="num">Amount</th></tr>
  </thead>
  <tbody>
  {{range .Invoice.Items}}
    <tr>
      <td>{{.Description}}</td>
      <td class="num">{{.Quantity.String}}</td>
      <td class="num">{{money .UnitPrice}}</td>
      <td class="num">{{money .Amount}}</td>
    </tr>
  {{end}}
  </tbody>
</table>
<table class="totals">
  <tr><td></td><td class="num">Subtotal</td><td class="num">{{money .Invoice.Subtotal}}</td></tr>
  <tr><td></td><td class="num">VAT {{.Invoice.VATPercent.String}}%</td><td class="num">{{money .Invoice.VATAmount}}</td></tr>
  <tr class="grand"><td></td><td class="num">Total</td><td class="num">{{money .Invoice.Total}}</td></tr>
</table>
{{if .Invoice.Notes}}<p class="muted">{{.Invoice.Notes}}</p>{{end}}
</body>
</html>`

var invoicePage = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"date":  func(t time.Time) string { return t.Format("2 Jan 2006") },
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
}).Parse(invoiceTemplate))

type invoiceView struct {
	CompanyName string
	Invoice     *entities.Invoice
}

// renderHTML fills the invoice page. Amounts are shown with the invoice
// currency code and two decimals.
func renderHTML(companyName string, invoice *entities.Invoice) (string, error) {
	tmpl, err := invoicePage.Clone()
	if err != nil {
		return "", err
	}
	tmpl.Funcs(template.FuncMap{
		"money": func(d decimal.Decimal) string { return invoice.Currency + " " + d.StringFixed(2) },
	})

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, invoiceView{CompanyName: companyName, Invoice: invoice}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
