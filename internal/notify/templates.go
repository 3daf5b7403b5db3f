package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/shopspring/decimal"
)

type templateKind string

const (
	customerOrderCreated templateKind = "customer_order_created"
	adminOrderCreated    templateKind = "admin_order_created"
	orderShipped         templateKind = "order_shipped"
	orderDelivered       templateKind = "order_delivered"
	orderCancelled       templateKind = "order_cancelled"
)

type emailTemplate struct {
	subject string
	body    string
}

const itemsTable = `{{define "items"}}
<table cellpadding="6" style="border-collapse:collapse">
  <tr><th align="left">Item</th><th>Qty</th><th align="right">Price</th></tr>
  {{range .Order.Items}}
  <tr>
    <td>{{.ProductName}}{{if .Size}} / {{.Size}}{{end}}{{if .Color}} / {{.Color}}{{end}}</td>
    <td align="center">{{.Quantity}}</td>
    <td align="right">{{money .Subtotal}}</td>
  </tr>
  {{end}}
  <tr><td colspan="2"><b>Total</b></td><td align="right"><b>{{money .Order.TotalAmount}}</b></td></tr>
</table>
{{end}}`

var templateSources = map[templateKind]emailTemplate{
	customerOrderCreated: {
		subject: "Your order {{short .Order.ID}} has been received",
		body: `<p>Hi {{.Order.CustomerName}},</p>
<p>Thank you for your order.</p>
{{if eq .Order.Status "payment_review"}}<p>We have received your transfer receipt and will confirm your payment shortly.</p>
{{else if eq .Order.Status "paid"}}<p>Your payment was successful.</p>{{end}}
{{template "items" .}}
<p>Delivery to: {{.Order.Address}}{{if .Order.City}}, {{.Order.City}}{{end}}{{if .Order.State}}, {{.Order.State}}{{end}}</p>
<p><a href="{{.StoreURL}}/orders/{{.Order.ID}}">Track your order</a></p>`,
	},
	adminOrderCreated: {
		subject: "New order {{short .Order.ID}} ({{status .Order.Status}})",
		body: `<p>New order from {{.Order.CustomerName}} &lt;{{.Order.Email}}&gt;, {{.Order.Phone}}.</p>
<p>Payment: {{.Order.PaymentMethod}}{{if .Order.PaymentReceipt}}, receipt: <a href="{{.Order.PaymentReceipt}}">{{.Order.PaymentReceipt}}</a>{{end}}</p>
{{template "items" .}}
<p><a href="{{.StoreURL}}/admin/orders/{{.Order.ID}}">Open in admin</a></p>`,
	},
	orderShipped: {
		subject: "Your order {{short .Order.ID}} is on its way",
		body: `<p>Hi {{.Order.CustomerName}},</p>
<p>Your order has been shipped to {{.Order.Address}}.</p>
{{template "items" .}}`,
	},
	orderDelivered: {
		subject: "Your order {{short .Order.ID}} has been delivered",
		body: `<p>Hi {{.Order.CustomerName}},</p>
<p>Your order has been delivered. Enjoy!</p>`,
	},
	orderCancelled: {
		subject: "Your order {{short .Order.ID}} has been cancelled",
		body: `<p>Hi {{.Order.CustomerName}},</p>
<p>Your order has been cancelled.{{if .Order.CancellationReason}} Reason: {{.Order.CancellationReason}}{{end}}</p>`,
	},
}

var funcs = map[string]any{
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"short": func(id string) string {
		if len(id) > 8 {
			return "#" + strings.ToUpper(id[:8])
		}
		return "#" + strings.ToUpper(id)
	},
	"status": func(s string) string { return strings.ReplaceAll(s, "_", " ") },
}

type compiledTemplate struct {
	subject *texttemplate.Template
	body    *template.Template
}

type Templates struct {
	set map[templateKind]compiledTemplate
}

func NewTemplates() (*Templates, error) {
	set := make(map[templateKind]compiledTemplate, len(templateSources))
	for kind, src := range templateSources {
		subject, err := texttemplate.New(string(kind)).Funcs(funcs).Parse(src.subject)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s subject: %w", kind, err)
		}
		body, err := template.New(string(kind)).Funcs(funcs).Parse(itemsTable + src.body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s body: %w", kind, err)
		}
		set[kind] = compiledTemplate{subject: subject, body: body}
	}
	return &Templates{set: set}, nil
}

type templateData struct {
	Order    Order
	StoreURL string
}

func (t *Templates) render(kind templateKind, data templateData) (subject string, body string, err error) {
	tpl, ok := t.set[kind]
	if !ok {
		return "", "", fmt.Errorf("unknown template %s", kind)
	}

	var buf bytes.Buffer
	if err := tpl.subject.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render %s subject: %w", kind, err)
	}
	subject = buf.String()

	buf.Reset()
	if err := tpl.body.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render %s body: %w", kind, err)
	}
	return subject, buf.String(), nil
}
