package notification

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	templateAffiliateWelcome    = "affiliate_welcome"
	templateAdminNewAffiliate   = "admin_new_affiliate"
	templateAffiliateConversion = "affiliate_conversion"
	templateAdminConversion     = "admin_conversion"
)

var templates = template.Must(template.New("notifications").Parse(`
{{define "affiliate_welcome"}}<h1>Welcome aboard, {{.Name}}!</h1>
<p>Your affiliate account is ready. Share any of your referral codes to start earning a {{.CommissionPercent}}% commission on every booking.</p>
<ul>{{range .Links}}<li><strong>{{.LinkType}}</strong>: {{.RefCode}}</li>{{end}}</ul>{{end}}

{{define "admin_new_affiliate"}}<h1>New affiliate registered</h1>
<p>{{.Name}} ({{.Email}}) just joined the affiliate program.</p>{{if .Website}}<p>Website: {{.Website}}</p>{{end}}{{end}}

{{define "affiliate_conversion"}}<h1>You earned a commission!</h1>
<p>Hi {{.Name}}, a booking of <strong>{{.Package}}</strong> came through your link {{.RefCode}}.</p>
<p>Purchase: {{.Purchase}} {{.Currency}}<br>Your commission: {{.Commission}} {{.Currency}} (pending)</p>{{end}}

{{define "admin_conversion"}}<h1>New affiliate conversion</h1>
<p>Affiliate: {{.Name}} ({{.Email}})<br>Code: {{.RefCode}}<br>Package: {{.Package}}<br>Booking: {{.BookingID}}</p>
<p>Purchase: {{.Purchase}} {{.Currency}}<br>Commission: {{.Commission}} {{.Currency}}</p>{{end}}
`))

func render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
