package templates

import "time"

// Company carries the branding shown in every email.
type Company struct {
	Name       string
	AppName    string
	SupportURL string
}

// NewWelcomeData builds the template data for a welcome email. Keys match
// the placeholders used in welcome.*.tmpl.
func NewWelcomeData(c Company, name, email string) map[string]any {
	return map[string]any{
		"Name":        name,
		"Email":       email,
		"CompanyName": c.Name,
		"AppName":     c.AppName,
		"SupportURL":  c.SupportURL,
		"Time":        time.Now().UTC().Format("02 January 2006, 15:04"),
	}
}
