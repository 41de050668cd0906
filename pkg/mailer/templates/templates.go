package templates

import (
	"bytes"
	"embed"
	htmpl "html/template"
	texttpl "text/template"
)

//go:embed *.tmpl
var fs embed.FS

// TemplateAdminGranted notifies a resident that their account was elevated
// to barangay administrator.
const TemplateAdminGranted = "admin_granted"

var subjects = map[string]string{
	TemplateAdminGranted: "You are now a barangay administrator",
}

// Render renders the named template with data and returns subject, text and
// HTML bodies. Unknown names fall back to an empty render with a generic subject.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	subject = subjects[name]
	if subject == "" {
		subject = "Notification"
	}

	var hbuf bytes.Buffer
	ht, err := htmpl.ParseFS(fs, name+".html.tmpl")
	if err != nil {
		return "", "", "", err
	}
	if err = ht.Execute(&hbuf, data); err != nil {
		return "", "", "", err
	}

	var tbuf bytes.Buffer
	tt, err := texttpl.ParseFS(fs, name+".text.tmpl")
	if err != nil {
		return "", "", "", err
	}
	if err = tt.Execute(&tbuf, data); err != nil {
		return "", "", "", err
	}

	return subject, tbuf.String(), hbuf.String(), nil
}
