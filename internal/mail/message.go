// Package mail renders templated messages and hands them to a transport.
package mail

import (
	"bytes"
	"embed"
	"fmt"
	htmltmpl "html/template"
	"net/mail"
	texttmpl "text/template"
)

// Template names. Each has a .txt and a .gohtml body under templates/.
const (
	TemplateBirthday        = "birthday"
	TemplateAnniversary     = "anniversary"
	TemplatePaymentReminder = "payment_reminder"
	TemplateDuesStatus      = "dues_status"
)

// TemplateNames lists every template the renderer loads.
var TemplateNames = []string{
	TemplateBirthday,
	TemplateAnniversary,
	TemplatePaymentReminder,
	TemplateDuesStatus,
}

//go:embed templates/*.txt templates/*.gohtml
var templatesFS embed.FS

// Message is one outgoing email.
type Message struct {
	To      []mail.Address
	Subject string

	// templated contents
	TemplateName string
	TemplateData interface{}
	TextContent  string
	HTMLContent  string
}

// HasRecipients reports whether the message has somewhere to go.
func (m *Message) HasRecipients() bool { return len(m.To) > 0 }

// HasContent reports whether the message has a rendered body.
func (m *Message) HasContent() bool { return m.TextContent != "" || m.HTMLContent != "" }

// templateContext is the value templates are executed against.
type templateContext struct {
	AppName string
	AppURL  string
	Data    interface{}
}

// Renderer fills message bodies from the embedded templates.
type Renderer struct {
	appName string
	appURL  string
	text    map[string]*texttmpl.Template
	html    map[string]*htmltmpl.Template
}

// NewRenderer parses every template against the _base layouts.
func NewRenderer(appName, appURL string) (*Renderer, error) {
	r := &Renderer{
		appName: appName,
		appURL:  appURL,
		text:    make(map[string]*texttmpl.Template, len(TemplateNames)),
		html:    make(map[string]*htmltmpl.Template, len(TemplateNames)),
	}
	for _, name := range TemplateNames {
		tt, err := texttmpl.ParseFS(templatesFS, "templates/_base.txt", "templates/"+name+".txt")
		if err != nil {
			return nil, fmt.Errorf("parse %s.txt: %w", name, err)
		}
		ht, err := htmltmpl.ParseFS(templatesFS, "templates/_base.gohtml", "templates/"+name+".gohtml")
		if err != nil {
			return nil, fmt.Errorf("parse %s.gohtml: %w", name, err)
		}
		r.text[name] = tt
		r.html[name] = ht
	}
	return r, nil
}

// Has reports whether name is a known template.
func (r *Renderer) Has(name string) bool {
	_, ok := r.text[name]
	return ok
}

// Render fills msg.TextContent and msg.HTMLContent from msg.TemplateName.
func (r *Renderer) Render(msg *Message) error {
	tt, ok := r.text[msg.TemplateName]
	if !ok {
		return fmt.Errorf("unknown template %q", msg.TemplateName)
	}
	ctx := templateContext{AppName: r.appName, AppURL: r.appURL, Data: msg.TemplateData}

	var buf bytes.Buffer
	if err := tt.Execute(&buf, ctx); err != nil {
		return fmt.Errorf("render %s text: %w", msg.TemplateName, err)
	}
	msg.TextContent = buf.String()

	buf.Reset()
	if err := r.html[msg.TemplateName].Execute(&buf, ctx); err != nil {
		return fmt.Errorf("render %s html: %w", msg.TemplateName, err)
	}
	msg.HTMLContent = buf.String()
	return nil
}
