package impl

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"pymerp/internal/domain/entity"
	"pymerp/internal/domain/service"
	"pymerp/internal/errors"
)

type operatorMailText struct {
	Subject, Title, Intro, Name, Email, Business, WhatsApp, Plan, Date, NotSpecified, Footer string
}

type credentialsMailText struct {
	Subject, Welcome, Approved, Credentials, Email, TempPassword, Important, ChangePassword,
	AccessButton, Questions, Regards, Team string
}

var operatorTexts = map[string]operatorMailText{
	"es": {
		Subject: "Nueva solicitud de acceso - pymerp.cl", Title: "Nueva solicitud de acceso",
		Intro: "Se ha recibido una nueva solicitud de acceso a la plataforma:",
		Name:  "Nombre", Email: "Email", Business: "Emprendimiento", WhatsApp: "WhatsApp",
		Plan: "Plan solicitado", Date: "Fecha", NotSpecified: "No especificado",
		Footer: "Por favor, revisa la solicitud en el panel de administración.",
	},
	"en": {
		Subject: "New access request - pymerp.cl", Title: "New Access Request",
		Intro: "A new access request has been received for the platform:",
		Name:  "Name", Email: "Email", Business: "Business", WhatsApp: "WhatsApp",
		Plan: "Requested Plan", Date: "Date", NotSpecified: "Not specified",
		Footer: "Please review the request in the administration panel.",
	},
}

var credentialsTexts = map[string]credentialsMailText{
	"es": {
		Subject: "Tu acceso a pymerp.cl ha sido aprobado", Welcome: "¡Bienvenido a pymerp.cl!",
		Approved:    "Tu solicitud de acceso ha sido aprobada. Ya puedes acceder a la plataforma.",
		Credentials: "Credenciales de acceso:", Email: "Email", TempPassword: "Contraseña temporal",
		Important:      "Importante:",
		ChangePassword: "Por seguridad, deberás cambiar tu contraseña al iniciar sesión por primera vez.",
		AccessButton:   "Acceder a pymerp.cl", Questions: "Si tienes alguna pregunta, no dudes en contactarnos.",
		Regards: "Saludos,", Team: "El equipo de pymerp.cl",
	},
	"en": {
		Subject: "Your access to pymerp.cl has been approved", Welcome: "Welcome to pymerp.cl!",
		Approved:    "Your access request has been approved. You can now access the platform.",
		Credentials: "Access credentials:", Email: "Email", TempPassword: "Temporary password",
		Important:      "Important:",
		ChangePassword: "For security reasons, you will need to change your password when you first log in.",
		AccessButton:   "Access pymerp.cl", Questions: "If you have any questions, feel free to contact us.",
		Regards: "Best regards,", Team: "The pymerp.cl team",
	},
}

var (
	operatorHTML = htmltemplate.Must(htmltemplate.New("operator").Parse(`<h2>{{.T.Title}}</h2>
<p>{{.T.Intro}}</p>
<ul>
  <li><strong>{{.T.Name}}:</strong> {{.Req.FullName}}</li>
  <li><strong>{{.T.Email}}:</strong> {{.Req.Email}}</li>
  <li><strong>{{.T.Business}}:</strong> {{.Req.BusinessName}}</li>
  <li><strong>{{.T.WhatsApp}}:</strong> {{.Req.WhatsApp}}</li>
  <li><strong>{{.T.Plan}}:</strong> {{if .Req.Plan}}{{.Req.Plan}}{{else}}{{.T.NotSpecified}}{{end}}</li>
  <li><strong>{{.T.Date}}:</strong> {{.Date}}</li>
</ul>
<p>{{.T.Footer}}</p>
`))

	operatorText = texttemplate.Must(texttemplate.New("operator").Parse(`{{.T.Title}}

{{.T.Name}}: {{.Req.FullName}}
{{.T.Email}}: {{.Req.Email}}
{{.T.Business}}: {{.Req.BusinessName}}
{{.T.WhatsApp}}: {{.Req.WhatsApp}}
{{.T.Plan}}: {{if .Req.Plan}}{{.Req.Plan}}{{else}}{{.T.NotSpecified}}{{end}}
{{.T.Date}}: {{.Date}}

{{.T.Footer}}
`))

	credentialsHTML = htmltemplate.Must(htmltemplate.New("credentials").Parse(`<h2>{{.T.Welcome}}</h2>
<p>{{.T.Approved}}</p>
<p><strong>{{.T.Credentials}}</strong></p>
<ul>
  <li><strong>{{.T.Email}}:</strong> {{.Email}}</li>
  <li><strong>{{.T.TempPassword}}:</strong> {{.Password}}</li>
</ul>
<p><strong>{{.T.Important}}</strong> {{.T.ChangePassword}}</p>
<p>
  <a href="{{.LoginURL}}" style="display: inline-block; padding: 12px 24px; background-color: #2563eb; color: white; text-decoration: none; border-radius: 6px; margin-top: 16px;">{{.T.AccessButton}}</a>
</p>
<p>{{.T.Questions}}</p>
<p>{{.T.Regards}}<br>{{.T.Team}}</p>
`))

	credentialsText = texttemplate.Must(texttemplate.New("credentials").Parse(`{{.T.Welcome}}

{{.T.Approved}}

{{.T.Credentials}}
{{.T.Email}}: {{.Email}}
{{.T.TempPassword}}: {{.Password}}

{{.T.Important}} {{.T.ChangePassword}}

{{.T.AccessButton}}: {{.LoginURL}}

{{.T.Questions}}

{{.T.Regards}}
{{.T.Team}}
`))
)

func render(data any, html *htmltemplate.Template, text *texttemplate.Template) (string, string, error) {
	var h, t bytes.Buffer
	if err := html.Execute(&h, data); err != nil {
		return "", "", errors.Wrap(err, "render html body")
	}
	if err := text.Execute(&t, data); err != nil {
		return "", "", errors.Wrap(err, "render text body")
	}

	return h.String(), t.String(), nil
}

var santiago = func() *time.Location {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		return time.UTC
	}

	return loc
}()

func formatMailDate(at time.Time, lang string) string {
	at = at.In(santiago)
	if lang == "en" {
		return at.Format("1/2/2006, 3:04:05 PM")
	}

	return at.Format("02-01-2006, 15:04:05")
}

func buildOperatorMail(adminEmail string, req *entity.AccessRequest, at time.Time) (*service.Mail, error) {
	lang := normalizeLanguage(req.Language)
	t := operatorTexts[lang]

	html, text, err := render(struct {
		T    operatorMailText
		Req  *entity.AccessRequest
		Date string
	}{T: t, Req: req, Date: formatMailDate(at, lang)}, operatorHTML, operatorText)
	if err != nil {
		return nil, err
	}

	return &service.Mail{To: adminEmail, Subject: t.Subject, HTML: html, Text: text}, nil
}

func buildCredentialsMail(email, password, loginURL, lang string) (*service.Mail, error) {
	t := credentialsTexts[normalizeLanguage(lang)]

	html, text, err := render(struct {
		T        credentialsMailText
		Email    string
		Password string
		LoginURL string
	}{T: t, Email: email, Password: password, LoginURL: strings.TrimSpace(loginURL)}, credentialsHTML, credentialsText)
	if err != nil {
		return nil, err
	}

	return &service.Mail{To: email, Subject: t.Subject, HTML: html, Text: text}, nil
}
