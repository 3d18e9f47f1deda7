package email

import (
	"bytes"
	"html/template"
	"strings"
)

var contactTemplate = template.Must(template.New("contact").Parse(`<h2>Nuevo mensaje de contacto</h2>
<p><strong>Nombre:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Asunto:</strong> {{.Subject}}</p>
<hr>
<p><strong>Mensaje:</strong></p>
<p>{{.Body}}</p>
`))

type ContactFields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactHTML renders the contact notification. Field values are escaped and
// message line breaks become <br>.
func ContactHTML(f ContactFields) (string, error) {
	body := strings.ReplaceAll(template.HTMLEscapeString(f.Message), "\n", "<br>")
	var buf bytes.Buffer
	err := contactTemplate.Execute(&buf, struct {
		ContactFields
		Body template.HTML
	}{f, template.HTML(body)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
