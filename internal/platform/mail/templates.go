package mail

import (
	"bytes"
	"fmt"
	"text/template"
)

var (
	activationTmpl = template.Must(template.New("activation").Parse(
		`Hi {{.Username}},

Your account activation code is {{.Code}}.
Enter it to activate your account.
`))

	forgetPasswordTmpl = template.Must(template.New("forget_password").Parse(
		`Hi {{.Username}},

Your password reset code is {{.Code}}.
If you did not ask for a password reset you can ignore this email.
`))

	commentTmpl = template.Must(template.New("comment").Parse(
		`Hi {{.Author}},

{{.Commenter}} commented on your post "{{.PostTitle}}":

{{.Content}}
`))
)

type otpData struct {
	Username string
	Code     string
}

type commentData struct {
	Author    string
	PostTitle string
	Commenter string
	Content   string
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", t.Name(), err)
	}
	return buf.String(), nil
}
