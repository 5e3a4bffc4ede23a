package usecase

import (
	"fmt"
	"html/template"
	"strings"
)

// verificationSubject は認証メールの件名です。
const verificationSubject = "Resume Builder - Email Verification Code"

// verificationBodyTmpl は認証メールのHTML本文テンプレートです。
// コード本体・有効期間・宛先を含みます。
var verificationBodyTmpl = template.Must(template.New("verification_email").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="text-align: center;">Resume Builder</h1>
  <h2 style="text-align: center;">Verify Your Email Address</h2>
  <p>Hi {{.Name}},</p>
  <p>Please use the verification code below to complete your registration.</p>
  <div style="text-align: center; margin: 30px auto; padding: 20px; border: 1px solid #ccc; border-radius: 10px; max-width: 280px;">
    <p style="margin: 0 0 10px 0; text-transform: uppercase; letter-spacing: 1px;">Verification Code</p>
    <h1 style="margin: 0; font-size: 48px; letter-spacing: 8px; font-family: 'Courier New', monospace;">{{.Code}}</h1>
  </div>
  <p><strong>Expires in {{.ExpiresIn}}.</strong> Sent to {{.Email}}.</p>
  <p style="color: #666; font-size: 12px;">If you didn't create an account with Resume Builder, please ignore this email.</p>
</div>
`))

// buildVerificationEmail は認証コードメールの件名と本文を組み立てます。
func buildVerificationEmail(name, email, code string) (subject, body string, err error) {
	var sb strings.Builder
	data := struct {
		Name      string
		Email     string
		Code      string
		ExpiresIn string
	}{
		Name:      name,
		Email:     email,
		Code:      code,
		ExpiresIn: fmt.Sprintf("%d minutes", int(CodeTTL.Minutes())),
	}
	if err := verificationBodyTmpl.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("failed to render verification email: %w", err)
	}
	return verificationSubject, sb.String(), nil
}
