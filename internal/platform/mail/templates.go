package mail

import "fmt"

const verificationHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Email Verification</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 20px auto;">
    <h1>Welcome to the Portal</h1>
    <p>Hi %s,</p>
    <p>Thanks for registering. Please confirm your email address by clicking
    the button below. The link is valid for 24 hours.</p>
    <p><a href="%s" style="display:inline-block;padding:12px 24px;background:#667eea;color:#fff;text-decoration:none;border-radius:4px;">Verify Email</a></p>
    <p>If the button does not work, copy this link into your browser:</p>
    <p>%s</p>
  </div>
</body>
</html>`

const welcomeHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Welcome</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 20px auto;">
    <h1>Email Verified</h1>
    <p>Hi %s,</p>
    <p>Your email address has been verified. Your account is ready and you
    can now log in to the portal.</p>
  </div>
</body>
</html>`

// VerificationLink builds the URL a user follows to verify their email.
// The code travels as an opaque query parameter.
func VerificationLink(baseURL, code string) string {
	return fmt.Sprintf("%s/auth/verify-email?code=%s", baseURL, code)
}

// VerificationMessage renders the email-verification message.
func VerificationMessage(baseURL, name, code string) Message {
	link := VerificationLink(baseURL, code)
	return Message{
		Subject: "Verify your email address",
		HTML:    fmt.Sprintf(verificationHTML, name, link, link),
		Text: fmt.Sprintf("Hi %s,\n\nPlease verify your email address by visiting the link below within 24 hours:\n\n%s\n",
			name, link),
	}
}

// WelcomeMessage renders the post-verification welcome message.
func WelcomeMessage(name string) Message {
	return Message{
		Subject: "Welcome to the Portal",
		HTML:    fmt.Sprintf(welcomeHTML, name),
		Text:    fmt.Sprintf("Hi %s,\n\nYour email address has been verified. You can now log in to the portal.\n", name),
	}
}
