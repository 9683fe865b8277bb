package mailer

import "fmt"

func VerificationEmail(code string) (subject, html string) {
	return "Verify your email", fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:auto">
			<h2>Verify your email</h2>
			<p>Enter the code below to verify your account. It expires in 24 hours.</p>
			<p style="font-size:28px;letter-spacing:6px;font-weight:bold">%s</p>
		</div>`, code)
}

func WelcomeEmail(name string) (subject, html string) {
	return "Welcome to FoodCourt", fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:auto">
			<h2>Welcome, %s!</h2>
			<p>Your email is verified. Browse restaurants and place your first order.</p>
		</div>`, name)
}

func PasswordResetEmail(resetURL string) (subject, html string) {
	return "Reset your password", fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:auto">
			<h2>Reset your password</h2>
			<p>Click the link below to choose a new password. The link expires in 1 hour.</p>
			<p><a href="%s">Reset password</a></p>
			<p>If you did not request this, you can ignore this email.</p>
		</div>`, resetURL)
}

func PasswordResetSuccessEmail() (subject, html string) {
	return "Your password was changed", `
		<div style="font-family:Arial,sans-serif;max-width:600px;margin:auto">
			<h2>Password changed</h2>
			<p>Your password was reset successfully. If this wasn't you, contact support immediately.</p>
		</div>`
}
