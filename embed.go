package identity

import "embed"

// EmailFS carries the email templates shipped with the service.
//
//go:embed templates/emails
var EmailFS embed.FS
