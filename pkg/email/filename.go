package email

import "github.com/dmitrymomot/mailforge/pkg/slug"

const (
	defaultFilename   = "email"
	maxFilenameLength = 80
)

// Filename returns the download name for an email with the given subject,
// for example "spring-sale-0-apr.html". An empty slug yields "email.html".
func Filename(subject string) string {
	name := slug.Make(subject, slug.MaxLength(maxFilenameLength), slug.Replace("&", "and"))
	if name == "" {
		name = defaultFilename
	}
	return name + ".html"
}
