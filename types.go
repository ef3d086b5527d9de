package siteworks

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// ContactStatus tells the contact template what to show after a submission.
type ContactStatus string

const (
	ContactIdle        ContactStatus = ""
	ContactSent        ContactStatus = "sent"
	ContactInvalid     ContactStatus = "invalid"
	ContactRateLimited ContactStatus = "rate-limited"
)
