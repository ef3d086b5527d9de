package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TeamMember is one person from the team directory. Content holds the
// rendered HTML of the file body.
type TeamMember struct {
	Slug     string
	Name     string
	Role     string
	Bio      string
	Image    string
	Tags     []string
	LinkedIn string
	GitHub   string
	Email    string
	Order    int
	Featured bool
	Content  string
}

// Metric is a headline value/label pair shown on a case study card.
type Metric struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Testimonial is an optional client quote attached to a case study.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

// CaseStudy is one project from the case-studies directory.
type CaseStudy struct {
	Slug         string
	Title        string
	Client       string
	Description  string
	Excerpt      string
	Challenge    string
	Outcome      string
	CoverImage   string
	Image        string
	Tags         []string
	Featured     bool
	PublishedAt  string
	Industry     string
	Duration     string
	Services     []string
	Metrics      []Metric
	Technologies []string
	Testimonial  *Testimonial
	Content      string
}

// BlogPost is one article from the blog directory.
type BlogPost struct {
	Slug        string
	Title       string
	Excerpt     string
	Description string
	Author      string
	AuthorRole  string
	PublishedAt string
	ReadTime    string
	Tags        []string
	Category    string
	CoverImage  string
	Image       string
	Featured    bool
	Content     string
}

// Frontmatter envelopes. Each kind validates its required fields at the
// parse boundary so a malformed file becomes a reportable parse failure
// instead of a half-populated item.

type teamFrontmatter struct {
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	Bio      string   `yaml:"bio"`
	Image    string   `yaml:"image"`
	Tags     []string `yaml:"tags"`
	LinkedIn string   `yaml:"linkedin"`
	GitHub   string   `yaml:"github"`
	Email    string   `yaml:"email"`
	Order    int      `yaml:"order"`
	Featured bool     `yaml:"featured"`
}

func (f *teamFrontmatter) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Role, validation.Required),
		validation.Field(&f.Bio, validation.Required),
	)
}

type caseStudyFrontmatter struct {
	Title        string       `yaml:"title"`
	Client       string       `yaml:"client"`
	Description  string       `yaml:"description"`
	Excerpt      string       `yaml:"excerpt"`
	Challenge    string       `yaml:"challenge"`
	Outcome      string       `yaml:"outcome"`
	CoverImage   string       `yaml:"coverImage"`
	Image        string       `yaml:"image"`
	Tags         []string     `yaml:"tags"`
	Featured     bool         `yaml:"featured"`
	PublishedAt  string       `yaml:"publishedAt"`
	Industry     string       `yaml:"industry"`
	Duration     string       `yaml:"duration"`
	Services     []string     `yaml:"services"`
	Metrics      []Metric     `yaml:"metrics"`
	Technologies []string     `yaml:"technologies"`
	Testimonial  *Testimonial `yaml:"testimonial"`
}

func (f *caseStudyFrontmatter) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Client, validation.Required),
		validation.Field(&f.Description, validation.Required),
		validation.Field(&f.Challenge, validation.Required),
		validation.Field(&f.Outcome, validation.Required),
		validation.Field(&f.PublishedAt, validation.Required),
	)
}

type blogPostFrontmatter struct {
	Title       string   `yaml:"title"`
	Excerpt     string   `yaml:"excerpt"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	AuthorRole  string   `yaml:"authorRole"`
	PublishedAt string   `yaml:"publishedAt"`
	ReadTime    string   `yaml:"readTime"`
	Tags        []string `yaml:"tags"`
	Category    string   `yaml:"category"`
	CoverImage  string   `yaml:"coverImage"`
	Image       string   `yaml:"image"`
	Featured    bool     `yaml:"featured"`
}

func (f *blogPostFrontmatter) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Excerpt, validation.Required),
		validation.Field(&f.Author, validation.Required),
		validation.Field(&f.PublishedAt, validation.Required),
	)
}
