package content

import "errors"

// ErrNotFound is returned when a slug does not match any record.
var ErrNotFound = errors.New("not found")

// Prompt is a single entry of the prompt library.
type Prompt struct {
	ID             string   `yaml:"id" json:"id"`
	Slug           string   `yaml:"slug" json:"slug"`
	Title          string   `yaml:"title" json:"title"`
	Description    string   `yaml:"description" json:"description"`
	Prompt         string   `yaml:"prompt" json:"prompt"`
	Category       string   `yaml:"category" json:"category"`
	Tags           []string `yaml:"tags" json:"tags"`
	PreviewImage   string   `yaml:"preview_image" json:"previewImage"`
	OriginalImages []string `yaml:"original_images,omitempty" json:"originalImages,omitempty"`
	// UpdatedAt is a YYYY-MM-DD date; empty means the build date.
	UpdatedAt string `yaml:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// PrimaryTag returns the tag used for gallery filtering, falling back to
// the category.
func (p Prompt) PrimaryTag() string {
	if len(p.Tags) > 0 {
		return p.Tags[0]
	}
	return p.Category
}

// HasTag reports whether the prompt carries tag (or has it as category).
func (p Prompt) HasTag(tag string) bool {
	if p.Category == tag {
		return true
	}
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// TutorialCategory is the editorial grouping shown on tutorial badges.
type TutorialCategory string

const (
	CategoryBeginner     TutorialCategory = "Beginner"
	CategoryIntermediate TutorialCategory = "Intermediate"
	CategoryAdvanced     TutorialCategory = "Advanced"
	CategoryMarketing    TutorialCategory = "Marketing"
	CategoryCinematic    TutorialCategory = "Cinematic"
)

// Difficulty is the skill level a tutorial targets.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists the difficulty levels in reading order.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ChangeFrequency is the sitemap changefreq value.
type ChangeFrequency string

const (
	ChangeAlways  ChangeFrequency = "always"
	ChangeHourly  ChangeFrequency = "hourly"
	ChangeDaily   ChangeFrequency = "daily"
	ChangeWeekly  ChangeFrequency = "weekly"
	ChangeMonthly ChangeFrequency = "monthly"
	ChangeYearly  ChangeFrequency = "yearly"
	ChangeNever   ChangeFrequency = "never"
)

// Valid reports whether f is one of the sitemap protocol values.
func (f ChangeFrequency) Valid() bool {
	switch f {
	case ChangeAlways, ChangeHourly, ChangeDaily, ChangeWeekly, ChangeMonthly, ChangeYearly, ChangeNever:
		return true
	}
	return false
}

// PageUpdate tracks when a URL last changed, for sitemap generation.
type PageUpdate struct {
	URL             string          `yaml:"url" json:"url"`
	LastModified    string          `yaml:"last_modified" json:"lastModified"`
	ChangeFrequency ChangeFrequency `yaml:"change_frequency" json:"changeFrequency"`
	Priority        float64         `yaml:"priority" json:"priority"`
}

// Author is the byline of a tutorial.
type Author struct {
	Name      string `yaml:"name" json:"name"`
	Avatar    string `yaml:"avatar" json:"avatar"`
	Bio       string `yaml:"bio" json:"bio"`
	Followers string `yaml:"followers" json:"followers"`
	Expertise string `yaml:"expertise" json:"expertise"`
}

// TOCItem is one entry of a tutorial's table of contents. ID is the
// anchor of the matching heading in the body.
type TOCItem struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Level int    `yaml:"level" json:"level"`
}

// Hero is the cover block at the top of a tutorial.
type Hero struct {
	Image          string `yaml:"image" json:"image"`
	ImageAlt       string `yaml:"image_alt" json:"imageAlt"`
	Badge          string `yaml:"badge" json:"badge"`
	BadgeIcon      string `yaml:"badge_icon,omitempty" json:"badgeIcon,omitempty"`
	GradientColors string `yaml:"gradient_colors" json:"gradientColors"`
}

// SEO holds per-tutorial search metadata.
type SEO struct {
	Keywords string `yaml:"keywords" json:"keywords"`
	OGImage  string `yaml:"og_image" json:"ogImage"`
}

// CommentAuthor is the avatar information of a comment.
type CommentAuthor struct {
	Name      string `yaml:"name" json:"name"`
	Initials  string `yaml:"initials" json:"initials"`
	BgColor   string `yaml:"bg_color" json:"bgColor"`
	TextColor string `yaml:"text_color" json:"textColor"`
}

// Comment is a reader review shown under a tutorial.
type Comment struct {
	ID      string        `yaml:"id" json:"id"`
	Author  CommentAuthor `yaml:"author" json:"author"`
	Rating  int           `yaml:"rating" json:"rating"`
	Date    string        `yaml:"date" json:"date"`
	Content string        `yaml:"content" json:"content"`
	Likes   int           `yaml:"likes" json:"likes"`
}

// NavLink is a previous/next tutorial link.
type NavLink struct {
	Href  string `yaml:"href" json:"href"`
	Label string `yaml:"label" json:"label"`
}

// Navigation holds the optional previous and next links of a tutorial.
type Navigation struct {
	Prev *NavLink `yaml:"prev,omitempty" json:"prev,omitempty"`
	Next *NavLink `yaml:"next,omitempty" json:"next,omitempty"`
}

// Tutorial is a long-form guide page.
type Tutorial struct {
	ID               string           `yaml:"id" json:"id"`
	Slug             string           `yaml:"slug" json:"slug"`
	Order            int              `yaml:"order" json:"order"`
	Title            string           `yaml:"title" json:"title"`
	Description      string           `yaml:"description" json:"description"`
	Author           *Author          `yaml:"author,omitempty" json:"author"`
	Category         TutorialCategory `yaml:"category" json:"category"`
	Difficulty       Difficulty       `yaml:"difficulty" json:"difficulty"`
	Tags             []string         `yaml:"tags" json:"tags"`
	ReadTime         string           `yaml:"read_time" json:"readTime"`
	Rating           float64          `yaml:"rating" json:"rating"`
	RatingCount      int              `yaml:"rating_count" json:"ratingCount"`
	Views            string           `yaml:"views" json:"views"`
	PublishedAt      string           `yaml:"published_at" json:"publishedAt"`
	UpdatedAt        string           `yaml:"updated_at" json:"updatedAt"`
	TableOfContents  []TOCItem        `yaml:"table_of_contents" json:"tableOfContents"`
	RelatedTutorials []string         `yaml:"related_tutorials" json:"relatedTutorials"`
	Hero             Hero             `yaml:"hero" json:"hero"`
	SEO              SEO              `yaml:"seo" json:"seo"`
	Comments         []Comment        `yaml:"comments,omitempty" json:"comments,omitempty"`
	Navigation       Navigation       `yaml:"navigation" json:"navigation"`

	// Body is the Markdown source loaded from tutorials/<slug>.md.
	Body string `yaml:"-" json:"-"`
}

// Path returns the site path of the tutorial.
func (t Tutorial) Path() string {
	return "/tutorials/" + t.Slug
}

// DisplayComments returns the tutorial's comments, or the stock comments
// when none were authored.
func (t Tutorial) DisplayComments() []Comment {
	if len(t.Comments) > 0 {
		return t.Comments
	}
	return DefaultComments
}

// DefaultAuthor is used for tutorials without an explicit byline.
var DefaultAuthor = Author{
	Name:      "Dr. Emily Rodriguez",
	Avatar:    "/placeholder.svg?height=40&width=40",
	Bio:       "AI Research Specialist & Google Developer Expert",
	Followers: "18.2k",
	Expertise: "Computer Vision, AI Image Processing",
}

// DefaultComments are shown on tutorials that have no comments of their own.
var DefaultComments = []Comment{
	{
		ID: "1",
		Author: CommentAuthor{
			Name:      "Maria Johnson",
			Initials:  "MJ",
			BgColor:   "bg-blue-100",
			TextColor: "text-blue-600",
		},
		Rating:  5,
		Date:    "3 days ago",
		Content: "This tutorial is absolutely fantastic! The step-by-step approach and real examples made all the difference.",
		Likes:   24,
	},
	{
		ID: "2",
		Author: CommentAuthor{
			Name:      "David Kim",
			Initials:  "DK",
			BgColor:   "bg-green-100",
			TextColor: "text-green-600",
		},
		Rating:  5,
		Date:    "1 week ago",
		Content: "Excellent content! This has completely transformed my workflow. Thank you for the detailed explanations!",
		Likes:   18,
	},
}
