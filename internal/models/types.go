package models

import "time"

// DataVersion tags the persisted aggregate. A mismatch on load means the stored
// shape predates the code and the whole aggregate is re-seeded; there is no
// migration path for demo data.
const DataVersion = "2025-09-21"

// User is an account that can sign in and author content. Password is plaintext
// demo data and must never leave the store: every read path returns Sanitized().
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// Sanitized returns a copy with the password stripped.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Post is a published article. Author is a display-name snapshot taken at
// creation time, not a reference into the users list.
type Post struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	PublishedAt      time.Time `json:"publishedAt"`
	Category         string    `json:"category"`
	Tags             []string  `json:"tags"`
	Excerpt          string    `json:"excerpt"`
	HeroImage        string    `json:"heroImage"`
	CardImage        string    `json:"cardImage"`
	Body             string    `json:"body"`
	Comments         int       `json:"comments"`
	Status           string    `json:"status"`
	TrendingScore    int       `json:"trendingScore"`
	RecommendedScore int       `json:"recommendedScore"`
}

// HasTag reports whether tag appears in the post's tag list.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PollOption is one choice inside a poll. Value doubles as the option key.
type PollOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Votes int    `json:"votes"`
}

// Poll keeps its options keyed by option value; iteration order is imposed at
// render time, not here.
type Poll struct {
	ID      string                 `json:"id"`
	Title   string                 `json:"title"`
	Options map[string]*PollOption `json:"options"`
}

// Rating is one anonymous rating of a post, appended and never aggregated.
type Rating struct {
	Rating int       `json:"rating"`
	At     time.Time `json:"at"`
}

// Aggregate is the single versioned bundle of durable state. It is loaded once
// at startup and rewritten in full after every mutation.
type Aggregate struct {
	Version               string              `json:"__version"`
	Users                 []User              `json:"users"`
	Posts                 []Post              `json:"posts"`
	Polls                 map[string]*Poll    `json:"polls"`
	NewsletterSubscribers []string            `json:"newsletterSubscribers"`
	Ratings               map[string][]Rating `json:"ratings"`
}
