package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TagList accepts tags either pre-split or as one delimiter-separated string,
// the two shapes the admin form submits.
type TagList struct {
	List []string
	Text string
}

func (t *TagList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		t.List = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		t.Text = s
		return nil
	}
	return fmt.Errorf("tags must be a string or an array of strings")
}

func (t TagList) MarshalJSON() ([]byte, error) {
	if t.List != nil {
		return json.Marshal(t.List)
	}
	return json.Marshal(t.Text)
}

// commas covers the plain and the Arabic comma.
var commas = regexp.MustCompile(`[,،]`)

// Normalize resolves the final tag slice: a pre-split list keeps its order
// with blanks dropped, a raw string is split on commas and trimmed.
func (t TagList) Normalize() []string {
	src := t.List
	if src == nil {
		src = commas.Split(t.Text, -1)
	}
	out := make([]string, 0, len(src))
	for _, tag := range src {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

type SubscribeInput struct {
	Email string `json:"email"`
}

type VoteInput struct {
	PollID string `json:"pollId"`
	Option string `json:"theme"`
}

type ArticleInput struct {
	Title    string  `json:"title" validate:"required"`
	Body     string  `json:"body" validate:"required"`
	Category string  `json:"category"`
	Tags     TagList `json:"tags"`
}

type CreatePollInput struct {
	Question string `json:"question" validate:"required"`
	Options  string `json:"options" validate:"required"`
}

type CreateUserInput struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Role     string `json:"role"`
}

type RatingInput struct {
	Slug   string `json:"-"`
	Rating int    `json:"rating" validate:"required"`
}

// PostFilter narrows and truncates a post listing. Zero values skip their
// filter; the category sentinel "all" does too.
type PostFilter struct {
	Category string
	Tag      string
	Limit    int
}

// validationKey maps the first failed validator tag to a message key. The
// keyByTag table lets each operation keep its own wording while tag semantics
// stay uniform.
func validationKey(err error, keyByTag map[string]string, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if k, ok := keyByTag[verrs[0].Tag()]; ok {
			return k
		}
	}
	return fallback
}
