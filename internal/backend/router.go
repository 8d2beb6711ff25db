package backend

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/aqala-site/aqala/internal/services"
	"github.com/aqala-site/aqala/internal/utils"
)

// Payload carries every field any operation accepts; each route reads the
// ones it cares about. This mirrors the request bodies the site's forms
// submit.
type Payload struct {
	Email           string            `json:"email,omitempty"`
	Password        string            `json:"password,omitempty"`
	FullName        string            `json:"fullName,omitempty"`
	Name            string            `json:"name,omitempty"`
	ConfirmPassword string            `json:"confirmPassword,omitempty"`
	PasswordConfirm string            `json:"passwordConfirm,omitempty"`
	PollID          string            `json:"pollId,omitempty"`
	Theme           string            `json:"theme,omitempty"`
	Title           string            `json:"title,omitempty"`
	Category        string            `json:"category,omitempty"`
	Tags            services.TagList  `json:"tags,omitempty"`
	Body            string            `json:"body,omitempty"`
	Question        string            `json:"question,omitempty"`
	Options         string            `json:"options,omitempty"`
	Role            string            `json:"role,omitempty"`
	Rating          int               `json:"rating,omitempty"`
}

type route struct {
	// method restricts the route when non-empty; empty accepts any method.
	method string
	handle func(query url.Values, p Payload) (any, error)
}

var ratingPath = regexp.MustCompile(`^/articles/(.+)/rating$`)

func (b *Backend) buildRoutes() map[string]route {
	return map[string]route{
		"/auth/login": {method: "POST", handle: func(_ url.Values, p Payload) (any, error) {
			return b.Auth.Login(services.LoginInput{Email: p.Email, Password: p.Password})
		}},
		"/auth/register": {method: "POST", handle: func(_ url.Values, p Payload) (any, error) {
			return b.Auth.Register(services.RegisterInput{
				FullName:        firstNonEmpty(p.FullName, p.Name),
				Email:           p.Email,
				Password:        p.Password,
				ConfirmPassword: firstNonEmpty(p.ConfirmPassword, p.PasswordConfirm),
			})
		}},
		"/auth/logout": {handle: func(_ url.Values, _ Payload) (any, error) {
			return b.Auth.Logout(), nil
		}},
		"/newsletter/subscribe": {handle: func(_ url.Values, p Payload) (any, error) {
			return b.Newsletter.Subscribe(services.SubscribeInput{Email: p.Email})
		}},
		"/polls/vote": {handle: func(_ url.Values, p Payload) (any, error) {
			return b.Polls.Vote(services.VoteInput{PollID: p.PollID, Option: p.Theme})
		}},
		"/polls/results": {handle: func(query url.Values, p Payload) (any, error) {
			pollID := firstNonEmpty(query.Get("pollId"), p.PollID, DefaultPollID)
			return b.Polls.Results(pollID, "")
		}},
		"/admin/articles": {method: "POST", handle: func(_ url.Values, p Payload) (any, error) {
			return b.Content.CreateArticle(services.ArticleInput{
				Title:    p.Title,
				Body:     p.Body,
				Category: p.Category,
				Tags:     p.Tags,
			})
		}},
		"/admin/polls": {handle: func(_ url.Values, p Payload) (any, error) {
			return b.Polls.Create(services.CreatePollInput{Question: p.Question, Options: p.Options})
		}},
		"/admin/users": {handle: func(_ url.Values, p Payload) (any, error) {
			return b.Auth.CreateUser(services.CreateUserInput{FullName: p.FullName, Email: p.Email, Role: p.Role})
		}},
	}
}

// Dispatch is the sole entry point external callers use. The endpoint may
// carry a query string; the method is matched case-insensitively. Routing
// itself only ever fails with MethodNotAllowed or NotFound — everything else
// comes from the operation.
func (b *Backend) Dispatch(endpoint, method string, p Payload) (any, error) {
	path, rawQuery, _ := strings.Cut(endpoint, "?")
	query, _ := url.ParseQuery(rawQuery)

	if r, ok := b.routes[path]; ok {
		if r.method != "" && r.method != strings.ToUpper(method) {
			return nil, services.NewMethodNotAllowedError(utils.T(b.locale, "route.method_not_allowed"))
		}
		return r.handle(query, p)
	}
	if m := ratingPath.FindStringSubmatch(path); m != nil {
		return b.Content.RateArticle(services.RatingInput{Slug: m[1], Rating: p.Rating})
	}
	return nil, services.NewNotFoundError(utils.T(b.locale, "route.not_found"))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
