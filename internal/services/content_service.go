package services

import (
	"math/rand"
	"sort"
	"time"

	"github.com/aqala-site/aqala/internal/models"
	"github.com/aqala-site/aqala/internal/utils"
)

// CategoryAll is the sentinel that skips category filtering.
const CategoryAll = "all"

const (
	defaultCategory     = "misc"
	createdArticleImage = "assets/images/article-4.svg"
)

type PostStore interface {
	ListPosts() []models.Post
	FindPostBySlug(slug string) *models.Post
	HasSlug(slug string) bool
	AddPost(p models.Post)
	AddRating(slug string, r models.Rating)
}

type ContentService struct {
	posts  PostStore
	auth   Authenticator
	locale string
	idGen  func(prefix string, n int) string
	now    func() time.Time
	// randScore feeds the demo trending/recommended scores, uniform in [4, 9].
	randScore func() int
}

type ArticleResult struct {
	Message string      `json:"message"`
	Article models.Post `json:"article"`
}

func NewContentService(posts PostStore, auth Authenticator, locale string) *ContentService {
	return &ContentService{
		posts:     posts,
		auth:      auth,
		locale:    locale,
		idGen:     func(prefix string, n int) string { return prefix + shortID(n) },
		now:       func() time.Time { return time.Now().UTC() },
		randScore: func() int { return rand.Intn(6) + 4 },
	}
}

func (s *ContentService) t(key string) string { return utils.T(s.locale, key) }

// GetPosts filters by exact category (skipped for the "all" sentinel) and tag
// membership, newest first. limit 0 means no truncation.
func (s *ContentService) GetPosts(f PostFilter) []models.Post {
	items := s.posts.ListPosts()
	out := make([]models.Post, 0, len(items))
	for _, p := range items {
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if f.Tag != "" && !p.HasTag(f.Tag) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// GetPostBySlug returns the post with that exact slug, or nil.
func (s *ContentService) GetPostBySlug(slug string) *models.Post {
	return s.posts.FindPostBySlug(slug)
}

// CreateArticle publishes immediately under the caller's display name. The
// slug is derived from the title; a collision gets a disambiguating suffix.
func (s *ContentService) CreateArticle(in ArticleInput) (*ArticleResult, error) {
	user, err := s.auth.RequireAuth()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, NewInvalidError(s.t("article.required_fields"))
	}
	slug := Slugify(in.Title)
	if slug == "" {
		slug = s.idGen("article-", 8)
	}
	if s.posts.HasSlug(slug) {
		slug = slug + "-" + shortID(6)
	}
	category := in.Category
	if category == "" {
		category = defaultCategory
	}
	article := models.Post{
		ID:               s.idGen("post-", 8),
		Slug:             slug,
		Title:            in.Title,
		Author:           user.Name,
		PublishedAt:      s.now(),
		Category:         category,
		Tags:             in.Tags.Normalize(),
		Excerpt:          Excerpt(in.Body),
		HeroImage:        createdArticleImage,
		CardImage:        createdArticleImage,
		Body:             NormalizeParagraphs(in.Body),
		Comments:         0,
		Status:           "published",
		TrendingScore:    s.randScore(),
		RecommendedScore: s.randScore(),
	}
	s.posts.AddPost(article)
	return &ArticleResult{Message: s.t("article.published"), Article: article}, nil
}

// RateArticle appends one rating to the post's list. Nothing is aggregated.
func (s *ContentService) RateArticle(in RatingInput) (*Message, error) {
	if in.Rating == 0 {
		return nil, NewInvalidError(s.t("rating.required"))
	}
	post := s.posts.FindPostBySlug(in.Slug)
	if post == nil {
		return nil, NewNotFoundError(s.t("article.not_found"))
	}
	s.posts.AddRating(post.Slug, models.Rating{Rating: in.Rating, At: s.now()})
	return &Message{Message: s.t("rating.thanks")}, nil
}
