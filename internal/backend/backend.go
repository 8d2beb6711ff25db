package backend

import (
	"github.com/sirupsen/logrus"

	"github.com/aqala-site/aqala/internal/models"
	"github.com/aqala-site/aqala/internal/services"
	"github.com/aqala-site/aqala/internal/session"
	"github.com/aqala-site/aqala/internal/store"
)

// DefaultLocale is the site's shipping language.
const DefaultLocale = "ar"

const defaultSessionSecret = "aqala-dev-secret"

// Options wires the backend's store dependencies. Durable is the preferred
// persistent medium; Ephemeral backs sessions when Durable rejects writes.
// Nil stores default to in-memory, which is the right shape for tests.
type Options struct {
	Durable       store.KV
	Ephemeral     store.KV
	Locale        string
	SessionSecret []byte
	Log           *logrus.Logger
}

// Backend is the single in-process service object behind the site. External
// collaborators call Dispatch (or the read helpers) and render what comes
// back; nothing else touches the aggregate.
type Backend struct {
	state      *State
	aggregates *store.AggregateStore

	Auth       *services.AuthService
	Content    *services.ContentService
	Polls      *services.PollService
	Newsletter *services.NewsletterService

	locale string
	log    *logrus.Logger
	routes map[string]route
}

func New(opts Options) *Backend {
	log := opts.Log
	if log == nil {
		log = logrus.New()
	}
	durable := opts.Durable
	if durable == nil {
		durable = store.NewMemoryKV()
	}
	ephemeral := opts.Ephemeral
	if ephemeral == nil {
		ephemeral = store.NewMemoryKV()
	}
	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	secret := opts.SessionSecret
	if len(secret) == 0 {
		secret = []byte(defaultSessionSecret)
	}

	aggregates := store.NewAggregateStore(durable, log)
	agg := aggregates.Load()
	if agg == nil || agg.Version != models.DataVersion {
		if agg != nil {
			log.WithFields(logrus.Fields{"have": agg.Version, "want": models.DataVersion}).
				Info("stale aggregate version, re-seeding")
		}
		agg = SeedAggregate()
		aggregates.Save(agg)
	}
	state := NewState(agg, aggregates.Save)

	// sessions and vote markers each probe the durable medium independently
	// and degrade to session scope on their own
	sessionKV := store.WithFallback(durable, ephemeral)
	sessions := session.NewManager(sessionKV, secret)
	markers := store.NewVoteMarkers(store.WithFallback(durable, sessionKV))

	auth := services.NewAuthService(state, sessions, locale)
	b := &Backend{
		state:      state,
		aggregates: aggregates,
		Auth:       auth,
		Content:    services.NewContentService(state, auth, locale),
		Polls:      services.NewPollService(state, markers, auth, locale),
		Newsletter: services.NewNewsletterService(state, locale),
		locale:     locale,
		log:        log,
	}
	b.routes = b.buildRoutes()
	return b
}

// CurrentUser exposes the session projection to the rendering layer.
func (b *Backend) CurrentUser() (*models.User, bool) {
	return b.Auth.CurrentUser()
}

// GetPosts is the rendering layer's read path; it bypasses the dispatch table
// the same way the site templates do.
func (b *Backend) GetPosts(f services.PostFilter) []models.Post {
	return b.Content.GetPosts(f)
}

func (b *Backend) GetPostBySlug(slug string) *models.Post {
	return b.Content.GetPostBySlug(slug)
}
