package backend

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/aqala-site/aqala/internal/models"
	"github.com/aqala-site/aqala/internal/services"
	"github.com/aqala-site/aqala/internal/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestBackend() (*Backend, *store.MemoryKV) {
	durable := store.NewMemoryKV()
	b := New(Options{Durable: durable, Log: quietLogger()})
	return b, durable
}

func TestNewSeedsEmptyStore(t *testing.T) {
	b, durable := newTestBackend()

	posts := b.GetPosts(services.PostFilter{})
	if len(posts) != 6 {
		t.Fatalf("seeded posts = %d, want 6", len(posts))
	}
	if posts[0].Slug != "rational-discourse" {
		t.Fatalf("newest seeded post = %q", posts[0].Slug)
	}

	raw, ok := durable.Get(store.AggregateKey)
	if !ok {
		t.Fatalf("seed must be persisted immediately")
	}
	var agg models.Aggregate
	if err := json.Unmarshal([]byte(raw), &agg); err != nil {
		t.Fatalf("persisted aggregate unreadable: %v", err)
	}
	if agg.Version != models.DataVersion {
		t.Fatalf("persisted version = %q", agg.Version)
	}
	if len(agg.Users) != 2 {
		t.Fatalf("seeded users = %d", len(agg.Users))
	}
}

func TestNewReloadsMatchingVersion(t *testing.T) {
	durable := store.NewMemoryKV()
	first := New(Options{Durable: durable, Log: quietLogger()})

	if _, err := first.Dispatch("/newsletter/subscribe", "POST", Payload{Email: "reader@aqala.com"}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	second := New(Options{Durable: durable, Log: quietLogger()})
	res, err := second.Dispatch("/newsletter/subscribe", "POST", Payload{Email: "reader@aqala.com"})
	if err != nil {
		t.Fatalf("subscribe after reload: %v", err)
	}
	msg := res.(*services.Message)
	if msg.Message != "أنت مشترك بالفعل في النشرة" {
		t.Fatalf("reloaded aggregate lost the subscriber: %q", msg.Message)
	}
}

func TestNewReseedsOnVersionMismatch(t *testing.T) {
	durable := store.NewMemoryKV()
	stale := &models.Aggregate{Version: "2020-01-01", Users: []models.User{{ID: "user-x", Email: "x@aqala.com"}}}
	raw, _ := json.Marshal(stale)
	if err := durable.Set(store.AggregateKey, string(raw)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	b := New(Options{Durable: durable, Log: quietLogger()})
	if len(b.GetPosts(services.PostFilter{})) != 6 {
		t.Fatalf("stale aggregate must be replaced by the seed")
	}
	if _, err := b.Dispatch("/auth/login", "POST", Payload{Email: "x@aqala.com", Password: ""}); services.CodeOf(err) != services.ErrorInvalidCredentials {
		t.Fatalf("stale users must be gone, err = %v", err)
	}
}

func TestLoginFlowThroughDispatch(t *testing.T) {
	b, _ := newTestBackend()

	if _, ok := b.CurrentUser(); ok {
		t.Fatalf("no user expected before login")
	}

	res, err := b.Dispatch("/auth/login", "POST", Payload{Email: "admin@aqala.com", Password: "aqala123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	auth := res.(*services.AuthResult)
	if auth.User.ID != "user-admin" || auth.User.Password != "" {
		t.Fatalf("login result = %+v", auth.User)
	}

	cur, ok := b.CurrentUser()
	if !ok || cur.ID != "user-admin" {
		t.Fatalf("CurrentUser after login = %+v, %v", cur, ok)
	}

	if _, err := b.Dispatch("/auth/logout", "POST", Payload{}); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := b.CurrentUser(); ok {
		t.Fatalf("user still present after logout")
	}
}

func TestVoteFlowPersistsMarkerAndCount(t *testing.T) {
	b, durable := newTestBackend()

	res, err := b.Dispatch("/polls/vote", "POST", Payload{PollID: DefaultPollID, Theme: "sepia"})
	if err != nil {
		t.Fatalf("vote: %v", err)
	}
	results := res.(*services.PollResults)
	if !results.HasVoted || results.SelectedOption != "sepia" || results.TotalVotes != 79 {
		t.Fatalf("vote results = %+v", results)
	}

	if _, err := b.Dispatch("/polls/vote", "POST", Payload{PollID: DefaultPollID, Theme: "light"}); services.CodeOf(err) != services.ErrorAlreadyVoted {
		t.Fatalf("second vote err = %v", err)
	}

	if _, ok := durable.Get(store.VoteMarkerPrefix + DefaultPollID); !ok {
		t.Fatalf("vote marker missing from durable store")
	}

	// the marker lives outside the aggregate: a rebuilt backend over the same
	// storage still refuses a second vote
	again := New(Options{Durable: durable, Log: quietLogger()})
	if _, err := again.Dispatch("/polls/vote", "POST", Payload{PollID: DefaultPollID, Theme: "dark"}); services.CodeOf(err) != services.ErrorAlreadyVoted {
		t.Fatalf("vote after reload err = %v", err)
	}
}

func TestCreateArticleFlow(t *testing.T) {
	b, _ := newTestBackend()

	if _, err := b.Dispatch("/admin/articles", "POST", Payload{Title: "جديد", Body: "نص"}); services.CodeOf(err) != services.ErrorUnauthenticated {
		t.Fatalf("unauthenticated err = %v", err)
	}

	if _, err := b.Dispatch("/auth/login", "POST", Payload{Email: "admin2@aqala.com", Password: "secure123"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	res, err := b.Dispatch("/admin/articles", "POST", Payload{Title: "Fresh Take", Body: "content", Category: "logic"})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}
	article := res.(*services.ArticleResult).Article
	if article.Author != "أمجد المشرف" {
		t.Fatalf("author snapshot = %q", article.Author)
	}

	posts := b.GetPosts(services.PostFilter{Category: "logic"})
	if posts[0].Slug != "fresh-take" {
		t.Fatalf("new article must lead the listing: %+v", posts[0])
	}
	if got := b.GetPostBySlug("fresh-take"); got == nil || got.ID != article.ID {
		t.Fatalf("GetPostBySlug = %+v", got)
	}
}

func TestRatingFlow(t *testing.T) {
	b, _ := newTestBackend()
	res, err := b.Dispatch("/articles/rational-discourse/rating", "POST", Payload{Rating: 5})
	if err != nil {
		t.Fatalf("rating: %v", err)
	}
	if res.(*services.Message).Message != "شكراً لتقييمك المحتوى" {
		t.Fatalf("rating message = %+v", res)
	}
	if got := b.state.Ratings("rational-discourse"); len(got) != 1 || got[0].Rating != 5 {
		t.Fatalf("ratings = %+v", got)
	}
}
