package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/aqala-site/aqala/internal/backend"
	"github.com/aqala-site/aqala/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	b := backend.New(backend.Options{Durable: store.NewMemoryKV(), Log: log})
	mux := http.NewServeMux()
	NewHandler(b, log).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	res, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return res, decodeBody(t, res)
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, map[string]any) {
	t.Helper()
	res, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return res, decodeBody(t, res)
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	defer res.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestPostsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	res, body := get(t, srv, "/api/posts")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if posts := body["posts"].([]any); len(posts) != 6 {
		t.Fatalf("posts = %d", len(posts))
	}

	_, body = get(t, srv, "/api/posts?category=logic&limit=1")
	if posts := body["posts"].([]any); len(posts) != 1 {
		t.Fatalf("filtered posts = %d", len(posts))
	}

	res, body = get(t, srv, "/api/posts/rational-discourse")
	if res.StatusCode != http.StatusOK || body["slug"] != "rational-discourse" {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}

	res, body = get(t, srv, "/api/posts/missing-slug")
	if res.StatusCode != http.StatusNotFound || body["error"] != "not_found" {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}
}

func TestLoginStatusMapping(t *testing.T) {
	srv := newTestServer(t)

	res, body := post(t, srv, "/api/auth/login", `{"email":"admin@aqala.com","password":"wrong"}`)
	if res.StatusCode != http.StatusUnauthorized || body["error"] != "invalid_credentials" {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}

	res, body = post(t, srv, "/api/auth/login", `{"email":"admin@aqala.com","password":"aqala123"}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}
	user := body["user"].(map[string]any)
	if user["email"] != "admin@aqala.com" {
		t.Fatalf("user = %v", user)
	}
	if _, leaked := user["password"]; leaked {
		t.Fatalf("password leaked in response: %v", user)
	}

	res, body = get(t, srv, "/api/me")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d", res.StatusCode)
	}
	if me := body["user"].(map[string]any); me["id"] != "user-admin" {
		t.Fatalf("me = %v", me)
	}
}

func TestDispatchStatusCodes(t *testing.T) {
	srv := newTestServer(t)

	res, body := get(t, srv, "/api/auth/login")
	if res.StatusCode != http.StatusMethodNotAllowed || body["error"] != "method_not_allowed" {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}

	res, body = post(t, srv, "/api/unknown/route", `{}`)
	if res.StatusCode != http.StatusNotFound || body["error"] != "not_found" {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}

	res, body = post(t, srv, "/api/newsletter/subscribe", `{"email":"not-an-email"}`)
	if res.StatusCode != http.StatusBadRequest || body["error"] != "invalid" {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}

	res, body = post(t, srv, "/api/auth/register", `{"fullName":"قارئ","email":"admin@aqala.com","password":"longenough","confirmPassword":"longenough"}`)
	if res.StatusCode != http.StatusConflict || body["error"] != "duplicate_email" {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}

	res, body = post(t, srv, "/api/polls/vote", `not json`)
	if res.StatusCode != http.StatusBadRequest || body["error"] != "invalid" {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}
}

func TestVoteAndResultsOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	res, body := post(t, srv, "/api/polls/vote", `{"pollId":"homepage-theme","theme":"dark"}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("vote status = %d, body = %v", res.StatusCode, body)
	}
	if body["selectedOption"] != "dark" || body["totalVotes"] != float64(79) {
		t.Fatalf("vote body = %v", body)
	}

	res, body = post(t, srv, "/api/polls/vote", `{"pollId":"homepage-theme","theme":"light"}`)
	if res.StatusCode != http.StatusConflict || body["error"] != "already_voted" {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}

	res, body = get(t, srv, "/api/polls/results?pollId=homepage-theme")
	if res.StatusCode != http.StatusOK || body["hasVoted"] != true {
		t.Fatalf("results = %v", body)
	}
}

func TestRatingOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	res, body := post(t, srv, "/api/articles/rational-discourse/rating", `{"rating":5}`)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", res.StatusCode, body)
	}
	if body["message"] == "" {
		t.Fatalf("body = %v", body)
	}
}
