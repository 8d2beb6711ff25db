package backend

import (
	"strings"
	"sync"

	"github.com/aqala-site/aqala/internal/models"
)

// State owns the aggregate exclusively. Every mutator persists the whole
// aggregate synchronously before returning; readers get copies so nothing
// outside can mutate behind the lock.
type State struct {
	mu      sync.RWMutex
	agg     *models.Aggregate
	persist func(*models.Aggregate)
}

func NewState(agg *models.Aggregate, persist func(*models.Aggregate)) *State {
	if persist == nil {
		persist = func(*models.Aggregate) {}
	}
	return &State{agg: agg, persist: persist}
}

func (s *State) FindUserByEmail(email string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.agg.Users {
		if strings.EqualFold(s.agg.Users[i].Email, email) {
			u := s.agg.Users[i]
			return &u
		}
	}
	return nil
}

func (s *State) FindUserByID(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.agg.Users {
		if s.agg.Users[i].ID == id {
			u := s.agg.Users[i]
			return &u
		}
	}
	return nil
}

func (s *State) AddUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agg.Users = append(s.agg.Users, u)
	s.persist(s.agg)
}

func (s *State) ListPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Post(nil), s.agg.Posts...)
}

func (s *State) FindPostBySlug(slug string) *models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.agg.Posts {
		if s.agg.Posts[i].Slug == slug {
			p := s.agg.Posts[i]
			return &p
		}
	}
	return nil
}

func (s *State) HasSlug(slug string) bool {
	return s.FindPostBySlug(slug) != nil
}

// AddPost prepends so newest-first ordering holds without a sort at read time.
func (s *State) AddPost(p models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agg.Posts = append([]models.Post{p}, s.agg.Posts...)
	s.persist(s.agg)
}

func (s *State) AddRating(slug string, r models.Rating) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.agg.Ratings == nil {
		s.agg.Ratings = map[string][]models.Rating{}
	}
	s.agg.Ratings[slug] = append(s.agg.Ratings[slug], r)
	s.persist(s.agg)
}

func (s *State) GetPoll(id string) *models.Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.agg.Polls[id]
	if !ok {
		return nil
	}
	cp := &models.Poll{ID: p.ID, Title: p.Title, Options: make(map[string]*models.PollOption, len(p.Options))}
	for k, o := range p.Options {
		oc := *o
		cp.Options[k] = &oc
	}
	return cp
}

func (s *State) AddPoll(p *models.Poll) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.agg.Polls == nil {
		s.agg.Polls = map[string]*models.Poll{}
	}
	s.agg.Polls[p.ID] = p
	s.persist(s.agg)
}

func (s *State) IncrementVote(pollID, option string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.agg.Polls[pollID]
	if !ok {
		return false
	}
	o, ok := p.Options[option]
	if !ok {
		return false
	}
	o.Votes++
	s.persist(s.agg)
	return true
}

func (s *State) HasSubscriber(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.agg.NewsletterSubscribers {
		if e == email {
			return true
		}
	}
	return false
}

func (s *State) AddSubscriber(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agg.NewsletterSubscribers = append(s.agg.NewsletterSubscribers, email)
	s.persist(s.agg)
}

// Ratings returns the rating list for a slug, for read paths and tests.
func (s *State) Ratings(slug string) []models.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Rating(nil), s.agg.Ratings[slug]...)
}
