package services

import (
	"regexp"
	"strings"

	"github.com/aqala-site/aqala/internal/utils"
)

// emailShape is the local@domain.tld check the subscribe form relies on.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SubscriberStore interface {
	HasSubscriber(email string) bool
	AddSubscriber(email string)
}

type NewsletterService struct {
	subscribers SubscriberStore
	locale      string
}

func NewNewsletterService(subscribers SubscriberStore, locale string) *NewsletterService {
	return &NewsletterService{subscribers: subscribers, locale: locale}
}

// Subscribe adds the normalized address to the subscriber set. Subscribing
// twice is not an error; the caller just gets told they are already on it.
func (s *NewsletterService) Subscribe(in SubscribeInput) (*Message, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return nil, NewInvalidError(utils.T(s.locale, "newsletter.required"))
	}
	if !emailShape.MatchString(email) {
		return nil, NewInvalidError(utils.T(s.locale, "newsletter.invalid"))
	}
	if s.subscribers.HasSubscriber(email) {
		return &Message{Message: utils.T(s.locale, "newsletter.already")}, nil
	}
	s.subscribers.AddSubscriber(email)
	return &Message{Message: utils.T(s.locale, "newsletter.subscribed")}, nil
}
