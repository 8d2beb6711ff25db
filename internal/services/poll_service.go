package services

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/aqala-site/aqala/internal/models"
	"github.com/aqala-site/aqala/internal/utils"
)

var lineBreaks = regexp.MustCompile(`\r?\n`)

type PollStore interface {
	GetPoll(id string) *models.Poll
	AddPoll(p *models.Poll)
	IncrementVote(pollID, option string) bool
}

// MarkerStore remembers this context's choice per poll, enforcing the
// one-vote rule.
type MarkerStore interface {
	Vote(pollID string) (string, bool)
	Record(pollID, choice string)
}

type PollService struct {
	polls   PollStore
	markers MarkerStore
	auth    Authenticator
	locale  string
	idGen   func(prefix string, n int) string
}

type PollOptionResult struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Votes   int    `json:"votes"`
	Percent int    `json:"percent"`
}

type PollResults struct {
	PollID         string             `json:"pollId"`
	Title          string             `json:"title"`
	Options        []PollOptionResult `json:"options"`
	TotalVotes     int                `json:"totalVotes"`
	HasVoted       bool               `json:"hasVoted"`
	SelectedOption string             `json:"selectedOption,omitempty"`
}

func NewPollService(polls PollStore, markers MarkerStore, auth Authenticator, locale string) *PollService {
	return &PollService{
		polls:   polls,
		markers: markers,
		auth:    auth,
		locale:  locale,
		idGen:   func(prefix string, n int) string { return prefix + shortID(n) },
	}
}

func (s *PollService) t(key string) string { return utils.T(s.locale, key) }

// Vote records one choice for this context and returns the updated results.
// A second attempt fails regardless of the option supplied.
func (s *PollService) Vote(in VoteInput) (*PollResults, error) {
	poll := s.polls.GetPoll(in.PollID)
	if poll == nil {
		return nil, NewNotFoundError(s.t("poll.not_found"))
	}
	if _, ok := poll.Options[in.Option]; !ok {
		return nil, NewInvalidOptionError(s.t("poll.option_invalid"))
	}
	if _, voted := s.markers.Vote(in.PollID); voted {
		return nil, NewAlreadyVotedError(s.t("poll.already_voted"))
	}
	s.polls.IncrementVote(in.PollID, in.Option)
	s.markers.Record(in.PollID, in.Option)
	return s.Results(in.PollID, in.Option)
}

// Results projects the poll with per-option percentages. With no votes every
// percentage is 0; there is no division by zero. selected overrides the
// stored marker when given.
func (s *PollService) Results(pollID, selected string) (*PollResults, error) {
	poll := s.polls.GetPoll(pollID)
	if poll == nil {
		return nil, NewNotFoundError(s.t("poll.not_found"))
	}
	total := 0
	values := make([]string, 0, len(poll.Options))
	for v, opt := range poll.Options {
		total += opt.Votes
		values = append(values, v)
	}
	sort.Strings(values)
	if selected == "" {
		selected, _ = s.markers.Vote(pollID)
	}
	options := make([]PollOptionResult, 0, len(values))
	for _, v := range values {
		opt := poll.Options[v]
		percent := 0
		if total > 0 {
			percent = int(math.Round(float64(opt.Votes) / float64(total) * 100))
		}
		options = append(options, PollOptionResult{Value: opt.Value, Label: opt.Label, Votes: opt.Votes, Percent: percent})
	}
	return &PollResults{
		PollID:         pollID,
		Title:          poll.Title,
		Options:        options,
		TotalVotes:     total,
		HasVoted:       selected != "",
		SelectedOption: selected,
	}, nil
}

// Create builds a poll from newline-delimited option labels. Option keys are
// slugified from the labels with an index fallback for labels that slugify to
// nothing.
func (s *PollService) Create(in CreatePollInput) (*Message, error) {
	if _, err := s.auth.RequireAuth(); err != nil {
		return nil, err
	}
	if err := validate.Struct(in); err != nil {
		return nil, NewInvalidError(s.t("poll.required_fields"))
	}
	labels := make([]string, 0)
	for _, line := range lineBreaks.Split(in.Options, -1) {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	if len(labels) < 2 {
		return nil, NewInvalidError(s.t("poll.options_min"))
	}
	options := make(map[string]*models.PollOption, len(labels))
	for i, label := range labels {
		value := Slugify(label)
		if value == "" {
			value = fmt.Sprintf("option-%d", i+1)
		}
		options[value] = &models.PollOption{Value: value, Label: label}
	}
	s.polls.AddPoll(&models.Poll{
		ID:      s.idGen("poll-", 8),
		Title:   in.Question,
		Options: options,
	})
	return &Message{Message: s.t("poll.created")}, nil
}
