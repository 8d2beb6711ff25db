package services

import (
	"fmt"
	"strings"

	"github.com/aqala-site/aqala/internal/models"
	"github.com/aqala-site/aqala/internal/utils"
)

// DefaultPassword is assigned to admin-created accounts; the result message
// tells the operator it was applied.
const DefaultPassword = "password123"

// DefaultRole is the role for registered and admin-created users unless one
// is given.
const DefaultRole = "contributor"

const registeredAvatar = "assets/images/thumb-6.svg"

type UserStore interface {
	FindUserByEmail(email string) *models.User
	FindUserByID(id string) *models.User
	AddUser(u models.User)
}

type SessionStore interface {
	Start(userID string)
	End()
	UserID() (string, bool)
}

// Authenticator is what the content and poll services need from auth: the
// sanitized current user, or an unauthenticated failure.
type Authenticator interface {
	RequireAuth() (*models.User, error)
}

type AuthService struct {
	users    UserStore
	sessions SessionStore
	locale   string
	idGen    func(prefix string, n int) string
}

type AuthResult struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type UserResult struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type Message struct {
	Message string `json:"message"`
}

func NewAuthService(users UserStore, sessions SessionStore, locale string) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		locale:   locale,
		idGen:    func(prefix string, n int) string { return prefix + shortID(n) },
	}
}

func (s *AuthService) t(key string) string { return utils.T(s.locale, key) }

// Login matches the email case-insensitively against the stored users and
// starts a session on success. Unknown email and wrong password are the same
// failure; an existing session is left untouched.
func (s *AuthService) Login(in LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	password := strings.TrimSpace(in.Password)
	u := s.users.FindUserByEmail(email)
	if u == nil || u.Password != password {
		return nil, NewInvalidCredentialsError(s.t("auth.invalid_credentials"))
	}
	s.sessions.Start(u.ID)
	return &AuthResult{
		Message: fmt.Sprintf(s.t("auth.welcome"), u.Name),
		User:    u.Sanitized(),
	}, nil
}

// Register creates a contributor account and logs it straight in.
func (s *AuthService) Register(in RegisterInput) (*AuthResult, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Password = strings.TrimSpace(in.Password)
	in.ConfirmPassword = strings.TrimSpace(in.ConfirmPassword)
	if err := validate.Struct(in); err != nil {
		key := validationKey(err, map[string]string{
			"required": "auth.required_fields",
			"min":      "auth.password_short",
			"eqfield":  "auth.password_mismatch",
		}, "auth.required_fields")
		return nil, NewInvalidError(s.t(key))
	}
	if s.users.FindUserByEmail(in.Email) != nil {
		return nil, NewDuplicateEmailError(s.t("auth.email_taken"))
	}
	u := models.User{
		ID:       s.idGen("user-", 8),
		Name:     in.FullName,
		Email:    in.Email,
		Password: in.Password,
		Role:     DefaultRole,
		Avatar:   registeredAvatar,
	}
	s.users.AddUser(u)
	s.sessions.Start(u.ID)
	return &AuthResult{Message: s.t("auth.registered"), User: u.Sanitized()}, nil
}

// Logout ends the session unconditionally.
func (s *AuthService) Logout() *Message {
	s.sessions.End()
	return &Message{Message: s.t("auth.logged_out")}
}

// CurrentUser resolves the active session to a password-stripped user. A
// session referencing a deleted user resolves to none.
func (s *AuthService) CurrentUser() (*models.User, bool) {
	uid, ok := s.sessions.UserID()
	if !ok {
		return nil, false
	}
	u := s.users.FindUserByID(uid)
	if u == nil {
		return nil, false
	}
	safe := u.Sanitized()
	return &safe, true
}

func (s *AuthService) RequireAuth() (*models.User, error) {
	u, ok := s.CurrentUser()
	if !ok {
		return nil, NewUnauthenticatedError(s.t("auth.login_required"))
	}
	return u, nil
}

// CreateUser adds an account with the fixed default password. Any
// authenticated caller may do this; no role check is enforced.
func (s *AuthService) CreateUser(in CreateUserInput) (*UserResult, error) {
	if _, err := s.RequireAuth(); err != nil {
		return nil, err
	}
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validate.Struct(in); err != nil {
		return nil, NewInvalidError(s.t("user.required_fields"))
	}
	if s.users.FindUserByEmail(in.Email) != nil {
		return nil, NewDuplicateEmailError(s.t("auth.email_taken"))
	}
	role := in.Role
	if role == "" {
		role = DefaultRole
	}
	u := models.User{
		ID:       s.idGen("user-", 8),
		Name:     in.FullName,
		Email:    in.Email,
		Password: DefaultPassword,
		Role:     role,
	}
	s.users.AddUser(u)
	return &UserResult{Message: s.t("user.created"), User: u.Sanitized()}, nil
}
