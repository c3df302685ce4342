package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
	"github.com/riizpect/ServiceApp-sub000/internal/storage"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// BcryptCost is the fixed hashing cost for stored passwords.
const BcryptCost = 12

// User-facing authentication errors. Login failure uses one message for both
// unknown email and wrong password so callers cannot tell which occurred.
var (
	ErrDuplicateEmail    = errors.New("En användare med den e-postadressen finns redan")
	ErrInvalidCredential = errors.New("Felaktig e-postadress eller lösenord")
)

// Session is the locally persisted (user, token) pair meaning "is logged in".
// It is created on login/register, cleared on logout and read-only elsewhere.
type Session struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Service maintains the users list and the single current session in the
// key-value store. The token is a purely local bearer string; presence in the
// store is the whole authentication check.
type Service struct {
	store    kvstore.Store
	secret   string
	migrated bool
}

func NewService(store kvstore.Store, secret string) *Service {
	return &Service{store: store, secret: secret}
}

// Register creates an account after a case-sensitive duplicate email check,
// persists the full users list and immediately establishes a session.
func (s *Service) Register(name, email, password string) (*Session, error) {
	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	now := time.Now()
	user := domain.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	user.ID = storage.NewID()
	user.Stamp(now, true)

	users = append(users, user)
	if err := s.writeUsers(users); err != nil {
		return nil, err
	}
	return s.establishSession(user)
}

// EnsureUser creates the account when the email is not already taken, without
// establishing a session. Used for startup seeding.
func (s *Service) EnsureUser(name, email, password string) (created bool, err error) {
	users, err := s.loadUsers()
	if err != nil {
		return false, err
	}
	for i := range users {
		if users[i].Email == email {
			return false, nil
		}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return false, errors.Wrap(err, "hash password")
	}
	user := domain.User{Name: name, Email: email, Password: string(hashed)}
	user.ID = storage.NewID()
	user.Stamp(time.Now(), true)
	if err := s.writeUsers(append(users, user)); err != nil {
		return false, err
	}
	return true, nil
}

// Login verifies the credential and establishes a session. Unknown email and
// wrong password fail identically.
func (s *Service) Login(email, password string) (*Session, error) {
	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].Password), []byte(password)) != nil {
			return nil, ErrInvalidCredential
		}
		return s.establishSession(users[i])
	}
	return nil, ErrInvalidCredential
}

// Logout clears the persisted session. A store fault is logged but the
// session is considered cleared regardless.
func (s *Service) Logout() {
	err := s.store.RemoveMany([]string{domain.KeySessionUser, domain.KeySessionToken})
	if err != nil {
		zap.L().Warn("failed to clear session entries", zap.Error(err))
	}
}

// IsAuthenticated is true iff a token is present in the store. There is no
// expiry and no validation beyond presence.
func (s *Service) IsAuthenticated() bool {
	_, ok, err := s.store.Get(domain.KeySessionToken)
	if err != nil {
		zap.L().Warn("failed to read session token", zap.Error(err))
		return false
	}
	return ok
}

// Token returns the persisted session token, or empty when logged out.
func (s *Service) Token() string {
	token, _, err := s.store.Get(domain.KeySessionToken)
	if err != nil {
		zap.L().Warn("failed to read session token", zap.Error(err))
		return ""
	}
	return token
}

// CurrentUser returns the session user, or nil when logged out.
func (s *Service) CurrentUser() *domain.User {
	raw, ok, err := s.store.Get(domain.KeySessionUser)
	if err != nil {
		zap.L().Warn("failed to read session user", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	var user domain.User
	if err := json.UnmarshalFromString(raw, &user); err != nil {
		zap.L().Warn("failed to decode session user", zap.Error(err))
		return nil
	}
	return &user
}

// GetUserByID looks a user up in the persisted users list.
func (s *Service) GetUserByID(id string) *domain.User {
	users, err := s.loadUsers()
	if err != nil {
		return nil
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

func (s *Service) establishSession(user domain.User) (*Session, error) {
	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	// The session copy never carries the password hash.
	user.Password = ""
	raw, err := json.MarshalToString(user)
	if err != nil {
		return nil, errors.Wrap(err, "encode session user")
	}
	if err := s.store.Set(domain.KeySessionUser, raw); err != nil {
		return nil, errors.Wrap(err, "persist session user")
	}
	if err := s.store.Set(domain.KeySessionToken, token); err != nil {
		return nil, errors.Wrap(err, "persist session token")
	}
	return &Session{User: user, Token: token}, nil
}

// signToken mints the opaque bearer string for the session. A signed JWT is
// used as that string; nothing reads claims back out of the stored copy.
func (s *Service) signToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}
	return token, nil
}

// loadUsers reads the users list and runs the one-time plaintext password
// migration: any stored password not in bcrypt form is rehashed in place and
// the whole list rewritten. Already-hashed passwords are left untouched.
func (s *Service) loadUsers() ([]domain.User, error) {
	raw, ok, err := s.store.Get(domain.KeyUsers)
	if err != nil {
		return nil, errors.Wrap(err, "read users")
	}
	if !ok || raw == "" {
		return []domain.User{}, nil
	}
	var users []domain.User
	if err := json.UnmarshalFromString(raw, &users); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}

	if !s.migrated {
		changed := false
		for i := range users {
			if isHashed(users[i].Password) {
				continue
			}
			hashed, err := bcrypt.GenerateFromPassword([]byte(users[i].Password), BcryptCost)
			if err != nil {
				return nil, errors.Wrap(err, "migrate password")
			}
			users[i].Password = string(hashed)
			changed = true
		}
		if changed {
			if err := s.writeUsers(users); err != nil {
				return nil, err
			}
			zap.L().Info("migrated plaintext user passwords to bcrypt")
		}
		s.migrated = true
	}
	return users, nil
}

func (s *Service) writeUsers(users []domain.User) error {
	raw, err := json.MarshalToString(users)
	if err != nil {
		return errors.Wrap(err, "encode users")
	}
	if err := s.store.Set(domain.KeyUsers, raw); err != nil {
		return errors.Wrap(err, "write users")
	}
	return nil
}

// isHashed detects the bcrypt signature prefix on a stored password.
func isHashed(password string) bool {
	return strings.HasPrefix(password, "$2a$") ||
		strings.HasPrefix(password, "$2b$") ||
		strings.HasPrefix(password, "$2y$")
}
