package service

import (
	"context"
	"strings"

	"github.com/legionhq/legion-tracker/internal/auth"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles member login. There is no separate credential table:
// members carry their own bcrypt hash, and the reserved admin name gets the
// admin claim on its token.
type AuthService struct {
	members   repository.MemberStore
	jwtMgr    *auth.JWTManager
	adminName string
}

// NewAuthService creates a new AuthService.
func NewAuthService(members repository.MemberStore, jwtMgr *auth.JWTManager, adminName string) *AuthService {
	return &AuthService{members: members, jwtMgr: jwtMgr, adminName: adminName}
}

// LoginInput holds the login request fields.
type LoginInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Token  string        `json:"token"`
	Member domain.Member `json:"member"`
}

// Login authenticates a member by name (case-insensitive) and password.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	name := strings.TrimSpace(input.Name)
	password := strings.TrimSpace(input.Password)
	if name == "" || password == "" {
		return nil, domain.ErrValidation("name and password are required")
	}

	member, err := s.members.GetByName(ctx, name)
	if err != nil {
		return nil, domain.ErrInternal("find member", err)
	}
	if member == nil {
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	admin := strings.EqualFold(member.Name, s.adminName)
	token, err := s.jwtMgr.GenerateToken(member.ID, member.Name, member.Role, admin)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &LoginResult{Token: token, Member: *member}, nil
}
