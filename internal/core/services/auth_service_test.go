package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/core/services"
	"github.com/finvue/finvue_backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	activity portssvc.ActivitySvcFacade
	svc      portssvc.AuthSvcFacade
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	hash, err := utils.HashPassword("admin")
	s.Require().NoError(err)

	state := domain.AppState{
		Users: []domain.User{
			{UserID: adminViewer.UserID, Username: "admin", PasswordHash: hash, Role: domain.RoleAdmin, CreatedAt: time.Now()},
		},
	}
	store := newTestStore(s.T(), state)
	repos := store.Repositories()
	s.activity = services.NewActivityService(repos.Activity)
	s.svc = services.NewAuthService(repos.User, s.activity)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestAuthenticateSuccess() {
	user, err := s.svc.Authenticate(s.ctx, "admin", "admin")
	s.Require().NoError(err)
	s.Equal(adminViewer.UserID, user.UserID)

	logs, err := s.activity.ListActivity(s.ctx, adminViewer)
	s.Require().NoError(err)
	s.Require().NotEmpty(logs)
	s.Equal("Login", logs[0].Action)
	s.Equal(domain.ActivityAuth, logs[0].Type)
}

func (s *AuthServiceTestSuite) TestAuthenticateWrongPassword() {
	_, err := s.svc.Authenticate(s.ctx, "admin", "nope")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	logs, err := s.activity.ListActivity(s.ctx, adminViewer)
	s.Require().NoError(err)
	s.Require().NotEmpty(logs)
	s.Equal("Login Failed", logs[0].Action)
	s.Contains(logs[0].Details, "admin")
}

func (s *AuthServiceTestSuite) TestAuthenticateUnknownUser() {
	_, err := s.svc.Authenticate(s.ctx, "stranger", "whatever")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	logs, err := s.activity.ListActivity(s.ctx, adminViewer)
	s.Require().NoError(err)
	s.Require().NotEmpty(logs)
	s.Equal("Login Failed", logs[0].Action)
}

func (s *AuthServiceTestSuite) TestResolveViewer() {
	viewer, err := s.svc.ResolveViewer(s.ctx, adminViewer.UserID)
	s.Require().NoError(err)
	s.Equal("admin", viewer.Username)
	s.Equal(domain.RoleAdmin, viewer.Role)

	_, err = s.svc.ResolveViewer(s.ctx, "missing-user")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
