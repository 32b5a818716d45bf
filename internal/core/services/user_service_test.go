package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/core/services"
	"github.com/finvue/finvue_backend/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	activity portssvc.ActivitySvcFacade
	svc      portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	store := newTestStore(s.T(), domain.AppState{})
	repos := store.Repositories()
	s.activity = services.NewActivityService(repos.Activity)
	s.svc = services.NewUserService(repos.User, s.activity)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUserIsAdminOnly() {
	req := dto.CreateUserRequest{Username: "newbie", Password: "secret", Role: domain.RoleEmployee}

	_, err := s.svc.CreateUser(s.ctx, req, managerViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)

	created, err := s.svc.CreateUser(s.ctx, req, adminViewer)
	s.Require().NoError(err)
	s.Equal("newbie", created.Username)
	s.Equal(domain.RoleEmployee, created.Role)
	s.NotEmpty(created.PasswordHash)
	s.NotEqual("secret", created.PasswordHash)
}

func (s *UserServiceTestSuite) TestCreateUserRejectsDuplicateUsername() {
	req := dto.CreateUserRequest{Username: "employee", Password: "secret", Role: domain.RoleEmployee}
	_, err := s.svc.CreateUser(s.ctx, req, adminViewer)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestCreateUserRejectsUnknownRole() {
	req := dto.CreateUserRequest{Username: "ghost", Password: "secret", Role: "SUPERUSER"}
	_, err := s.svc.CreateUser(s.ctx, req, adminViewer)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestAdminAccountCannotBeDeleted() {
	err := s.svc.DeleteUser(s.ctx, adminViewer.UserID, adminViewer)
	s.ErrorIs(err, apperrors.ErrProtectedRole)
}

func (s *UserServiceTestSuite) TestDeleteUserIsAdminOnly() {
	err := s.svc.DeleteUser(s.ctx, employeeViewer.UserID, managerViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)

	err = s.svc.DeleteUser(s.ctx, employeeViewer.UserID, adminViewer)
	s.Require().NoError(err)

	users, err := s.svc.ListUsers(s.ctx)
	s.Require().NoError(err)
	for _, u := range users {
		s.NotEqual(employeeViewer.UserID, u.UserID)
	}
}

func (s *UserServiceTestSuite) TestAdminRoleIsProtectedOnUpdate() {
	role := domain.RoleEmployee
	_, err := s.svc.UpdateUser(s.ctx, adminViewer.UserID, dto.UpdateUserRequest{Role: &role}, adminViewer)
	s.ErrorIs(err, apperrors.ErrProtectedRole)
}

func (s *UserServiceTestSuite) TestSelfEditLimitedToProfileFields() {
	pic := "data:image/png;base64,AAAA"
	updated, err := s.svc.UpdateUser(s.ctx, employeeViewer.UserID, dto.UpdateUserRequest{ProfilePic: &pic}, employeeViewer)
	s.Require().NoError(err)
	s.Equal(pic, updated.ProfilePic)

	role := domain.RoleManager
	_, err = s.svc.UpdateUser(s.ctx, employeeViewer.UserID, dto.UpdateUserRequest{Role: &role}, employeeViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestUserMutationsAreLogged() {
	req := dto.CreateUserRequest{Username: "audited", Password: "secret", Role: domain.RoleEmployee}
	_, err := s.svc.CreateUser(s.ctx, req, adminViewer)
	s.Require().NoError(err)

	logs, err := s.activity.ListActivity(s.ctx, adminViewer)
	s.Require().NoError(err)
	s.Require().NotEmpty(logs)
	s.Equal("User Added", logs[0].Action)
	s.Equal(domain.ActivityUser, logs[0].Type)
	s.Equal(adminViewer.Username, logs[0].Username)
}
