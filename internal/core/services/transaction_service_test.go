package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/adapters/memstate"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/core/services"
	"github.com/finvue/finvue_backend/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstate.Store
	activity portssvc.ActivitySvcFacade
	svc      portssvc.TransactionSvcFacade
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newTestStore(s.T(), domain.AppState{})
	repos := s.store.Repositories()
	s.activity = services.NewActivityService(repos.Activity)
	category := services.NewCategoryService(repos.Category, s.activity)
	s.svc = services.NewTransactionService(repos.Transaction, category, s.activity)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func createReq(txnType domain.TransactionType, category string) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(500),
		Type:     txnType,
		Category: category,
		Source:   domain.SourceCash,
		Date:     time.Now(),
	}
}

func (s *TransactionServiceTestSuite) TestIncomeIsAutoApproved() {
	txn, err := s.svc.CreateTransaction(s.ctx, createReq(domain.Income, "Sales"), employeeViewer)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, txn.Status)
	s.Equal(employeeViewer.UserID, txn.UserID)
	s.Equal(employeeViewer.Username, txn.CreatedBy)
}

func (s *TransactionServiceTestSuite) TestAdminExpenseIsAutoApproved() {
	txn, err := s.svc.CreateTransaction(s.ctx, createReq(domain.Expense, "Office Supplies"), adminViewer)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, txn.Status)
}

func (s *TransactionServiceTestSuite) TestManagerExpenseStartsPending() {
	txn, err := s.svc.CreateTransaction(s.ctx, createReq(domain.Expense, "Utilities"), managerViewer)
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, txn.Status)
}

func (s *TransactionServiceTestSuite) TestEmployeeRequisitionStartsPending() {
	txn, err := s.svc.CreateTransaction(s.ctx, createReq(domain.Expense, domain.RequisitionCategory), employeeViewer)
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, txn.Status)
}

func (s *TransactionServiceTestSuite) TestEmployeeCannotUseRestrictedCategory() {
	_, err := s.svc.CreateTransaction(s.ctx, createReq(domain.Expense, "Utilities"), employeeViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestEmployeeCannotUseAdminOnlyCategory() {
	req := createReq(domain.Expense, "Family")
	req.SubCategory = "Personal"
	_, err := s.svc.CreateTransaction(s.ctx, req, employeeViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestUnknownCategoryFailsValidation() {
	_, err := s.svc.CreateTransaction(s.ctx, createReq(domain.Expense, "Nonexistent"), adminViewer)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestSubcategoryRequired() {
	req := createReq(domain.Expense, "Conveyance")
	_, err := s.svc.CreateTransaction(s.ctx, req, employeeViewer)
	s.ErrorIs(err, apperrors.ErrValidation)

	req.SubCategory = "Helicopter"
	_, err = s.svc.CreateTransaction(s.ctx, req, employeeViewer)
	s.ErrorIs(err, apperrors.ErrValidation)

	req.SubCategory = "Rickshaw"
	txn, err := s.svc.CreateTransaction(s.ctx, req, employeeViewer)
	s.Require().NoError(err)
	s.Equal("Rickshaw", txn.SubCategory)
}

func (s *TransactionServiceTestSuite) TestAmountMustBePositive() {
	req := createReq(domain.Expense, "Utilities")
	req.Amount = decimal.NewFromInt(-10)
	_, err := s.svc.CreateTransaction(s.ctx, req, adminViewer)
	s.ErrorIs(err, apperrors.ErrValidation)

	req.Amount = decimal.Zero
	_, err = s.svc.CreateTransaction(s.ctx, req, adminViewer)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestTypeCategoryMismatch() {
	_, err := s.svc.CreateTransaction(s.ctx, createReq(domain.Income, "Utilities"), adminViewer)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) createPendingExpense() *domain.Transaction {
	txn, err := s.svc.CreateTransaction(s.ctx, createReq(domain.Expense, "Utilities"), managerViewer)
	s.Require().NoError(err)
	s.Require().Equal(domain.StatusPending, txn.Status)
	return txn
}

func (s *TransactionServiceTestSuite) TestManagerVerifiesThenAdminApproves() {
	txn := s.createPendingExpense()

	verified, err := s.svc.SetStatus(s.ctx, txn.TransactionID, domain.StatusVerified, managerViewer)
	s.Require().NoError(err)
	s.Equal(domain.StatusVerified, verified.Status)

	approved, err := s.svc.SetStatus(s.ctx, txn.TransactionID, domain.StatusApproved, adminViewer)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, approved.Status)
}

func (s *TransactionServiceTestSuite) TestForbiddenTransitionLeavesStatusUnchanged() {
	txn := s.createPendingExpense()

	_, err := s.svc.SetStatus(s.ctx, txn.TransactionID, domain.StatusApproved, managerViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)

	unchanged, err := s.svc.GetTransactionByID(s.ctx, txn.TransactionID, adminViewer)
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, unchanged.Status)
}

func (s *TransactionServiceTestSuite) TestEmployeeCannotMoveWorkflow() {
	txn := s.createPendingExpense()
	_, err := s.svc.SetStatus(s.ctx, txn.TransactionID, domain.StatusVerified, employeeViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestApprovedIsTerminal() {
	txn := s.createPendingExpense()
	_, err := s.svc.SetStatus(s.ctx, txn.TransactionID, domain.StatusApproved, adminViewer)
	s.Require().NoError(err)

	_, err = s.svc.SetStatus(s.ctx, txn.TransactionID, domain.StatusRejected, adminViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestStatusChangeIsLogged() {
	txn := s.createPendingExpense()
	_, err := s.svc.SetStatus(s.ctx, txn.TransactionID, domain.StatusVerified, managerViewer)
	s.Require().NoError(err)

	logs, err := s.activity.ListActivity(s.ctx, adminViewer)
	s.Require().NoError(err)
	s.Require().NotEmpty(logs)
	s.Equal("Status Change: VERIFIED", logs[0].Action)
	s.Contains(logs[0].Details, txn.TransactionID[:8])
	s.Equal(domain.ActivityTransaction, logs[0].Type)
}

func (s *TransactionServiceTestSuite) TestDeleteIsAdminOnly() {
	txn := s.createPendingExpense()

	err := s.svc.DeleteTransaction(s.ctx, txn.TransactionID, managerViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)

	err = s.svc.DeleteTransaction(s.ctx, txn.TransactionID, adminViewer)
	s.Require().NoError(err)

	_, err = s.svc.GetTransactionByID(s.ctx, txn.TransactionID, adminViewer)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestOwnerEditsOwnPendingEntry() {
	req := createReq(domain.Expense, domain.RequisitionCategory)
	txn, err := s.svc.CreateTransaction(s.ctx, req, employeeViewer)
	s.Require().NoError(err)

	note := "updated note"
	updated, err := s.svc.UpdateTransaction(s.ctx, txn.TransactionID, dto.UpdateTransactionRequest{Note: &note}, employeeViewer)
	s.Require().NoError(err)
	s.Equal(note, updated.Note)
}

func (s *TransactionServiceTestSuite) TestOwnerCannotEditAfterApproval() {
	txn := s.createPendingExpense()
	_, err := s.svc.SetStatus(s.ctx, txn.TransactionID, domain.StatusApproved, adminViewer)
	s.Require().NoError(err)

	note := "too late"
	_, err = s.svc.UpdateTransaction(s.ctx, txn.TransactionID, dto.UpdateTransactionRequest{Note: &note}, managerViewer)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *TransactionServiceTestSuite) TestEmployeeCannotSeeOthersEntry() {
	txn := s.createPendingExpense()
	_, err := s.svc.GetTransactionByID(s.ctx, txn.TransactionID, employeeViewer)
	s.ErrorIs(err, apperrors.ErrNotFound)
}
