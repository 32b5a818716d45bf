package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

func TestInitialStatus(t *testing.T) {
	testCases := []struct {
		name     string
		txnType  domain.TransactionType
		role     domain.UserRole
		expected domain.TransactionStatus
	}{
		{"income is always approved", domain.Income, domain.RoleEmployee, domain.StatusApproved},
		{"income from manager is approved", domain.Income, domain.RoleManager, domain.StatusApproved},
		{"admin expense is approved", domain.Expense, domain.RoleAdmin, domain.StatusApproved},
		{"manager expense is pending", domain.Expense, domain.RoleManager, domain.StatusPending},
		{"employee expense is pending", domain.Expense, domain.RoleEmployee, domain.StatusPending},
		{"billing executive expense is pending", domain.Expense, domain.RoleBillingExecutive, domain.StatusPending},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.InitialStatus(tc.txnType, tc.role))
		})
	}
}

func expense(status domain.TransactionStatus) domain.Transaction {
	return domain.Transaction{Type: domain.Expense, Category: "Office Supplies", Status: status}
}

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		txn     domain.Transaction
		target  domain.TransactionStatus
		actor   domain.UserRole
		allowed bool
	}{
		{"manager verifies pending expense", expense(domain.StatusPending), domain.StatusVerified, domain.RoleManager, true},
		{"admin cannot verify", expense(domain.StatusPending), domain.StatusVerified, domain.RoleAdmin, false},
		{"employee cannot verify", expense(domain.StatusPending), domain.StatusVerified, domain.RoleEmployee, false},
		{"admin approves pending", expense(domain.StatusPending), domain.StatusApproved, domain.RoleAdmin, true},
		{"manager cannot approve", expense(domain.StatusPending), domain.StatusApproved, domain.RoleManager, false},
		{"admin approves verified", expense(domain.StatusVerified), domain.StatusApproved, domain.RoleAdmin, true},
		{"manager cannot approve verified", expense(domain.StatusVerified), domain.StatusApproved, domain.RoleManager, false},
		{"manager rejects pending", expense(domain.StatusPending), domain.StatusRejected, domain.RoleManager, true},
		{"admin rejects pending", expense(domain.StatusPending), domain.StatusRejected, domain.RoleAdmin, true},
		{"employee cannot reject", expense(domain.StatusPending), domain.StatusRejected, domain.RoleEmployee, false},
		{"admin rejects verified", expense(domain.StatusVerified), domain.StatusRejected, domain.RoleAdmin, true},
		{"manager cannot reject verified", expense(domain.StatusVerified), domain.StatusRejected, domain.RoleManager, false},
		{"approved is terminal for admin", expense(domain.StatusApproved), domain.StatusRejected, domain.RoleAdmin, false},
		{"approved cannot be re-approved", expense(domain.StatusApproved), domain.StatusApproved, domain.RoleAdmin, false},
		{"rejected is terminal", expense(domain.StatusRejected), domain.StatusApproved, domain.RoleAdmin, false},
		{"rejected cannot be verified", expense(domain.StatusRejected), domain.StatusVerified, domain.RoleManager, false},
		{"verified cannot go back to pending", expense(domain.StatusVerified), domain.StatusPending, domain.RoleAdmin, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, domain.CanTransition(tc.txn, tc.target, tc.actor))
		})
	}
}

func TestCanTransitionIncomeVerification(t *testing.T) {
	// Income never sits in PENDING through the normal flow, but the rule
	// still refuses manager verification of non-expense entries.
	income := domain.Transaction{Type: domain.Income, Category: "Sales", Status: domain.StatusPending}
	assert.False(t, domain.CanTransition(income, domain.StatusVerified, domain.RoleManager))
}

func TestCanTransitionRequisition(t *testing.T) {
	req := domain.Transaction{Type: domain.Expense, Category: domain.RequisitionCategory, Status: domain.StatusPending}
	assert.True(t, domain.CanTransition(req, domain.StatusVerified, domain.RoleManager))
	assert.True(t, req.IsRequisition())

	// The expense-only restriction on verification is relaxed for
	// requisitions, so an income-typed one is verifiable too.
	incomeReq := domain.Transaction{Type: domain.Income, Category: domain.RequisitionCategory, Status: domain.StatusPending}
	assert.True(t, domain.CanTransition(incomeReq, domain.StatusVerified, domain.RoleManager))
	assert.False(t, domain.CanTransition(incomeReq, domain.StatusVerified, domain.RoleEmployee))
}
