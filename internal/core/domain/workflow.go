package domain

// InitialStatus decides the status a freshly created transaction starts in.
// Income is settled immediately. Expenses go through the approval chain unless
// the creator is an admin, whose expenses are settled on entry.
func InitialStatus(txnType TransactionType, creatorRole UserRole) TransactionStatus {
	if txnType == Income {
		return StatusApproved
	}
	if creatorRole == RoleAdmin {
		return StatusApproved
	}
	return StatusPending
}

// CanTransition reports whether actor may move the transaction to target.
// APPROVED and REJECTED are terminal. Managers verify pending expenses
// (requisitions relax the expense-only restriction) and may reject pending
// entries; admins approve from PENDING or VERIFIED and may reject either.
func CanTransition(t Transaction, target TransactionStatus, actor UserRole) bool {
	switch t.Status {
	case StatusPending:
		switch target {
		case StatusVerified:
			if actor != RoleManager {
				return false
			}
			return t.Type == Expense || t.IsRequisition()
		case StatusApproved:
			return actor == RoleAdmin
		case StatusRejected:
			return actor == RoleManager || actor == RoleAdmin
		}
	case StatusVerified:
		switch target {
		case StatusApproved, StatusRejected:
			return actor == RoleAdmin
		}
	}
	return false
}
