package ledger

import "errors"

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrInvalidAccountType     = errors.New("invalid account type")
	ErrInvalidDetailType      = errors.New("detail type not allowed for account type")
	ErrNameRequired           = errors.New("account name is required")
	ErrDuplicateAccountNumber = errors.New("account number already in use")
	ErrDuplicateName          = errors.New("an account with this name already exists under the same parent")
	ErrParentTypeMismatch     = errors.New("sub-account type must match parent account type")
	ErrDepthExceeded          = errors.New("maximum sub-account nesting depth exceeded")
	ErrSystemAccount          = errors.New("system accounts cannot be deleted")
	ErrHasSubAccounts         = errors.New("account has sub-accounts")
	ErrNonZeroBalance         = errors.New("account has a non-zero balance")
	ErrInvalidDate            = errors.New("invalid date")
	ErrEntryNotFound          = errors.New("journal entry not found")
	ErrUnbalancedEntry        = errors.New("journal entry debits and credits do not balance")
	ErrTooFewLines            = errors.New("journal entry must have at least 2 lines")
	ErrEmptyDescription       = errors.New("description is required")
)
