package contract

// -----------------------------------------------------------------------------
// Governance Parameters
// -----------------------------------------------------------------------------

const (
	// VotingPowerDivisor grants one vote per 100 invested units. Integer
	// division truncates, so a 99-unit stake carries zero weight.
	VotingPowerDivisor = 100
)

// -----------------------------------------------------------------------------
// Sentinels
// -----------------------------------------------------------------------------

const (
	// NotFoundPlaceholder fills title/description of the sentinel proposal
	// returned for unknown ids.
	NotFoundPlaceholder = "Not_Found"
)

// -----------------------------------------------------------------------------
// Storage Retention
// -----------------------------------------------------------------------------

const (
	// TTLThreshold / TTLExtendTo are handed to the host retention hint on
	// every successful commit.
	TTLThreshold = 5000
	TTLExtendTo  = 5000
)

// -----------------------------------------------------------------------------
// Counter Keys
// -----------------------------------------------------------------------------

const (
	// ProposalsCount holds an integer counter for proposals (used for
	// generating ids, pre-incremented so the first id is 1).
	ProposalsCount = "count:props"
)

// -----------------------------------------------------------------------------
// Error Symbols
// -----------------------------------------------------------------------------

// Short revert symbols surfaced to the transaction layer. All of them are
// terminal: the call aborts with no state change.
const (
	ErrUnauthorized      = "unauthorized"
	ErrInvalidAmount     = "invalid_amount"
	ErrNotAnInvestor     = "not_an_investor"
	ErrProposalNotFound  = "proposal_not_found"
	ErrAlreadyExecuted   = "already_executed"
	ErrNotApproved       = "not_approved"
	ErrInsufficientFunds = "insufficient_funds"
)
