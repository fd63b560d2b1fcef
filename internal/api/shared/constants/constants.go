package constants

const (
	MAX_PAGE_SIZE            = 200
	DEFAULT_OFFSET           = 0
	DEFAULT_LEDGER_LIMIT     = 50
	DEFAULT_WITHDRAWAL_LIMIT = 20
	DEFAULT_REFERRAL_DEPTH   = 10
	// ADJUSTMENT_REFERENCE_PREFIX prefixes generated admin adjustment references
	ADJUSTMENT_REFERENCE_PREFIX = "adjustment:"
)
