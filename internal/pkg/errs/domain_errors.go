package errs

// Sentinels shared across the admission and fulfillment layers
var (
	// Admission rejections (user-visible, never retried by the system)
	ErrAdmissionRejected = New("admission rejected")
	ErrSaleClosed        = New("sale is not open")
	ErrSoldOut           = New("voucher sold out")
	ErrDuplicateOrder    = New("user already ordered this voucher")

	// Snapshot store is unreachable or the script failed; nothing was mutated
	ErrStoreUnavailable = New("snapshot store unavailable")

	// Fulfillment
	ErrLockNotAcquired   = New("order lock held by another worker")
	ErrMalformedEntry    = New("malformed queue entry")
	ErrIDSpaceExhausted  = New("daily id counter exhausted")
	ErrOrderNotFound     = New("voucher order not found")
	ErrVoucherNotFound   = New("voucher not found")
	ErrDomainValidation  = New("domain validation failed")
	ErrDatabaseOperation = New("database operation failed")
)
