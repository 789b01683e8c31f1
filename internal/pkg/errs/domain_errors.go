package errs

import "errors"

// Cross-cutting marks applied with Mark so callers can classify wrapped
// errors with errors.Is. Resource-level sentinels live in the usecase layer.
var (
	ErrTimeParse = errors.New("malformed appointment time")

	ErrStoreOperationFailed = errors.New("store operation failed")
)
