// File: utils/constants.go
package utils

import "time"

// IdempotencyKeyPrefix is the prefix used for Redis booking idempotency keys.
const IdempotencyKeyPrefix = "idem:booking:"

// IdempotencyKeyTTL is the time-to-live for booking idempotency entries.
const IdempotencyKeyTTL = 24 * time.Hour

// DateLayout is the calendar-date wire format used throughout the service.
const DateLayout = "2006-01-02"
