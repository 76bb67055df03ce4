package utils

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ==================== RECORD IDs ====================

// Record IDs keep the historical shape of a prefix plus a millisecond
// timestamp. The atomic sequence keeps them unique even when several
// requests land within the same millisecond.
var recordSeq uint64

func generateRecordID(prefix string) string {
	seq := atomic.AddUint64(&recordSeq, 1)
	return fmt.Sprintf("%s%d-%04d", prefix, time.Now().UnixMilli(), seq%10000)
}

// GenerateBookingID creates a unique booking identifier.
func GenerateBookingID() string {
	return generateRecordID("MM")
}

// GenerateQuoteID creates a unique quote identifier.
func GenerateQuoteID() string {
	return generateRecordID("QT")
}

// ==================== IDEMPOTENCY KEY ====================

// GenerateIdempotencyKey creates a key for deduplicating payment intent
// creation at the processor.
func GenerateIdempotencyKey() string {
	return uuid.New().String()
}
