// Package storage uploads payment receipts and returns public URLs for them.
package storage

import (
	"fmt"
	"strings"
	"time"
)

// ReceiptKey names a receipt object as {orderID}-{unix millis}{ext}.
func ReceiptKey(orderID string, ext string, at time.Time) string {
	return fmt.Sprintf("%s-%d%s", orderID, at.UnixMilli(), ext)
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}
