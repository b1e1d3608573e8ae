package helper

import (
	"capsule_store/constants"
	"fmt"
	"time"
)

// GenerateOrderCode builds the human-readable order code:
// day, month, 2-digit year, 2-digit quantity, customer type flag.
// Example: 13022605N. Display/reference code only — two same-day orders for
// the same quantity and type collide; the uuid primary key is the identity.
func GenerateOrderCode(now time.Time, quantity int, customerType string) string {
	flag := constants.CUSTOMER_TYPE_NEW
	if customerType == constants.CUSTOMER_TYPE_REPEAT || customerType == "Repeat" {
		flag = constants.CUSTOMER_TYPE_REPEAT
	}
	return fmt.Sprintf("%02d%02d%02d%02d%s", now.Day(), int(now.Month()), now.Year()%100, quantity, flag)
}
