package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// legacyProductNamespace is the fixed UUID namespace legacy numeric
// product identifiers are mapped into.
const legacyProductNamespace = "20000000-0000-0000-0000-%012d"

const (
	legacyIdMin = 1
	legacyIdMax = 30
)

// ResolveProductID maps legacy numeric product identifiers (1-30) into
// the catalog's UUID namespace. Identifiers that already look namespaced
// pass through unchanged, as does anything unrecognized; the database is
// the last line of defense against those.
func ResolveProductID(id string) string {
	if strings.Contains(id, "-") {
		return id
	}
	numId, err := strconv.Atoi(id)
	if err != nil {
		return id
	}
	if numId >= legacyIdMin && numId <= legacyIdMax {
		return fmt.Sprintf(legacyProductNamespace, numId)
	}
	return id
}

// IsRecognizedProductID reports whether ResolveProductID would yield a
// known-good identifier format for id. Unrecognized formats still pass
// through; this only drives the warning log.
func IsRecognizedProductID(id string) bool {
	if strings.Contains(id, "-") {
		return true
	}
	numId, err := strconv.Atoi(id)
	return err == nil && numId >= legacyIdMin && numId <= legacyIdMax
}

// orderNumber derives the human-readable order number from the
// submission time.
func orderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}

func customerName(firstName, lastName string) string {
	return firstName + " " + lastName
}

func deliveryAddress(address, city, zipCode string) string {
	return fmt.Sprintf("%s, %s %s", address, city, zipCode)
}
