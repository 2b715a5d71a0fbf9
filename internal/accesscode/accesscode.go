// Package accesscode produces the short shareable codes used to join a project.
package accesscode

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// Length of every generated code.
const Length = 8

// Generator returns a fresh code on every call. It never fails.
type Generator func() string

// Generate reads a random v4 UUID as a base-36 number and keeps its last
// Length digits, upper-cased. Codes are not checked against existing ones;
// the store's unique constraint reports the rare collision.
func Generate() string {
	id := uuid.New()
	digits := new(big.Int).SetBytes(id[:]).Text(36)
	if len(digits) < Length {
		digits = strings.Repeat("0", Length-len(digits)) + digits
	}
	return strings.ToUpper(digits[len(digits)-Length:])
}
