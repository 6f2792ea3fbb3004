package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsTicketNumber reports whether s is a well-formed repair ticket number.
// Tickets are printed with a Luhn check digit so typos on the counter are
// caught before hitting the database.
func IsTicketNumber(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
