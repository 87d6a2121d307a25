// Package shop holds the singleton shop profile printed on receipts.
package shop

import (
	"errors"
	"strings"

	"restaurant/internal/pkg/errs"
)

// Profile identifies the restaurant on receipts. Logo, when set, is an
// image encoded as a data URL (for example "data:image/png;base64,...").
type Profile struct {
	Name      string
	Address   string
	Phone     string
	TaxNumber string
	Logo      string
}

// Blank returns the profile used before the shop is configured.
func Blank() Profile {
	return Profile{}
}

// Validate checks that the logo, if any, is an embedded image.
func (p Profile) Validate() error {
	if p.Logo != "" && !strings.HasPrefix(p.Logo, "data:image/") {
		return errs.NewValueIsInvalidErrorWithCause("logo", errors.New("logo must be a data:image URL"))
	}
	return nil
}

// HasLogo reports whether a logo is configured.
func (p Profile) HasLogo() bool {
	return p.Logo != ""
}
