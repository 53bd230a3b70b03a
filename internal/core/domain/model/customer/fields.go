package customer

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"ecommerce/internal/pkg/errs"
)

const (
	MaxPersonNameLength  = 50
	MaxRecipientLength   = 100
	MaxAddressLineLength = 255
	MaxLandmarkLength    = 100
	MaxPostalCodeLength  = 6
	PhoneNumberLength    = 10
)

var (
	phonePattern      = regexp.MustCompile(`^[0-9]{10}$`)
	postalCodePattern = regexp.MustCompile(`^[0-9]{1,6}$`)
)

func requiredText(paramName, value string, maxLength int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return optionalText(paramName, value, maxLength)
}

func optionalText(paramName, value string, maxLength int) (string, error) {
	value = strings.TrimSpace(value)
	if n := utf8.RuneCountInString(value); n > maxLength {
		return "", errs.NewValueIsOutOfRangeError(paramName+" length", n, 0, maxLength)
	}
	return value, nil
}

func phoneNumber(paramName, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	if !phonePattern.MatchString(value) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			paramName, fmt.Errorf("%q must be exactly %d digits", value, PhoneNumberLength))
	}
	return value, nil
}

func postalCode(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError("pincode")
	}
	if !postalCodePattern.MatchString(value) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"pincode", fmt.Errorf("%q must be up to %d digits", value, MaxPostalCodeLength))
	}
	return value, nil
}

// emailAddress accepts a bare address only; display-name forms are rejected.
func emailAddress(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError("email")
	}
	parsed, err := mail.ParseAddress(value)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if parsed.Address != value {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a bare address", value))
	}
	return strings.ToLower(value), nil
}
