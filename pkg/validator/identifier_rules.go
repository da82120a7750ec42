package validator

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var isinRegex = regexp.MustCompile(`^[A-Z]{2}[0-9A-Z]{9}[0-9]$`)

// IsUUID reports whether str is a canonical UUID. Version 3, 4 or 5 also
// checks the version nibble (and the RFC 4122 variant); 0 accepts any.
func IsUUID(str string, version ...int) bool {
	// Fast rejection before parsing: canonical form only
	if len(str) != 36 {
		return false
	}
	if str[8] != '-' || str[13] != '-' || str[18] != '-' || str[23] != '-' {
		return false
	}

	u, err := uuid.Parse(str)
	if err != nil {
		return false
	}

	v := 0
	if len(version) > 0 {
		v = version[0]
	}
	switch v {
	case 0:
		return true
	case 3, 4, 5:
		if int(u.Version()) != v {
			return false
		}
		return v == 3 || u.Variant() == uuid.RFC4122
	default:
		return false
	}
}

// IsMongoId reports whether str is a hex encoded MongoDB ObjectID.
func IsMongoId(str string) bool {
	_, err := bson.ObjectIDFromHex(str)
	return err == nil
}

// IsCreditCard reports whether str is a Luhn-valid card number. Spaces and
// dashes between digit groups are ignored.
func IsCreditCard(str string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(str, " ", ""), "-", "")
	return playground(cleaned, "credit_card")
}

// IsISBN reports whether str is an ISBN. Version 10 or 13 narrows the
// check; 0 accepts either. Spaces and hyphens are ignored.
func IsISBN(str string, version ...int) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(str, " ", ""), "-", "")
	v := 0
	if len(version) > 0 {
		v = version[0]
	}
	switch v {
	case 0:
		return playground(cleaned, "isbn10") || playground(cleaned, "isbn13")
	case 10:
		return playground(cleaned, "isbn10")
	case 13:
		return playground(cleaned, "isbn13")
	default:
		return false
	}
}

// IsISIN reports whether str is an International Securities Identification
// Number with a valid check digit.
func IsISIN(str string) bool {
	if !isinRegex.MatchString(str) {
		return false
	}

	// Letters expand to their base-36 value (A=10 ... Z=35)
	var digits strings.Builder
	for _, r := range str[:len(str)-1] {
		if r >= 'A' && r <= 'Z' {
			n := int(r-'A') + 10
			digits.WriteByte(byte('0' + n/10))
			digits.WriteByte(byte('0' + n%10))
			continue
		}
		digits.WriteRune(r)
	}

	expanded := digits.String()
	sum := 0
	double := true
	for i := len(expanded) - 1; i >= 0; i-- {
		d := int(expanded[i] - '0')
		if double {
			d *= 2
			if d >= 10 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	check := int(str[len(str)-1] - '0')
	return (10-sum%10)%10 == check
}
