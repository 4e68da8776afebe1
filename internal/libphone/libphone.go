// Package libphone cross-checks rule-based classification against the
// libphonenumber metadata bundled with github.com/nyaruka/phonenumbers.
package libphone

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/jlibs/phonenumber"
)

// Result reports what libphonenumber makes of a parsed number.
type Result struct {
	Input    string `json:"input"`    // "+<code><number>" passed to libphonenumber
	Parsed   bool   `json:"parsed"`   // libphonenumber could parse the input at all
	Valid    bool   `json:"valid"`    // number matches the region's metadata
	Region   string `json:"region"`   // ISO region libphonenumber assigns, "" if none
	Type     string `json:"type"`     // libphonenumber number type, lowercased
	E164     string `json:"e164"`     // "" unless Valid
	Category string `json:"category"` // our classification
	Agrees   bool   `json:"agrees"`
}

var typeNames = map[phonenumbers.PhoneNumberType]string{
	phonenumbers.FIXED_LINE:           "fixed_line",
	phonenumbers.MOBILE:               "mobile",
	phonenumbers.FIXED_LINE_OR_MOBILE: "fixed_line_or_mobile",
	phonenumbers.TOLL_FREE:            "toll_free",
	phonenumbers.PREMIUM_RATE:         "premium_rate",
	phonenumbers.SHARED_COST:          "shared_cost",
	phonenumbers.VOIP:                 "voip",
	phonenumbers.PERSONAL_NUMBER:      "personal_number",
	phonenumbers.PAGER:                "pager",
	phonenumbers.UAN:                  "uan",
	phonenumbers.VOICEMAIL:            "voicemail",
	phonenumbers.UNKNOWN:              "unknown",
}

// TypeName returns the lowercase name of a libphonenumber number type.
func TypeName(t phonenumbers.PhoneNumberType) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Check runs n through libphonenumber and reports whether the two
// classifications are compatible.
func Check(n phonenumber.PhoneNumber) Result {
	res := Result{Category: n.Category().String(), Type: "unknown"}
	digits := phonenumber.TrimLeadingZeros(n.Number())
	if n.InternationalAreaCode() == "" || digits == "" {
		res.Agrees = Compatible(n.Category(), false, phonenumbers.UNKNOWN)
		return res
	}
	res.Input = "+" + n.InternationalAreaCode() + digits

	num, err := phonenumbers.Parse(res.Input, "")
	if err != nil {
		res.Agrees = Compatible(n.Category(), false, phonenumbers.UNKNOWN)
		return res
	}
	res.Parsed = true
	res.Valid = phonenumbers.IsValidNumber(num)
	res.Region = phonenumbers.GetRegionCodeForNumber(num)
	numType := phonenumbers.GetNumberType(num)
	res.Type = TypeName(numType)
	if res.Valid {
		res.E164 = phonenumbers.Format(num, phonenumbers.E164)
	}
	res.Agrees = Compatible(n.Category(), res.Valid, numType)
	return res
}

// Compatible reports whether our category is consistent with
// libphonenumber's verdict. Short codes (emergency, service) are outside
// libphonenumber's main metadata, so they agree with an invalid verdict.
func Compatible(c phonenumber.Category, valid bool, t phonenumbers.PhoneNumberType) bool {
	switch c {
	case phonenumber.LandLine:
		return valid && (t == phonenumbers.FIXED_LINE || t == phonenumbers.FIXED_LINE_OR_MOBILE)
	case phonenumber.Cellular:
		return valid && (t == phonenumbers.MOBILE || t == phonenumbers.FIXED_LINE_OR_MOBILE)
	case phonenumber.HotLine:
		return valid && (t == phonenumbers.TOLL_FREE || t == phonenumbers.SHARED_COST || t == phonenumbers.UAN)
	case phonenumber.Emergency, phonenumber.Service, phonenumber.Other:
		return !valid
	}
	return false
}
