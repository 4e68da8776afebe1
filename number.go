package phonenumber

import "strings"

// PhoneNumber is a parsed number in one of the supported regions. The set of
// implementations is closed: China and HongKong.
type PhoneNumber interface {
	// Number is the complete in-country number, including any local area
	// code, excluding the international prefix and area code.
	Number() string
	InternationalAreaCode() string
	InternationalPrefixCode() string
	Region() Region
	Category() Category

	IsLandLine() bool
	IsCellular() bool
	IsEmergency() bool

	// ShowNumber returns the number in international display form,
	// e.g. "+86 13800138000".
	ShowNumber() string
	// DialNumber returns what to dial from this number's region to reach to.
	DialNumber(to PhoneNumber) string

	common() base
}

// base holds the fields shared by every region and implements the
// formatting operations once.
type base struct {
	region                  Region
	internationalAreaCode   string
	internationalPrefixCode string
	number                  string
	category                Category
}

func newBase(r Region, number string, category Category) base {
	return base{
		region:                  r,
		internationalAreaCode:   TrimLeadingZeros(Normalize(r.InternationalAreaCode())),
		internationalPrefixCode: Normalize(r.InternationalPrefixCode()),
		number:                  Normalize(number),
		category:                category,
	}
}

func (b base) common() base { return b }

func (b base) Number() string                  { return b.number }
func (b base) InternationalAreaCode() string   { return b.internationalAreaCode }
func (b base) InternationalPrefixCode() string { return b.internationalPrefixCode }
func (b base) Region() Region                  { return b.region }
func (b base) Category() Category              { return b.category }

func (b base) IsLandLine() bool  { return b.category == LandLine }
func (b base) IsCellular() bool  { return b.category == Cellular }
func (b base) IsEmergency() bool { return b.category == Emergency }

func (b base) ShowNumber() string {
	if b.internationalAreaCode == "" {
		return b.number
	}
	return "+" + b.internationalAreaCode + " " + TrimLeadingZeros(b.number)
}

// DialNumber uses the caller's prefix code with the callee's area code and
// number. Calls within one international area code are dialed domestically.
func (b base) DialNumber(to PhoneNumber) string {
	t := to.common()
	if b.internationalAreaCode == "" || t.internationalAreaCode == "" || b.internationalAreaCode == t.internationalAreaCode {
		return t.number
	}
	return strings.Join([]string{b.internationalPrefixCode, t.internationalAreaCode, TrimLeadingZeros(t.number)}, " ")
}

// Key identifies a dialable number. It is comparable and can be used as a
// map key.
type Key struct {
	InternationalAreaCode string
	Number                string
}

// KeyOf returns the identity key of n.
func KeyOf(n PhoneNumber) Key {
	b := n.common()
	return Key{InternationalAreaCode: b.internationalAreaCode, Number: b.number}
}

// Equal reports whether a and b denote the same dialable number.
func Equal(a, b PhoneNumber) bool {
	return KeyOf(a) == KeyOf(b)
}
