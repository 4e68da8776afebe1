package phonenumber

import "fmt"

// Category is the classification assigned to a number during parsing.
type Category int

// Numeric values are stable and may be stored.
const (
	Unknown   Category = 0 // zero value; never assigned to a parsed number
	LandLine  Category = 1
	Cellular  Category = 2
	Emergency Category = 3
	HotLine   Category = 4 // 400/800 numbers
	Service   Category = 5 // short corporate service codes such as 10010, 95599
	Other     Category = 99
)

var categoryNames = map[Category]string{
	Unknown:   "unknown",
	LandLine:  "landline",
	Cellular:  "cellular",
	Emergency: "emergency",
	HotLine:   "hotline",
	Service:   "service",
	Other:     "other",
}

// String returns the lowercase category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
