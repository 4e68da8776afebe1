package phonenumber

import (
	"errors"
	"strings"
)

// ErrUnknownRegion is returned when a region name or code is not supported.
var ErrUnknownRegion = errors.New("unknown region")

// Region identifies one of the supported numbering plans.
type Region int

const (
	RegionChina Region = iota + 1
	RegionHongKong
)

type regionInfo struct {
	code                    string // ISO 3166-1 alpha-2
	name                    string
	internationalAreaCode   string
	internationalPrefixCode string
}

var regions = map[Region]regionInfo{
	RegionChina:    {code: "CN", name: "China", internationalAreaCode: "86", internationalPrefixCode: "00"},
	RegionHongKong: {code: "HK", name: "Hong Kong", internationalAreaCode: "852", internationalPrefixCode: "001"},
}

var regionAliases = map[string]Region{
	"cn":        RegionChina,
	"china":     RegionChina,
	"86":        RegionChina,
	"+86":       RegionChina,
	"hk":        RegionHongKong,
	"hongkong":  RegionHongKong,
	"hong-kong": RegionHongKong,
	"hong_kong": RegionHongKong,
	"852":       RegionHongKong,
	"+852":      RegionHongKong,
}

// Regions returns all supported regions in declaration order.
func Regions() []Region {
	return []Region{RegionChina, RegionHongKong}
}

// ParseRegion resolves an ISO code, name, or international area code to a
// Region. Matching is case-insensitive.
func ParseRegion(s string) (Region, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "")
	if r, ok := regionAliases[key]; ok {
		return r, nil
	}
	return 0, ErrUnknownRegion
}

// String returns the ISO 3166-1 alpha-2 code, e.g. "CN".
func (r Region) String() string {
	if info, ok := regions[r]; ok {
		return info.code
	}
	return "??"
}

// Name returns a human-readable region name.
func (r Region) Name() string {
	return regions[r].name
}

// InternationalAreaCode returns the calling code dialed after the
// international prefix, e.g. "86".
func (r Region) InternationalAreaCode() string {
	return regions[r].internationalAreaCode
}

// InternationalPrefixCode returns the dial-out prefix used inside the
// region, e.g. "00".
func (r Region) InternationalPrefixCode() string {
	return regions[r].internationalPrefixCode
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Parse builds the region-specific number for raw. Parsing the number itself
// never fails; the only error is ErrUnknownRegion.
func Parse(r Region, raw string) (PhoneNumber, error) {
	switch r {
	case RegionChina:
		return NewChina(raw), nil
	case RegionHongKong:
		return NewHongKong(raw), nil
	}
	return nil, ErrUnknownRegion
}
