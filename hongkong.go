package phonenumber

import "strings"

// HongKong is a Hong Kong number. Hong Kong has a flat numbering plan, so
// there is no area code.
//
// IsEmergency is always false: no rule assigns the Emergency category.
type HongKong struct {
	base
}

func classifyHongKong(raw string) (Category, string) {
	n := TrimLeadingZeros(Normalize(raw))
	if rest, ok := strings.CutPrefix(n, "852"); ok {
		n = TrimLeadingZeros(rest)
	}
	switch {
	case n == "":
		return Other, n
	case n[0] == '2' || n[0] == '3':
		return LandLine, n
	case digitIn(n[0], '5', '9') && n[0] != '7':
		return Cellular, n
	}
	return Other, n
}

// NewHongKong parses raw as a Hong Kong number. An embedded "+852" is
// accepted.
func NewHongKong(raw string) HongKong {
	category, n := classifyHongKong(raw)
	return HongKong{base: newBase(RegionHongKong, n, category)}
}
