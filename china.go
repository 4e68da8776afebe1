package phonenumber

import "strings"

// China is a mainland China number.
type China struct {
	base
	areaCode    string
	localNumber string
}

// chinaRule classifies n when match reports true. areaLen is the number of
// leading digits split off as the area code.
type chinaRule struct {
	match    func(n string) bool
	category func(n string) Category
	areaLen  func(n string) int
}

func always(c Category) func(string) Category { return func(string) Category { return c } }

func noArea(string) int { return 0 }

func hasAnyPrefix(n string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(n, p) {
			return true
		}
	}
	return false
}

func digitIn(c byte, lo, hi byte) bool { return c >= lo && c <= hi }

// chinaRules is evaluated top to bottom; the first match wins.
var chinaRules = []chinaRule{
	// Beijing: short service codes, otherwise a landline under area code 10.
	{
		match: func(n string) bool { return strings.HasPrefix(n, "10") },
		category: func(n string) Category {
			if len(n) < 7 {
				return Service
			}
			return LandLine
		},
		areaLen: func(n string) int {
			if len(n) < 7 {
				return 0
			}
			return 2
		},
	},
	{
		match: func(n string) bool { return hasAnyPrefix(n, "11", "12") },
		category: func(n string) Category {
			if len(n) == 3 {
				return Emergency
			}
			return Other
		},
		areaLen: noArea,
	},
	{
		match: func(n string) bool { return hasAnyPrefix(n, "400", "800") },
		category: func(n string) Category {
			if len(n) == 10 {
				return HotLine
			}
			return Other
		},
		areaLen: noArea,
	},
	{
		match:    func(n string) bool { return hasAnyPrefix(n, "95", "96") && len(n) < 7 },
		category: always(Service),
		areaLen:  noArea,
	},
	{
		match:    func(n string) bool { return len(n) == 11 && n[0] == '1' && digitIn(n[1], '3', '9') },
		category: always(Cellular),
		areaLen:  noArea,
	},
	{
		match:    func(n string) bool { return len(n) >= 9 && len(n) <= 11 && digitIn(n[0], '2', '9') },
		category: always(LandLine),
		areaLen: func(n string) int {
			if n[0] == '2' {
				return 2
			}
			return 3
		},
	},
}

// classifyChina returns the category, area code, and local number of raw.
func classifyChina(raw string) (Category, string, string) {
	n := TrimLeadingZeros(Normalize(raw))
	if rest, ok := strings.CutPrefix(n, "86"); ok {
		n = TrimLeadingZeros(rest)
	}
	for _, r := range chinaRules {
		if !r.match(n) {
			continue
		}
		k := r.areaLen(n)
		return r.category(n), n[:k], n[k:]
	}
	return Other, "", n
}

// NewChina parses raw as a mainland China number. Landlines must include
// their area code. An embedded "+86" is accepted.
func NewChina(raw string) China {
	category, area, local := classifyChina(raw)
	number := local
	if area != "" {
		number = "0" + area + local
	}
	return China{
		base:        newBase(RegionChina, number, category),
		areaCode:    area,
		localNumber: local,
	}
}

// NewChinaWithAreaCode parses a number given as a separate area code and
// local number. area may be empty.
func NewChinaWithAreaCode(area, number string) China {
	return NewChina(area + number)
}

// AreaCode returns the landline area code without its trunk zero, e.g.
// "10", "20", "755". It is empty for every other category.
func (c China) AreaCode() string { return c.areaCode }

// LocalNumber returns the number without its area code.
func (c China) LocalNumber() string { return c.localNumber }

// IsHotLine reports whether c is a 400/800 hotline.
func (c China) IsHotLine() bool { return c.category == HotLine }

// IsService reports whether c is a 10/95/96 corporate service code.
func (c China) IsService() bool { return c.category == Service }
