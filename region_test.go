package phonenumber

import (
	"errors"
	"testing"

	"github.com/jlibs/phonenumber/internal/testutil"
)

func TestParseRegion(t *testing.T) {
	t.Parallel()
	cases := []struct {
		input string
		want  Region
	}{
		{"CN", RegionChina},
		{"cn", RegionChina},
		{" China ", RegionChina},
		{"+86", RegionChina},
		{"HK", RegionHongKong},
		{"Hong Kong", RegionHongKong},
		{"hong_kong", RegionHongKong},
		{"852", RegionHongKong},
	}
	for _, c := range cases {
		got, err := ParseRegion(c.input)
		testutil.NoError(t, err)
		testutil.Equal(t, c.want, got)
	}
}

func TestParseRegion_Unknown(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"", "us", "853", "macau"} {
		_, err := ParseRegion(s)
		testutil.True(t, errors.Is(err, ErrUnknownRegion), "ParseRegion(%q): got %v", s, err)
	}
}

func TestRegionCodes(t *testing.T) {
	t.Parallel()
	testutil.Equal(t, "CN", RegionChina.String())
	testutil.Equal(t, "86", RegionChina.InternationalAreaCode())
	testutil.Equal(t, "00", RegionChina.InternationalPrefixCode())
	testutil.Equal(t, "HK", RegionHongKong.String())
	testutil.Equal(t, "Hong Kong", RegionHongKong.Name())
	testutil.Equal(t, "852", RegionHongKong.InternationalAreaCode())
	testutil.Equal(t, "001", RegionHongKong.InternationalPrefixCode())
	testutil.Equal(t, "??", Region(0).String())
	testutil.SliceLen(t, Regions(), 2)
}

func TestParse(t *testing.T) {
	t.Parallel()
	n, err := Parse(RegionChina, "+86-13800138000")
	testutil.NoError(t, err)
	testutil.Equal(t, Cellular, n.Category())
	_, ok := n.(China)
	testutil.True(t, ok, "expected China, got %T", n)

	h, err := Parse(RegionHongKong, "23154678")
	testutil.NoError(t, err)
	testutil.Equal(t, LandLine, h.Category())

	_, err = Parse(Region(42), "110")
	testutil.True(t, errors.Is(err, ErrUnknownRegion))
}

func TestCategoryString(t *testing.T) {
	t.Parallel()
	testutil.Equal(t, "landline", LandLine.String())
	testutil.Equal(t, "hotline", HotLine.String())
	testutil.Equal(t, "other", Other.String())
	testutil.Equal(t, "category(7)", Category(7).String())

	text, err := Service.MarshalText()
	testutil.NoError(t, err)
	testutil.Equal(t, "service", string(text))
}
