package phonenumber

import (
	"strings"
	"testing"

	"github.com/jlibs/phonenumber/internal/testutil"
)

func TestDialNumber_CrossRegion(t *testing.T) {
	t.Parallel()
	cn := NewChina("075586105638")
	hk := NewHongKong("23154678")

	testutil.Equal(t, "00 852 23154678", cn.DialNumber(hk))
	testutil.Equal(t, "001 86 75586105638", hk.DialNumber(cn))
}

func TestDialNumber_Domestic(t *testing.T) {
	t.Parallel()
	a := NewChina("0755 86105638")
	b := NewChina("13800138000")
	testutil.Equal(t, "13800138000", a.DialNumber(b))
	testutil.Equal(t, "075586105638", b.DialNumber(a))

	h1 := NewHongKong("23154678")
	h2 := NewHongKong("91234567")
	testutil.Equal(t, "91234567", h1.DialNumber(h2))
}

func TestDialNumber_KeepsTrunkZeroDomestically(t *testing.T) {
	t.Parallel()
	from := NewChina("13800138000")
	to := NewChina("010 12345678")
	testutil.Equal(t, "01012345678", from.DialNumber(to))
	testutil.Equal(t, "00 852 91234567", from.DialNumber(NewHongKong("+852 9123 4567")))
}

func TestShowNumber(t *testing.T) {
	t.Parallel()
	cases := []struct {
		n    PhoneNumber
		want string
	}{
		{NewChina("+86 (0755) 86105638"), "+86 75586105638"},
		{NewChina("13800138000"), "+86 13800138000"},
		{NewChina("110"), "+86 110"},
		{NewHongKong("23154678"), "+852 23154678"},
		{NewChina(""), "+86 "},
	}
	for _, c := range cases {
		got := c.n.ShowNumber()
		testutil.Equal(t, c.want, got)
		prefix := "+" + c.n.InternationalAreaCode() + " "
		testutil.False(t, strings.HasPrefix(got, prefix+"0"), "%q has a zero after the prefix", got)
	}
}

func TestShowNumber_NoInternationalAreaCode(t *testing.T) {
	t.Parallel()
	b := base{number: "075586105638", internationalPrefixCode: "00"}
	testutil.Equal(t, "075586105638", b.ShowNumber())

	other := NewHongKong("23154678")
	testutil.Equal(t, "23154678", b.DialNumber(other))
	testutil.Equal(t, "075586105638", other.DialNumber(b))
}

func TestKeyAndEqual(t *testing.T) {
	t.Parallel()
	a := NewChina("+86 (0755) 86105638")
	b := NewChinaWithAreaCode("0755", "8610-5638")
	c := NewHongKong("23154678")

	testutil.True(t, Equal(a, b))
	testutil.False(t, Equal(a, c))
	testutil.Equal(t, Key{InternationalAreaCode: "86", Number: "075586105638"}, KeyOf(a))

	seen := map[Key]bool{}
	for _, n := range []PhoneNumber{a, b, c, NewHongKong("+852 23154678")} {
		seen[KeyOf(n)] = true
	}
	testutil.Equal(t, 2, len(seen))
}

func TestVariantsImplementPhoneNumber(t *testing.T) {
	t.Parallel()
	var _ PhoneNumber = China{}
	var _ PhoneNumber = HongKong{}
	var _ PhoneNumber = &China{}
}
