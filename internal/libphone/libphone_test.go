package libphone

import (
	"testing"

	"github.com/nyaruka/phonenumbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jlibs/phonenumber"
)

func TestCheck_ChinaMobile(t *testing.T) {
	t.Parallel()
	res := Check(phonenumber.NewChina("+86-13800138000"))

	require.True(t, res.Parsed)
	assert.Equal(t, "+8613800138000", res.Input)
	assert.True(t, res.Valid)
	assert.Equal(t, "CN", res.Region)
	assert.Equal(t, "mobile", res.Type)
	assert.Equal(t, "+8613800138000", res.E164)
	assert.Equal(t, "cellular", res.Category)
	assert.True(t, res.Agrees)
}

func TestCheck_HongKongLandLine(t *testing.T) {
	t.Parallel()
	res := Check(phonenumber.NewHongKong("2315 4678"))

	require.True(t, res.Parsed)
	assert.Equal(t, "+85223154678", res.Input)
	assert.True(t, res.Valid)
	assert.Equal(t, "HK", res.Region)
	assert.Equal(t, "landline", res.Category)
}

func TestCheck_EmergencyIsShortCode(t *testing.T) {
	t.Parallel()
	res := Check(phonenumber.NewChina("110"))

	assert.Equal(t, "+86110", res.Input)
	assert.False(t, res.Valid)
	assert.Empty(t, res.E164)
	assert.Equal(t, "emergency", res.Category)
	assert.True(t, res.Agrees)
}

func TestCheck_EmptyNumber(t *testing.T) {
	t.Parallel()
	res := Check(phonenumber.NewChina(""))

	assert.Empty(t, res.Input)
	assert.False(t, res.Parsed)
	assert.False(t, res.Valid)
	assert.Equal(t, "unknown", res.Type)
	assert.Equal(t, "other", res.Category)
	assert.True(t, res.Agrees)
}

func TestCompatible(t *testing.T) {
	t.Parallel()
	cases := []struct {
		category phonenumber.Category
		valid    bool
		numType  phonenumbers.PhoneNumberType
		want     bool
	}{
		{phonenumber.LandLine, true, phonenumbers.FIXED_LINE, true},
		{phonenumber.LandLine, true, phonenumbers.FIXED_LINE_OR_MOBILE, true},
		{phonenumber.LandLine, true, phonenumbers.MOBILE, false},
		{phonenumber.LandLine, false, phonenumbers.FIXED_LINE, false},
		{phonenumber.Cellular, true, phonenumbers.MOBILE, true},
		{phonenumber.Cellular, true, phonenumbers.FIXED_LINE, false},
		{phonenumber.HotLine, true, phonenumbers.TOLL_FREE, true},
		{phonenumber.HotLine, true, phonenumbers.SHARED_COST, true},
		{phonenumber.HotLine, false, phonenumbers.UNKNOWN, false},
		{phonenumber.Emergency, false, phonenumbers.UNKNOWN, true},
		{phonenumber.Service, true, phonenumbers.FIXED_LINE, false},
		{phonenumber.Other, false, phonenumbers.UNKNOWN, true},
		{phonenumber.Other, true, phonenumbers.MOBILE, false},
		{phonenumber.Unknown, false, phonenumbers.UNKNOWN, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Compatible(c.category, c.valid, c.numType), "%v valid=%v type=%v", c.category, c.valid, TypeName(c.numType))
	}
}

func TestTypeName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "mobile", TypeName(phonenumbers.MOBILE))
	assert.Equal(t, "toll_free", TypeName(phonenumbers.TOLL_FREE))
	assert.Equal(t, "unknown", TypeName(phonenumbers.PhoneNumberType(-7)))
}
