package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jlibs/phonenumber/internal/testutil"
)

// --- FormatError ---

func TestFormatErrorBasicMessage(t *testing.T) {
	out := FormatError("unknown region")
	testutil.Contains(t, out, "Error:")
	testutil.Contains(t, out, "unknown region")
	testutil.NotContains(t, out, "Try:")
}

func TestFormatErrorWithSuggestions(t *testing.T) {
	out := FormatError(`unknown region "us"`,
		"phonenumber parse --region cn 13800138000",
		"phonenumber parse --region hk 23154678",
	)
	testutil.Contains(t, out, "Try:")
	testutil.Contains(t, out, "--region cn")
	testutil.Contains(t, out, "--region hk")
	testutil.Contains(t, out, SymbolArrow)
}

// --- StepSpinner (non-TTY mode) ---

func TestStepSpinnerNoSpinDone(t *testing.T) {
	var buf bytes.Buffer
	sp := NewStepSpinner(&buf, true)
	sp.Start("Classifying numbers...")
	sp.Update("Classifying numbers... 10")
	sp.Done()

	out := buf.String()
	testutil.Contains(t, out, "Classifying numbers...")
	testutil.NotContains(t, out, "10")
	testutil.Contains(t, out, SymbolCheck)
}

func TestStepSpinnerNoSpinFail(t *testing.T) {
	var buf bytes.Buffer
	sp := NewStepSpinner(&buf, true)
	sp.Start("Reading input...")
	sp.Fail()
	testutil.Contains(t, buf.String(), SymbolCross)
}

func TestStepSpinnerWithoutStartNoPanic(t *testing.T) {
	var buf bytes.Buffer
	sp := NewStepSpinner(&buf, true)
	sp.Stop()
	sp.Update("ignored")
	sp.Done()
	sp.Fail()
}

func TestStepSpinnerMultipleSteps(t *testing.T) {
	var buf bytes.Buffer
	sp := NewStepSpinner(&buf, true)
	sp.Start("Step 1...")
	sp.Done()
	sp.Start("Step 2...")
	sp.Done()

	out := buf.String()
	testutil.Contains(t, out, "Step 1...")
	testutil.Contains(t, out, "Step 2...")
	testutil.Equal(t, 2, strings.Count(out, SymbolCheck))
}

// --- ColorEnabled ---

func TestColorEnabledRespectsNO_COLOR(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	testutil.False(t, ColorEnabled())
	testutil.False(t, ColorEnabledFd(os.Stdout.Fd()))
}

// --- Paint ---

func TestPaintWithoutColor(t *testing.T) {
	testutil.Equal(t, "landline", Paint(StyleSuccess, "landline", false))
}

func TestPaintWithColor(t *testing.T) {
	out := Paint(StyleBold, "landline", true)
	testutil.Contains(t, out, "landline")
	testutil.Contains(t, out, "\x1b[")
}
