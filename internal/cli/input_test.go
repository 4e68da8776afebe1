package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/jlibs/phonenumber"
	"github.com/jlibs/phonenumber/internal/config"
	"github.com/jlibs/phonenumber/internal/testutil"
)

func testEnv(t *testing.T) *env {
	t.Helper()
	return &env{
		cfg:    config.Default(),
		logger: testutil.DiscardLogger(),
		format: "table",
		out:    &bytes.Buffer{},
	}
}

func TestPrepareInput(t *testing.T) {
	t.Parallel()
	testutil.Equal(t, "(0755)86105638", prepareInput("（０７５５）８６１０５６３８", true))
	testutil.Equal(t, "１３８", prepareInput("１３８", false))
	testutil.Equal(t, "+86 138", prepareInput("+86 138", true))
}

func TestReadNumbers(t *testing.T) {
	t.Parallel()
	in := "  13800138000  \n\n# comment\n110\n   # indented comment\n23154678"
	got, err := readNumbers(strings.NewReader(in))
	testutil.NoError(t, err)
	testutil.SliceLen(t, got, 3)
	testutil.Equal(t, "13800138000", got[0])
	testutil.Equal(t, "110", got[1])
	testutil.Equal(t, "23154678", got[2])
}

func TestResolveRegion(t *testing.T) {
	t.Parallel()
	e := testEnv(t)

	r, err := resolveRegion(e, "")
	testutil.NoError(t, err)
	testutil.Equal(t, phonenumber.RegionChina, r)

	r, err = resolveRegion(e, "Hong Kong")
	testutil.NoError(t, err)
	testutil.Equal(t, phonenumber.RegionHongKong, r)

	_, err = resolveRegion(e, "jp")
	testutil.ErrorContains(t, err, "supported: cn, hk")
}

func TestClassifyAllDedupe(t *testing.T) {
	t.Parallel()
	e := testEnv(t)
	lines := []string{"0755 86105638", "+86 755 86105638", "13800138000", "+86 0755-86105638"}

	recs, dropped, err := classifyAll(e, phonenumber.RegionChina, lines, true)
	testutil.NoError(t, err)
	testutil.SliceLen(t, recs, 2)
	testutil.Equal(t, 2, dropped)
	testutil.Equal(t, "075586105638", recs[0].Number)
	testutil.Equal(t, phonenumber.Cellular, recs[1].Category)

	recs, dropped, err = classifyAll(e, phonenumber.RegionChina, lines, false)
	testutil.NoError(t, err)
	testutil.SliceLen(t, recs, 4)
	testutil.Equal(t, 0, dropped)
}

func TestNewRecord(t *testing.T) {
	t.Parallel()
	cn := newRecord("010-12345678", phonenumber.NewChina("010-12345678"))
	testutil.Equal(t, "10", cn.AreaCode)
	testutil.Equal(t, "12345678", cn.LocalNumber)
	testutil.Equal(t, "+86 1012345678", cn.Display)

	hk := newRecord("9123 4567", phonenumber.NewHongKong("9123 4567"))
	testutil.Equal(t, "", hk.AreaCode)
	testutil.Equal(t, "91234567", hk.LocalNumber)
	testutil.Equal(t, phonenumber.Cellular, hk.Category)
}

func TestWriteRecordsTable(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	recs := []record{newRecord("110", phonenumber.NewChina("110"))}
	testutil.NoError(t, writeRecords(&buf, "table", recs))
	out := buf.String()
	testutil.Contains(t, out, "INPUT")
	testutil.Contains(t, out, "emergency")
	testutil.Contains(t, out, " - ")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger, lvl := newLogger(&buf, "info", "json")
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")
	testutil.NotContains(t, buf.String(), "hidden")
	testutil.Contains(t, buf.String(), `"msg":"shown"`)

	lvl.Set(slog.LevelDebug)
	logger.Debug("now visible")
	testutil.Contains(t, buf.String(), "now visible")
}

func TestParseSlogLevel(t *testing.T) {
	t.Parallel()
	testutil.Equal(t, slog.LevelDebug, parseSlogLevel("debug"))
	testutil.Equal(t, slog.LevelInfo, parseSlogLevel("info"))
	testutil.Equal(t, slog.LevelError, parseSlogLevel("error"))
	testutil.Equal(t, slog.LevelWarn, parseSlogLevel("warn"))
	testutil.Equal(t, slog.LevelWarn, parseSlogLevel(""))
}
