package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/width"

	"github.com/jlibs/phonenumber"
)

// prepareInput maps fullwidth digits and punctuation to their ASCII forms
// when fold is set. Chinese input methods commonly produce "１３８" or "（０７５５）".
func prepareInput(raw string, fold bool) string {
	if !fold {
		return raw
	}
	return width.Fold.String(raw)
}

// parseNumber prepares raw and parses it for region, logging the outcome.
func parseNumber(e *env, region phonenumber.Region, raw string) (phonenumber.PhoneNumber, error) {
	n, err := phonenumber.Parse(region, prepareInput(raw, e.cfg.Input.FoldWidth))
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", raw, err)
	}
	e.logger.Debug("classified number",
		slog.String("input", raw),
		slog.String("region", region.String()),
		slog.String("category", n.Category().String()),
		slog.String("number", n.Number()),
	)
	return n, nil
}

// resolveRegion returns the region named by the flag, or the configured
// default when the flag is empty.
func resolveRegion(e *env, flagValue string) (phonenumber.Region, error) {
	if flagValue == "" {
		return e.cfg.Region(), nil
	}
	r, err := phonenumber.ParseRegion(flagValue)
	if err != nil {
		return 0, fmt.Errorf("region %q: %w (supported: cn, hk)", flagValue, err)
	}
	return r, nil
}

// readNumbers returns one entry per non-blank line of r. Lines starting
// with '#' are comments.
func readNumbers(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return out, nil
}
