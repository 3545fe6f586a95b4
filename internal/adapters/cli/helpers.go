package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fahrwerk/bikesim/internal/domain/catalog"
)

// requireSession ensures the --session flag was given
func requireSession() error {
	if sessionName == "" {
		return fmt.Errorf("no session specified: use --session <name>")
	}
	return nil
}

// formatMoney renders a decimal amount with a currency suffix
func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " EUR"
}

// printWarnings echoes operation warnings to the terminal
func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

// splitLine splits a colon-separated plan line and checks the field count
func splitLine(line string, fields int) ([]string, error) {
	parts := strings.Split(line, ":")
	if len(parts) != fields {
		return nil, fmt.Errorf("invalid line %q: expected %d colon-separated fields", line, fields)
	}
	return parts, nil
}

// parseQuantity parses the numeric tail of a plan line
func parseQuantity(s, line string) (int, error) {
	qty, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity in line %q: %w", line, err)
	}
	return qty, nil
}

// parseTransferLine splits a transfer plan line. The item field may itself
// contain a colon (finished bicycles are addressed as model:tier), so the
// line is split from the right.
func parseTransferLine(line string) (item, from, to string, qty int, err error) {
	parts := strings.Split(line, ":")
	if len(parts) < 4 {
		return "", "", "", 0, fmt.Errorf("invalid line %q: expected item:from:to:quantity", line)
	}
	n := len(parts)
	qty, err = parseQuantity(parts[n-1], line)
	if err != nil {
		return "", "", "", 0, err
	}
	return strings.Join(parts[:n-3], ":"), parts[n-3], parts[n-2], qty, nil
}

// sortedMapKeys returns the keys of a string-keyed map in sorted order
func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// parseTier validates the tier field of a plan line
func parseTier(s, line string) (catalog.QualityTier, error) {
	tier, err := catalog.ParseTier(s)
	if err != nil {
		return "", fmt.Errorf("invalid tier in line %q: %w", line, err)
	}
	return tier, nil
}
