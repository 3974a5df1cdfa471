package spec

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/matzehuels/ffimg/pkg/errors"
)

// spelledUnits are unit words humanize does not know, longest first.
var spelledUnits = []string{"bytes", "byte"}

// ParseSize converts a human-readable size such as "16 bytes", "1 byte",
// "2 KiB" or "1.5 MB" into an exact byte count. Binary prefixes (KiB, MiB)
// are powers of 1024 and SI prefixes (kB, MB) powers of 1000.
// A size of zero, or one that is not a whole number of bytes ("1.5 bytes"),
// is rejected.
func ParseSize(s string) (uint64, error) {
	norm := strings.TrimSpace(s)
	if norm == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "size is empty")
	}

	lower := strings.ToLower(norm)
	for _, unit := range spelledUnits {
		if strings.HasSuffix(lower, unit) {
			norm = strings.TrimSpace(norm[:len(norm)-len(unit)]) + " B"
			break
		}
	}

	end := strings.IndexFunc(norm, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.' && r != ','
	})
	if end < 0 {
		end = len(norm)
	}
	num, unit := strings.ReplaceAll(norm[:end], ",", ""), strings.TrimSpace(norm[end:])

	count, ok := new(big.Rat).SetString(num)
	if num == "" || !ok {
		return 0, errors.New(errors.ErrCodeInvalidInput, "cannot parse size %q", s)
	}

	// humanize resolves the unit; the count is multiplied exactly so that
	// fractions are not silently truncated.
	mult, err := humanize.ParseBytes("1 " + unit)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot parse size %q", s)
	}
	count.Mul(count, new(big.Rat).SetUint64(mult))

	if !count.IsInt() {
		return 0, errors.New(errors.ErrCodeInvalidInput, "size %q is not a whole number of bytes", s)
	}
	n := count.Num()
	if !n.IsUint64() {
		return 0, errors.New(errors.ErrCodeInvalidInput, "size %q is too large", s)
	}
	if n.Sign() == 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "size %q must be greater than zero", s)
	}
	return n.Uint64(), nil
}

// FormatSize returns the canonical display label for a byte count.
// Counts below 1 KiB are spelled out ("1 byte", "16 bytes"); larger counts
// use binary prefixes with a trailing ".0" dropped ("2 KiB", "1.5 MiB").
func FormatSize(n uint64) string {
	if n < 1024 {
		return strconv.FormatUint(n, 10) + " " + english.PluralWord(int(n), "byte", "")
	}
	return strings.Replace(humanize.IBytes(n), ".0 ", " ", 1)
}
