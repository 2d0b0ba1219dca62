package translate

import (
	"errors"
	"fmt"
	"strings"

	"namelist-generator/internal/common"
)

// ErrInvalidLogical reports a logical default value that is recognizable as
// neither true nor false. Unrecoverable, same as ErrUnknownType.
var ErrInvalidLogical = errors.New("invalid logical value")

// NormalizeValue formats a raw default value for the namelist definition
// according to the option kind.
func NormalizeValue(kind Kind, rawValue string) (string, error) {
	switch kind {
	case KindChar:
		// Character defaults are opaque and case-sensitive.
		return strings.TrimSpace(rawValue), nil
	case KindInteger:
		return common.Canon(rawValue), nil
	case KindLogical:
		return normalizeLogical(common.Canon(rawValue))
	case KindReal:
		return repairRealLiteral(common.Canon(rawValue)), nil
	default:
		return "", fmt.Errorf("%w: kind %d", ErrUnknownType, int(kind))
	}
}

// normalizeLogical canonicalizes a lowercased logical default to the target
// grammar's .true./.false. spellings.
func normalizeLogical(value string) (string, error) {
	switch {
	case strings.HasPrefix(value, "t"), strings.HasPrefix(value, ".t"):
		return ".true.", nil
	case strings.HasPrefix(value, "f"), strings.HasPrefix(value, ".f"):
		return ".false.", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLogical, value)
	}
}

// repairRealLiteral patches a lowercased real default so that digits surround
// the decimal point and exponent markers, as the target literal grammar
// requires. Registry values like ".5", "5.", "1.e3", or "1.d2" are legal
// there but not here.
//
// The repair is idempotent: a repaired literal contains neither a bare
// leading/trailing point nor a ".d"/".e" pair.
func repairRealLiteral(value string) string {
	if strings.HasPrefix(value, ".") {
		value = "0" + value
	}

	if strings.HasSuffix(value, ".") {
		value += "0"
	}

	if i := strings.Index(value, ".d"); i != -1 {
		value = value[:i+1] + "0" + value[i+1:]
	}

	if i := strings.Index(value, ".e"); i != -1 {
		value = value[:i+1] + "0" + value[i+1:]
	}

	return value
}
