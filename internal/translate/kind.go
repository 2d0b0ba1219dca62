package translate

import (
	"errors"
	"fmt"

	"namelist-generator/internal/common"
)

// Kind is the closed set of option types a registry may declare.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindChar
	KindInteger
	KindLogical
	KindReal
)

// ErrUnknownType reports an option type whose first character is not one of
// c, i, l, r. The registry is assumed well-formed in this respect, so the
// condition is unrecoverable.
var ErrUnknownType = errors.New("unknown option type")

// KindOf classifies a raw registry type string by the first character of its
// lowercased, trimmed form.
func KindOf(rawType string) (Kind, error) {
	canon := common.Canon(rawType)
	if canon == "" {
		return 0, fmt.Errorf("%w: empty type", ErrUnknownType)
	}

	switch canon[0] {
	case 'c':
		return KindChar, nil
	case 'i':
		return KindInteger, nil
	case 'l':
		return KindLogical, nil
	case 'r':
		return KindReal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, rawType)
	}
}

// Keyword returns the type keyword used in the namelist definition.
func (k Kind) Keyword() string {
	switch k {
	case KindChar:
		return "char*256"
	case KindInteger:
		return "integer"
	case KindLogical:
		return "logical"
	case KindReal:
		return "real"
	default:
		return common.UnknownStr
	}
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindInteger:
		return "integer"
	case KindLogical:
		return "logical"
	case KindReal:
		return "real"
	default:
		return common.UnknownStr
	}
}
