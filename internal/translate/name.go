package translate

import "strings"

// Prefix constants for the option/group naming migration.
const (
	// OldPrefix is the legacy prefix carried inconsistently by registry names.
	OldPrefix = "config_"
	// NewPrefix is the prefix required by the host framework.
	NewPrefix = "mpas_"
)

// TransformName migrates an option or group name to the new prefix scheme.
// Every repetition of the legacy prefix is stripped, then every repetition of
// the new prefix (stacked prefixes show up in hand-edited registries), and a
// single new prefix is prepended. The result always starts with exactly one
// NewPrefix, so the transform is idempotent.
func TransformName(name string) string {
	for strings.HasPrefix(name, OldPrefix) {
		name = name[len(OldPrefix):]
	}

	for strings.HasPrefix(name, NewPrefix) {
		name = name[len(NewPrefix):]
	}

	return NewPrefix + name
}
