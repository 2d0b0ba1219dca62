package translate

import "namelist-generator/internal/common"

// excludedGroups lists namelist groups owned by other subsystems. They are
// dropped wholesale, options included.
var excludedGroups = map[string]bool{
	"limited_area": true,
	"physics":      true,
}

// excludedOptions lists options the host framework manages directly (run
// duration, calendar, restart handling). Emitting them here would duplicate
// the framework's own definitions.
var excludedOptions = map[string]bool{
	"config_calendar_type": true,
	"config_do_restart":    true,
	"config_run_duration":  true,
	"config_start_time":    true,
	"config_stop_time":     true,
}

// ExcludedGroup reports whether a registry group is excluded from the
// generated namelist definition. Matching is case-insensitive on the trimmed
// name.
func ExcludedGroup(name string) bool {
	return excludedGroups[common.Canon(name)]
}

// ExcludedOption reports whether a registry option is excluded from the
// generated namelist definition. Matching is case-insensitive on the trimmed
// name.
func ExcludedOption(name string) bool {
	return excludedOptions[common.Canon(name)]
}
