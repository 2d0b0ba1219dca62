package namelist

// IndentPerLevel is the indentation unit of the generated document. The
// description blocks produced by the translator assume the same unit, so the
// two must not diverge.
const IndentPerLevel = "    "

// Category is the host-framework category assigned to every generated entry.
const Category = "mpas"

// Entry is one namelist option as it appears in the generated definition.
type Entry struct {
	// ID is the transformed option name and the sort key of the document.
	ID string
	// Desc is the reformatted description block, framing included.
	Desc string
	// Group is the transformed name of the option's registry group.
	Group string
	// Type is one of the four namelist type keywords.
	Type string
	// Value is the normalized default value.
	Value string
}
