// Package translate turns a parsed MPAS registry into namelist-definition
// entries.
//
// The translation is a single pass over the registry in document order:
//   - Drop groups and options owned by other subsystems (fixed exclusion sets)
//   - Migrate option and group names from the legacy prefix to the mpas_ prefix
//   - Classify each option type into a closed kind set and normalize its
//     default value for the target namelist grammar
//   - Reformat free-text descriptions into wrapped, indented blocks
//
// The resulting entries are sorted by id so the generated document is a
// deterministic function of the registry content alone. The registry is
// read-only throughout; a malformed type or logical value aborts translation
// with an error before anything is emitted.
package translate
