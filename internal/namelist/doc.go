// Package namelist models the generated namelist-definition document and
// renders it to XML.
//
// The document is assembled fully in memory: a versioned entry_id_pg root, a
// provenance comment as its first child, then one entry element per
// translated option, already sorted by id. Rendering is deterministic
// (4-space indentation, UTF-8 declaration, expanded end tags, a trailing
// newline), so regenerating from the same registry is byte-stable.
package namelist
