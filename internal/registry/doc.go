// Package registry loads the MPAS registry document into an in-memory model.
//
// The registry is an XML document whose root element contains nml_record
// children (namelist groups), each holding nml_option children (namelist
// options). Only the attributes relevant to namelist generation are kept:
// name, type, default_value, description. The model preserves document order
// and is never mutated after loading.
package registry
