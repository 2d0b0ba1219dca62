package registry

// Registry is the parsed MPAS registry: an ordered forest of namelist groups.
type Registry struct {
	Groups []Group
}

// Group is one nml_record element: a named collection of namelist options.
type Group struct {
	Name    string
	Options []Option
}

// Option is one nml_option element. All fields hold the raw attribute text;
// trimming, case folding, and value normalization happen in the translator.
type Option struct {
	Name        string
	Type        string
	Default     string
	Description string
}
