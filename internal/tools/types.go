package tools

// Dependency is one external tool the launcher expects on the search path.
type Dependency struct {
	// Name is what the user is told to install.
	Name string
	// Probe is a harmless command line; Probe[0] is the executable.
	Probe []string
}

// Program returns the probed executable.
func (d Dependency) Program() string {
	if len(d.Probe) == 0 {
		return ""
	}
	return d.Probe[0]
}

// Result classifies one probe.
type Result struct {
	Dependency Dependency
	Found      bool
	// Err explains a missing dependency. It is nil when Found is set.
	Err error
}

// Report aggregates the results of walking a manifest.
type Report struct {
	Results []Result
}

// Missing returns the results for dependencies that were not found, in
// manifest order.
func (r Report) Missing() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Found {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every dependency was found.
func (r Report) OK() bool {
	return len(r.Missing()) == 0
}
