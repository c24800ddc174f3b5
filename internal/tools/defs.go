package tools

var manifest = []Dependency{
	{Name: "QEMU", Probe: []string{"qemu-system-i386", "--version"}},
	{Name: "Make", Probe: []string{"make", "--version"}},
	{Name: "NASM", Probe: []string{"nasm", "-v"}},
	{Name: "dosfstools", Probe: []string{"mkfs.fat"}},
	{Name: "mtools", Probe: []string{"mcopy"}},
}

// Manifest returns the dependencies checked by `dinos check`, in order.
func Manifest() []Dependency {
	out := make([]Dependency, len(manifest))
	for i, dep := range manifest {
		out[i] = Dependency{Name: dep.Name, Probe: append([]string(nil), dep.Probe...)}
	}
	return out
}
