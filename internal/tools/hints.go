package tools

import "runtime"

// packages maps a dependency name to its package per package manager.
var packages = map[string]struct{ apt, brew string }{
	"QEMU":       {apt: "qemu-system-x86", brew: "qemu"},
	"Make":       {apt: "make", brew: "make"},
	"NASM":       {apt: "nasm", brew: "nasm"},
	"dosfstools": {apt: "dosfstools", brew: "dosfstools"},
	"mtools":     {apt: "mtools", brew: "mtools"},
}

// InstallHints suggests how to install dep on the running platform.
func InstallHints(dep Dependency) []string {
	return installHints(dep, runtime.GOOS)
}

func installHints(dep Dependency, goos string) []string {
	pkg, ok := packages[dep.Name]
	if !ok {
		return nil
	}

	switch goos {
	case "darwin":
		return []string{"Install via Homebrew: brew install " + pkg.brew}
	case "linux":
		return []string{"Install with your distro package manager, e.g. sudo apt install " + pkg.apt}
	default:
		return []string{"Install " + dep.Name + " using your platform's package manager"}
	}
}
