package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dinos/internal/config"
	"dinos/internal/launch"
)

// ProjectPaths captures canonical locations inside a dinOS checkout.
type ProjectPaths struct {
	Root       string
	ConfigFile string
	MetaDir    string
	LogsDir    string
	BuildDir   string
	ImageFile  string
	GDBDir     string
}

// Resolve determines the project root from dir, or the current working
// directory when dir is empty. Child programs are launched from the working
// directory, so the fixed relative paths they receive resolve against it.
func Resolve(dir string) (ProjectPaths, error) {
	var (
		root string
		err  error
	)

	if dir != "" {
		root, err = filepath.Abs(dir)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return ProjectPaths{}, fmt.Errorf("resolve project root: %w", err)
	}

	return newProjectPaths(root), nil
}

func newProjectPaths(root string) ProjectPaths {
	metaDir := filepath.Join(root, ".dinos")
	return ProjectPaths{
		Root:       root,
		ConfigFile: filepath.Join(root, "dinos.yaml"),
		MetaDir:    metaDir,
		LogsDir:    filepath.Join(metaDir, "logs"),
		BuildDir:   filepath.Join(root, "build"),
		ImageFile:  filepath.Join(root, launch.FloppyImage),
		GDBDir:     filepath.Join(root, "gdb"),
	}
}

// ApplyConfig points the logs directory at the configured location.
func ApplyConfig(pp ProjectPaths, cfg config.Config) ProjectPaths {
	if dir := strings.TrimSpace(cfg.Log.Dir); dir != "" {
		pp.LogsDir = resolveProjectPath(pp.Root, dir)
	}
	return pp
}

func resolveProjectPath(root, value string) string {
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}

// EnsureLogsDir creates the logs directory and its parents.
func (p ProjectPaths) EnsureLogsDir() error {
	if err := os.MkdirAll(p.LogsDir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", p.LogsDir, err)
	}
	return nil
}

// Artefact is a well-known file or directory of the OS source tree.
type Artefact struct {
	Name   string
	Path   string
	Exists bool
}

// Artefacts reports which well-known build outputs and debugger files are
// present. Nothing here is validated; the result only feeds the run log.
func (p ProjectPaths) Artefacts() []Artefact {
	candidates := []struct {
		name string
		path string
		dir  bool
	}{
		{"build dir", p.BuildDir, true},
		{"floppy image", p.ImageFile, false},
		{"gdb dir", p.GDBDir, true},
		{"real mode init", filepath.Join(p.Root, launch.RealModeInitScript), false},
		{"protected mode init", filepath.Join(p.Root, launch.ProtectedInitScript), false},
		{"target description", filepath.Join(p.Root, launch.TargetDescription), false},
	}

	out := make([]Artefact, 0, len(candidates))
	for _, c := range candidates {
		var exists bool
		if c.dir {
			exists, _ = DirExists(c.path)
		} else {
			exists, _ = FileExists(c.path)
		}
		out = append(out, Artefact{Name: c.name, Path: c.path, Exists: exists})
	}
	return out
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
