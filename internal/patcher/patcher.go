package patcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fix-package-file/internal/logger"
	"fix-package-file/internal/manifest"
)

// MainKey is the manifest field this tool fills in.
const MainKey = "main"

// DefaultManifest is the manifest location relative to the project directory.
var DefaultManifest = filepath.Join("pkg", "package.json")

// Options controls a single patch run.
//   - Pack: manifest path. Empty means <ProjectDir>/pkg/package.json.
//   - Main: explicit main entry. Empty means derive it from the project name.
//   - ProjectDir: project directory. Empty means the directory of the running executable.
//   - Indent: spaces per nesting level in the rewritten manifest.
type Options struct {
	Pack       string
	Main       string
	ProjectDir string
	Indent     int
}

// Result describes what a run did.
// MainEntry is the value computed from the options, which is what gets
// reported; Main is what the manifest holds after the run. They differ when
// the manifest already had a main entry.
type Result struct {
	ProjectName  string
	ManifestPath string
	MainEntry    string
	Main         string
	Updated      bool
}

// DefaultMainEntry derives the main file name from a project directory name,
// e.g. "my-package" becomes "my_package.js".
func DefaultMainEntry(projectName string) string {
	return strings.ReplaceAll(projectName, "-", "_") + ".js"
}

// ToolDir returns the directory holding the running executable.
func ToolDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Run loads the manifest, sets its main entry when it is missing or null,
// and writes the whole manifest back in place.
func Run(opts Options) (Result, error) {
	projectDir := opts.ProjectDir
	if projectDir == "" {
		dir, err := ToolDir()
		if err != nil {
			return Result{}, err
		}
		projectDir = dir
	}
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return Result{}, fmt.Errorf("resolving project directory: %w", err)
	}

	res := Result{
		ProjectName:  filepath.Base(projectDir),
		ManifestPath: opts.Pack,
	}
	if res.ManifestPath == "" {
		res.ManifestPath = filepath.Join(projectDir, DefaultManifest)
	}

	res.MainEntry = opts.Main
	if res.MainEntry == "" {
		res.MainEntry = DefaultMainEntry(res.ProjectName)
	}
	logger.Debug("[DEBUG] Project %s, manifest %s, main entry %s\n", projectDir, res.ManifestPath, res.MainEntry)

	m, err := manifest.Load(res.ManifestPath)
	if err != nil {
		return res, err
	}

	logger.Debug("[DEBUG] Manifest keys: %s\n", strings.Join(m.Keys(), ", "))

	if m.IsNull(MainKey) {
		if m.Has(MainKey) {
			logger.Debug("[DEBUG] %s is null, replacing it\n", MainKey)
		}
		if err := m.SetString(MainKey, res.MainEntry); err != nil {
			return res, err
		}
		res.Updated = true
		logger.Info("[INFO] Set %s to %s in %s\n", MainKey, res.MainEntry, res.ManifestPath)
	} else {
		logger.Info("[INFO] %s already has a %s entry. Keeping it.\n", res.ManifestPath, MainKey)
	}

	if s, ok := m.String(MainKey); ok {
		res.Main = s
	} else {
		raw, _ := m.Get(MainKey)
		res.Main = string(raw)
		logger.Warn("[WARN] %s in %s is not a string: %s\n", MainKey, res.ManifestPath, res.Main)
	}

	if err := m.Save(res.ManifestPath, opts.Indent); err != nil {
		return res, err
	}
	return res, nil
}
