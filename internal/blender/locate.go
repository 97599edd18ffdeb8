package blender

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/Umesh-Bhati/Blynd/internal/bridge"
	"github.com/Umesh-Bhati/Blynd/internal/logging"
)

// DetectInstallation walks the candidate roots in order and returns the
// first Blender executable found within two directory levels of a root.
func (p *windowsPlatform) DetectInstallation(ctx context.Context) bridge.InstallationScan {
	log := logging.FromContext(ctx)

	searched := make([]string, 0, 5)
	for _, root := range p.candidateRoots() {
		searched = append(searched, root)

		if exePath, ok := p.findExecutable(root); ok {
			log.Debug().
				Str("component", "blender").
				Str("operation", "detect").
				Str("executable", exePath).
				Msg("installation detected")
			return bridge.InstallationScan{
				Found:          true,
				ExecutablePath: exePath,
				SearchedPaths:  searched,
				Message:        "Blender installation detected.",
			}
		}
	}

	return bridge.InstallationScan{
		Found:         false,
		SearchedPaths: searched,
		Message:       "Blender was not found in common Windows installation paths.",
	}
}

// candidateRoots builds the ordered, de-duplicated list of scan roots:
// the two program-files env vars, the per-user Programs directory, then
// the hard-coded fallbacks. Windows paths are case-insensitive, so
// de-duplication folds case while preserving first-seen order.
func (p *windowsPlatform) candidateRoots() []string {
	var roots []string

	if programFiles, ok := p.lookupEnv("PROGRAMFILES"); ok && programFiles != "" {
		roots = append(roots, filepath.Join(programFiles, installVendorDir))
	}
	if programFilesX86, ok := p.lookupEnv("PROGRAMFILES(X86)"); ok && programFilesX86 != "" {
		roots = append(roots, filepath.Join(programFilesX86, installVendorDir))
	}
	if localAppData, ok := p.lookupEnv("LOCALAPPDATA"); ok && localAppData != "" {
		roots = append(roots, filepath.Join(localAppData, installProgramsDir, installVendorDir))
	}
	roots = append(roots, p.fallbackRoots...)

	seen := make(map[string]struct{}, len(roots))
	deduped := roots[:0]
	for _, root := range roots {
		key := strings.ToLower(root)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, root)
	}

	return deduped
}

// findExecutable looks for the executable directly inside root, then one
// and two subdirectory levels down. The search is bounded: nothing below
// depth two is visited.
func (p *windowsPlatform) findExecutable(root string) (string, bool) {
	if _, err := os.Stat(root); err != nil {
		return "", false
	}

	if path, ok := p.executableAt(root); ok {
		return path, true
	}

	firstLevel, err := subdirectories(root)
	if err != nil {
		return "", false
	}

	for _, dir := range firstLevel {
		if path, ok := p.executableAt(dir); ok {
			return path, true
		}
	}

	for _, dir := range firstLevel {
		secondLevel, subErr := subdirectories(dir)
		if subErr != nil {
			continue
		}
		for _, sub := range secondLevel {
			if path, ok := p.executableAt(sub); ok {
				return path, true
			}
		}
	}

	return "", false
}

// executableAt reports whether dir directly contains the executable.
func (p *windowsPlatform) executableAt(dir string) (string, bool) {
	candidate := filepath.Join(dir, p.exeName)
	info, err := os.Stat(candidate)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return candidate, true
}

// subdirectories returns the immediate child directories of dir.
func subdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(dir, entry.Name()))
		}
	}
	return dirs, nil
}
