// Package bridge defines the result values and error kinds shared by the
// Blynd control bridge: installation discovery, addon installation,
// socket probes, remote command execution, and one-click setup.
package bridge

import "encoding/json"

// InstallationScan is the outcome of one Blender discovery pass.
type InstallationScan struct {
	// Found reports whether a Blender executable was located.
	Found bool `json:"found"`

	// ExecutablePath is the full path to blender.exe (empty when not found).
	ExecutablePath string `json:"executablePath,omitempty"`

	// SearchedPaths lists every root that was scanned, in scan order.
	SearchedPaths []string `json:"searchedPaths"`

	// Message is a human-readable summary of the scan.
	Message string `json:"message"`
}

// AddonInstallResult is the outcome of deploying the companion addon into
// the Blender per-version addons directory.
type AddonInstallResult struct {
	// Installed reports whether the addon file was written.
	Installed bool `json:"installed"`

	// AddonPath is the full path of the installed addon file.
	AddonPath string `json:"addonPath,omitempty"`

	// BlenderVersion is the version directory the addon was installed into.
	BlenderVersion string `json:"blenderVersion,omitempty"`

	// Message is a human-readable summary, including the enable hint.
	Message string `json:"message"`
}

// SocketStatus is the outcome of one connectivity probe against the
// companion addon's TCP listener. Retry is orchestrated by the caller;
// a status never carries an attempt count.
type SocketStatus struct {
	Connected bool   `json:"connected"`
	Host      string `json:"host"`
	Port      uint16 `json:"port"`
	Message   string `json:"message"`
}

// CommandResult is the outcome of forwarding one code snippet to Blender.
type CommandResult struct {
	OK bool `json:"ok"`

	// Message is the remote message field, or a generic fallback.
	Message string `json:"message"`

	// Result is the opaque structured payload returned by the addon.
	Result json.RawMessage `json:"result,omitempty"`
}

// SetupOutcome aggregates the fragments produced by one first-run setup
// pass. Each step contributes its fragment exactly once; the outcome is
// assembled at the end and never mutated afterwards.
type SetupOutcome struct {
	OK bool `json:"ok"`

	// Message is the overall verdict line.
	Message string `json:"message"`

	Scan         InstallationScan   `json:"scan"`
	Install      AddonInstallResult `json:"install"`
	Activation   string             `json:"activation,omitempty"`
	SocketStatus SocketStatus       `json:"socketStatus"`

	// Details is the ordered audit trail of the run, one line per step.
	Details []string `json:"details"`
}
