// Package addon carries the companion Blender addon as a build-time
// asset. The bridge core treats the payload as opaque: it is injected
// into the installer at construction and written verbatim into the
// Blender addons directory.
package addon

import _ "embed"

// Source is the companion addon payload (blender_mcp.py).
//
//go:embed blender_mcp.py
var Source []byte
