package blender

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Umesh-Bhati/Blynd/internal/bridge"
	"github.com/Umesh-Bhati/Blynd/internal/logging"
)

const (
	// sentinelEnabled is printed by the activation script on success.
	sentinelEnabled = "BLYND_ADDON_ENABLED"

	// sentinelErrorPrefix is printed before the exception text on failure.
	sentinelErrorPrefix = "BLYND_ADDON_ERROR:"

	// addonModuleName is the Python module name the addon file registers as.
	addonModuleName = "blender_mcp"

	activationLogLimit   = 1000
	activationTraceLimit = 400
)

// activationScript enables the installed addon by module name and
// persists preferences. Enabling an already-enabled addon is a no-op in
// Blender, which keeps activation idempotent.
const activationScript = `import bpy

try:
    bpy.ops.preferences.addon_enable(module="` + addonModuleName + `")
    bpy.ops.wm.save_userpref()
    print("` + sentinelEnabled + `")
except Exception as exc:
    print("` + sentinelErrorPrefix + ` %s" % exc)
    raise SystemExit(1)
`

// Activate launches Blender in headless batch mode with a generated
// activation script and inspects its combined output for the success
// sentinel. The temporary script is removed on every exit path.
func (p *windowsPlatform) Activate(ctx context.Context, executablePath string) (string, error) {
	log := logging.FromContext(ctx)

	info, err := os.Stat(executablePath)
	if err != nil || !info.Mode().IsRegular() {
		return "", bridge.NewError(bridge.KindExecutableNotFound,
			"Blender executable not found at %s", executablePath)
	}

	scriptPath, err := p.writeActivationScript()
	if err != nil {
		return "", err
	}
	defer os.Remove(scriptPath)

	log.Debug().
		Str("component", "blender").
		Str("operation", "activate").
		Str("executable", executablePath).
		Str("script", scriptPath).
		Msg("running headless activation")

	cmd := exec.CommandContext(ctx, executablePath, "--background", "--python", scriptPath)
	output, runErr := cmd.CombinedOutput()
	logs := truncateLogs(string(output), activationLogLimit)

	if runErr != nil {
		return "", bridge.WrapError(bridge.KindActivationProcess, runErr,
			"Blender activation process failed: %v. Output: %s", runErr, logs)
	}

	if !strings.Contains(string(output), sentinelEnabled) {
		return "", bridge.NewError(bridge.KindActivationReported,
			"Blender did not confirm addon activation. Output: %s", logs)
	}

	return truncateLogs(string(output), activationTraceLimit), nil
}

// writeActivationScript materializes the activation script to a temp file
// and returns its path. The caller owns removal.
func (p *windowsPlatform) writeActivationScript() (string, error) {
	script, err := os.CreateTemp(p.tempDir, "blynd-activate-*.py")
	if err != nil {
		return "", fmt.Errorf("creating activation script: %w", err)
	}

	if _, writeErr := script.WriteString(activationScript); writeErr != nil {
		_ = script.Close()
		_ = os.Remove(script.Name())
		return "", fmt.Errorf("writing activation script: %w", writeErr)
	}
	if closeErr := script.Close(); closeErr != nil {
		_ = os.Remove(script.Name())
		return "", fmt.Errorf("closing activation script: %w", closeErr)
	}

	return script.Name(), nil
}

// truncateLogs collapses newlines and bounds the text to limit characters
// so process output can be embedded in a single display message.
func truncateLogs(text string, limit int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if len(collapsed) > limit {
		return collapsed[:limit] + "..."
	}
	return collapsed
}
