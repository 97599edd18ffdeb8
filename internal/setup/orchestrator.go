// Package setup composes discovery, addon installation, headless
// activation and socket verification into one idempotent first-run
// operation. Steps run strictly in sequence; only the final socket probe
// is retried, because earlier failure modes are not transient.
package setup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Umesh-Bhati/Blynd/internal/blender"
	"github.com/Umesh-Bhati/Blynd/internal/bridge"
	"github.com/Umesh-Bhati/Blynd/internal/logging"
)

const (
	defaultVerifyAttempts = 3
	defaultVerifyDelay    = 900 * time.Millisecond
)

// Config parameterizes the one-click run. Attempts and delay are
// configuration rather than hidden constants so tests can shrink them.
type Config struct {
	Host           string
	Port           uint16
	VerifyAttempts int
	VerifyDelay    time.Duration
}

// DefaultConfig returns the production policy: probe 127.0.0.1:9876 up
// to three times with a 900ms pause between attempts.
func DefaultConfig() Config {
	return Config{
		Host:           "127.0.0.1",
		Port:           9876,
		VerifyAttempts: defaultVerifyAttempts,
		VerifyDelay:    defaultVerifyDelay,
	}
}

// Prober is the connectivity probe used by the verification step.
// *rpc.Client satisfies it.
type Prober interface {
	CheckSocket(ctx context.Context, host string, port uint16) bridge.SocketStatus
}

// Orchestrator drives the first-run state machine:
// Scan -> InstallAddon -> Activate -> VerifySocket -> Done.
type Orchestrator struct {
	platform blender.Platform
	prober   Prober
	cfg      Config
}

// New builds an orchestrator over the given platform and probe.
func New(platform blender.Platform, prober Prober, cfg Config) *Orchestrator {
	if cfg.VerifyAttempts <= 0 {
		cfg.VerifyAttempts = defaultVerifyAttempts
	}
	return &Orchestrator{platform: platform, prober: prober, cfg: cfg}
}

// errSocketNotReady drives the retry loop; it never escapes Run.
var errSocketNotReady = errors.New("socket not ready")

// Run executes the setup sequence and returns the aggregated outcome.
// A missing installation terminates the run early with ok=false but no
// error; installer and activation failures abort the run as errors.
// The outcome's Details field is an ordered audit trail of every step.
func (o *Orchestrator) Run(ctx context.Context) (*bridge.SetupOutcome, error) {
	log := logging.FromContext(ctx)
	var details []string

	scan := o.platform.DetectInstallation(ctx)
	details = append(details, "Scan: "+scan.Message)
	if !scan.Found {
		return &bridge.SetupOutcome{
			OK:      false,
			Message: scan.Message,
			Scan:    scan,
			SocketStatus: bridge.SocketStatus{
				Connected: false,
				Host:      o.cfg.Host,
				Port:      o.cfg.Port,
				Message:   "Socket not checked: no Blender installation found.",
			},
			Details: details,
		}, nil
	}

	install, err := o.platform.InstallAddon(ctx)
	if err != nil {
		return nil, fmt.Errorf("installing addon: %w", err)
	}
	details = append(details, "Install: "+install.Message)

	activation, err := o.platform.Activate(ctx, scan.ExecutablePath)
	if err != nil {
		return nil, fmt.Errorf("activating addon: %w", err)
	}
	details = append(details, "Activate: Blender confirmed addon activation.")

	status, attemptLines := o.verifySocket(ctx)
	details = append(details, attemptLines...)

	outcome := &bridge.SetupOutcome{
		OK:           status.Connected,
		Scan:         scan,
		Install:      *install,
		Activation:   activation,
		SocketStatus: status,
		Details:      details,
	}
	if status.Connected {
		outcome.Message = "Setup complete. Blender addon is installed, enabled and reachable."
	} else {
		outcome.Message = "Setup finished. Addon installed and enabled, but the socket is not reachable yet. " +
			"Restart Blender so the addon server starts."
	}
	outcome.Details = append(outcome.Details, "Done: "+outcome.Message)

	log.Info().
		Str("component", "setup").
		Bool("ok", outcome.OK).
		Msg("one-click setup finished")

	return outcome, nil
}

// verifySocket probes connectivity with a bounded constant-delay retry.
// The final attempt's status is returned regardless of success, together
// with one audit line per attempt.
func (o *Orchestrator) verifySocket(ctx context.Context) (bridge.SocketStatus, []string) {
	var (
		status  bridge.SocketStatus
		lines   []string
		attempt int
	)

	probe := func() error {
		attempt++
		status = o.prober.CheckSocket(ctx, o.cfg.Host, o.cfg.Port)
		lines = append(lines, fmt.Sprintf("Verify (attempt %d/%d): %s",
			attempt, o.cfg.VerifyAttempts, status.Message))
		if !status.Connected {
			return errSocketNotReady
		}
		return nil
	}

	policy := backoff.WithMaxRetries(
		backoff.NewConstantBackOff(o.cfg.VerifyDelay),
		uint64(o.cfg.VerifyAttempts-1),
	)
	_ = backoff.Retry(probe, backoff.WithContext(policy, ctx))

	return status, lines
}
