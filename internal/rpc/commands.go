package rpc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Umesh-Bhati/Blynd/internal/bridge"
)

const (
	// commandSceneInfo is the liveness probe; its payload is ignored.
	commandSceneInfo = "get_scene_info"

	// commandExecuteCode forwards a Blender Python snippet for execution.
	commandExecuteCode = "execute_code"

	// fallbackExecuteMessage is used when an execute_code response carries
	// no message field.
	fallbackExecuteMessage = "Code executed in Blender addon."
)

// ErrEmptyCode is returned by ExecuteCode before any socket is opened.
var ErrEmptyCode = errors.New("Generated code is empty.")

// CheckSocket probes the addon listener with a get_scene_info command and
// reports the outcome as a status value. An unreachable socket is a
// normal result, not an error.
func (c *Client) CheckSocket(ctx context.Context, host string, port uint16) bridge.SocketStatus {
	_, err := c.SendCommand(ctx, host, port, NewRequest(commandSceneInfo, nil))
	if err != nil {
		return bridge.SocketStatus{
			Connected: false,
			Host:      host,
			Port:      port,
			Message:   fmt.Sprintf("Blender socket unavailable: %v", err),
		}
	}

	return bridge.SocketStatus{
		Connected: true,
		Host:      host,
		Port:      port,
		Message:   "Connected to Blender addon socket.",
	}
}

// ExecuteCode forwards a non-empty Blender Python snippet to the addon
// and returns the remote message and opaque result payload.
func (c *Client) ExecuteCode(ctx context.Context, host string, port uint16, code string) (*bridge.CommandResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCode
	}

	resp, err := c.SendCommand(ctx, host, port, NewRequest(commandExecuteCode, map[string]any{
		"code": code,
	}))
	if err != nil {
		return nil, err
	}

	message := resp.Message
	if message == "" {
		message = fallbackExecuteMessage
	}

	return &bridge.CommandResult{
		OK:      true,
		Message: message,
		Result:  resp.Result,
	}, nil
}
