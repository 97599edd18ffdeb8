// Package rpc implements the TCP/JSON request/response client that talks
// to the companion addon inside Blender. The protocol carries no length
// prefix or delimiter, so responses are framed by incremental parse: read
// chunks until the accumulated bytes form one complete JSON value.
package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/Umesh-Bhati/Blynd/internal/bridge"
	"github.com/Umesh-Bhati/Blynd/internal/logging"
)

const (
	// DefaultHost is the loopback address the addon listener binds to.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the addon listener's fixed port.
	DefaultPort uint16 = 9876

	defaultDialTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultReadTimeout  = 20 * time.Second
	defaultChunkSize    = 8192

	// fallbackRemoteError is used when an error response carries no message.
	fallbackRemoteError = "Unknown Blender addon error"
)

// Config holds the socket timeouts and the read chunk size. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	DialTimeout  time.Duration
	WriteTimeout time.Duration
	ReadTimeout  time.Duration
	ChunkSize    int
}

// DefaultConfig returns the production timeouts: 5s connect, 10s write,
// 20s read, 8 KiB read chunks.
func DefaultConfig() Config {
	return Config{
		DialTimeout:  defaultDialTimeout,
		WriteTimeout: defaultWriteTimeout,
		ReadTimeout:  defaultReadTimeout,
		ChunkSize:    defaultChunkSize,
	}
}

// Request is one command sent to the addon.
type Request struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params"`
}

// NewRequest builds a request, normalizing nil params to an empty object
// so the wire shape is always {"type":..., "params":{...}}.
func NewRequest(commandType string, params map[string]any) Request {
	if params == nil {
		params = map[string]any{}
	}
	return Request{Type: commandType, Params: params}
}

// Response is one parsed reply from the addon. Raw always holds the full
// JSON value; the envelope fields are populated only when the value is an
// object carrying them.
type Response struct {
	Status  string          `json:"status,omitempty"`
	Message string          `json:"message,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Client sends one command per TCP connection. Connections are never
// pooled or reused; a Client is safe for concurrent use because it holds
// no per-call state.
type Client struct {
	cfg Config
}

// NewClient returns a client using the given socket configuration.
func NewClient(cfg Config) *Client {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	return &Client{cfg: cfg}
}

// SendCommand opens a connection to host:port, writes req as compact
// JSON, and reads one JSON response using incremental-parse framing.
// Responses with status "error" are converted into a classified error
// carrying the remote message, so callers never inspect status themselves.
func (c *Client) SendCommand(ctx context.Context, host string, port uint16, req Request) (*Response, error) {
	log := logging.FromContext(ctx)

	address := net.JoinHostPort(host, strconv.Itoa(int(port)))

	tcpAddr, err := net.ResolveTCPAddr("tcp", address)
	if err != nil {
		return nil, bridge.WrapError(bridge.KindResolution, err,
			"Unable to resolve %s:%d: %v", host, port, err)
	}

	dialer := &net.Dialer{Timeout: c.cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", tcpAddr.String())
	if err != nil {
		return nil, bridge.WrapError(bridge.KindConnect, err,
			"Could not connect to Blender socket at %s:%d: %v", host, port, err)
	}
	defer conn.Close()

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	log.Debug().
		Str("component", "rpc").
		Str("operation", "send_command").
		Str("type", req.Type).
		Str("address", address).
		Msg("sending command")

	if err := conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout)); err != nil {
		return nil, fmt.Errorf("setting write deadline: %w", err)
	}
	if _, err := conn.Write(payload); err != nil {
		return nil, bridge.WrapError(bridge.KindWrite, err,
			"Failed sending command to Blender socket: %v", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout)); err != nil {
		return nil, fmt.Errorf("setting read deadline: %w", err)
	}

	return c.readResponse(conn)
}

// readResponse accumulates chunks until they parse as one complete JSON
// value. The addon does not close the connection after answering, so a
// successful parse is the only reliable end-of-message signal. A peer
// close or a read timeout with buffered bytes triggers one final parse.
func (c *Client) readResponse(conn net.Conn) (*Response, error) {
	var accumulated []byte
	chunk := make([]byte, c.cfg.ChunkSize)

	for {
		n, err := conn.Read(chunk)
		if n > 0 {
			accumulated = append(accumulated, chunk[:n]...)
			if resp, ok := tryParse(accumulated); ok {
				return validateResponse(resp)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || isTimeout(err) {
				break
			}
			return nil, fmt.Errorf("reading Blender socket response: %w", err)
		}
	}

	if len(accumulated) == 0 {
		return nil, bridge.NewError(bridge.KindNoResponse,
			"No response received from Blender addon. Make sure addon server is running.")
	}

	resp, ok := tryParse(accumulated)
	if !ok {
		return nil, bridge.NewError(bridge.KindMalformedResponse,
			"Blender response was not valid JSON.")
	}
	return validateResponse(resp)
}

// tryParse attempts to interpret data as one complete JSON value. The
// envelope fields remain empty when the value is not an object.
func tryParse(data []byte) (*Response, bool) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}

	resp := &Response{Raw: raw}
	// Envelope decode is best-effort: arrays and scalars are legal responses.
	_ = json.Unmarshal(raw, resp)
	return resp, true
}

// validateResponse is the single chokepoint normalizing remote failures:
// a status of "error" becomes a classified error carrying the remote
// message verbatim.
func validateResponse(resp *Response) (*Response, error) {
	if resp.Status == "error" {
		message := resp.Message
		if message == "" {
			message = fallbackRemoteError
		}
		return nil, bridge.NewError(bridge.KindRemoteReported, "%s", message)
	}
	return resp, nil
}

// isTimeout reports whether err is a read deadline expiry.
func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
