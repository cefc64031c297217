package flush

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mailwire/internal/transport"
)

// Flush policies. PolicyNone turns the service off: requests succeed
// locally without contacting the server.
const (
	PolicyAll  = "all"
	PolicyNone = "none"
)

// ClientConfig locates the flush daemon and bounds each exchange.
type ClientConfig struct {
	Network string
	Addr    string
	Timeout time.Duration
	Policy  string
}

// Client issues flush requests over short-lived connections: one
// connect, one command line, one integer status line, close. Transport
// failures come back as StatusFail rather than errors; retry policy
// belongs to the caller.
type Client struct {
	cfg ClientConfig
	log zerolog.Logger
}

func NewClient(cfg ClientConfig, log zerolog.Logger) *Client {
	if cfg.Network == "" {
		cfg.Network = "tcp"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = transport.DefaultTimeout
	}
	return &Client{cfg: cfg, log: log}
}

// Add records that mail with queueID is waiting for site.
func (c *Client) Add(ctx context.Context, site, queueID string) Status {
	if !validWord(site) || !validWord(queueID) {
		return StatusBad
	}
	if c.cfg.Policy == PolicyNone {
		return StatusOK
	}
	return c.request(ctx, cmdAdd, site, queueID)
}

// Send requests delivery of all mail queued for site.
func (c *Client) Send(ctx context.Context, site string) Status {
	if !validWord(site) {
		return StatusBad
	}
	if c.cfg.Policy == PolicyNone {
		return StatusOK
	}
	return c.request(ctx, cmdSend, site)
}

// Purge asks the server to evict cache entries idle past its retention
// period.
func (c *Client) Purge(ctx context.Context) Status {
	if c.cfg.Policy == PolicyNone {
		return StatusOK
	}
	return c.request(ctx, cmdPurge)
}

func (c *Client) request(ctx context.Context, words ...string) Status {
	stream, err := transport.Dial(ctx, c.cfg.Network, c.cfg.Addr, c.cfg.Timeout)
	if err != nil {
		c.log.Debug().Err(err).Str("addr", c.cfg.Addr).Msg("flush connect failed")
		return StatusFail
	}
	defer stream.Close()

	line := strings.Join(words, " ") + "\n"
	if _, err := stream.Write([]byte(line)); err != nil {
		c.log.Debug().Err(err).Msg("flush request write failed")
		return StatusFail
	}
	if err := stream.Flush(); err != nil {
		c.log.Debug().Err(err).Msg("flush request write failed")
		return StatusFail
	}

	reply, err := stream.Reader().ReadString('\n')
	if err != nil {
		c.log.Debug().Err(err).Msg("flush reply read failed")
		return StatusFail
	}
	code, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil {
		c.log.Debug().Str("reply", strings.TrimSpace(reply)).Msg("flush reply not a status code")
		return StatusFail
	}
	status := Status(code)
	c.log.Debug().Str("request", words[0]).Stringer("status", status).Msg("flush request done")
	return status
}

// validWord rejects arguments that would corrupt the line protocol.
func validWord(w string) bool {
	return w != "" && !strings.ContainsAny(w, " \t\r\n")
}
