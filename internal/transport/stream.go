// Package transport provides the deadline-capable duplex byte stream the
// attribute protocol and daemon clients run over. One Stream wraps one
// local connection; every read and write carries a fresh deadline derived
// from the stream's timeout, so a stuck peer surfaces as an I/O error on
// the in-flight call instead of hanging the daemon.
package transport

import (
	"bufio"
	"context"
	"net"
	"time"
)

// DefaultTimeout is the per-operation IPC timeout applied when callers
// pass no explicit value.
const DefaultTimeout = time.Hour

// Stream is a buffered duplex byte stream over one connection.
type Stream struct {
	conn    net.Conn
	r       *bufio.Reader
	w       *bufio.Writer
	timeout time.Duration
}

// Dial connects to a local daemon endpoint and wraps the connection.
func Dial(ctx context.Context, network, addr string, timeout time.Duration) (*Stream, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	return NewStream(conn, timeout), nil
}

// NewStream wraps an established connection. Ownership of conn moves to
// the stream; Close closes it.
func NewStream(conn net.Conn, timeout time.Duration) *Stream {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &Stream{conn: conn, timeout: timeout}
	s.r = bufio.NewReader(deadlineReader{s})
	s.w = bufio.NewWriter(deadlineWriter{s})
	return s
}

// Reader exposes the buffered read side for line- and record-oriented
// protocol decoders.
func (s *Stream) Reader() *bufio.Reader { return s.r }

func (s *Stream) Read(p []byte) (int, error) { return s.r.Read(p) }

// Write buffers p; nothing reaches the connection until Flush.
func (s *Stream) Write(p []byte) (int, error) { return s.w.Write(p) }

// Flush pushes buffered writes to the connection.
func (s *Stream) Flush() error { return s.w.Flush() }

// SetTimeout replaces the per-operation timeout for subsequent calls.
func (s *Stream) SetTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

func (s *Stream) Timeout() time.Duration { return s.timeout }

func (s *Stream) RemoteAddr() net.Addr { return s.conn.RemoteAddr() }

func (s *Stream) Close() error { return s.conn.Close() }

type deadlineReader struct{ s *Stream }

func (d deadlineReader) Read(p []byte) (int, error) {
	_ = d.s.conn.SetReadDeadline(time.Now().Add(d.s.timeout))
	return d.s.conn.Read(p)
}

type deadlineWriter struct{ s *Stream }

func (d deadlineWriter) Write(p []byte) (int, error) {
	_ = d.s.conn.SetWriteDeadline(time.Now().Add(d.s.timeout))
	return d.s.conn.Write(p)
}
