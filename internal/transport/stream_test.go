package transport

import (
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamWriteReadAcrossPipe(t *testing.T) {
	left, right := net.Pipe()
	a := NewStream(left, time.Second)
	b := NewStream(right, time.Second)
	defer a.Close()
	defer b.Close()

	done := make(chan error, 1)
	go func() {
		if _, err := a.Write([]byte("hello daemon\n")); err != nil {
			done <- err
			return
		}
		done <- a.Flush()
	}()

	line, err := b.Reader().ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "hello daemon\n", line)
	require.NoError(t, <-done)
}

func TestStreamWriteIsBufferedUntilFlush(t *testing.T) {
	left, right := net.Pipe()
	a := NewStream(left, 50*time.Millisecond)
	b := NewStream(right, 50*time.Millisecond)
	defer a.Close()
	defer b.Close()

	_, err := a.Write([]byte("x"))
	require.NoError(t, err, "buffered write must not touch the connection")

	// Nothing was flushed, so the peer's read must time out.
	_, err = b.Reader().ReadByte()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrDeadlineExceeded)
}

func TestStreamReadTimeout(t *testing.T) {
	left, right := net.Pipe()
	defer right.Close()
	s := NewStream(left, 20*time.Millisecond)
	defer s.Close()

	start := time.Now()
	_, err := s.Reader().ReadString('\n')
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrDeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestStreamTimeoutDefaulting(t *testing.T) {
	left, right := net.Pipe()
	defer right.Close()
	s := NewStream(left, 0)
	defer s.Close()

	assert.Equal(t, DefaultTimeout, s.Timeout())
	s.SetTimeout(-1)
	assert.Equal(t, DefaultTimeout, s.Timeout())
	s.SetTimeout(time.Minute)
	assert.Equal(t, time.Minute, s.Timeout())
}
