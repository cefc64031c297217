package flush

import (
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mailwire/internal/transport"
)

// Server answers the flush line protocol on one listener. Each
// connection gets its own goroutine and may carry any number of
// request/reply exchanges.
type Server struct {
	cache   *Cache
	timeout time.Duration
	log     zerolog.Logger

	mu sync.Mutex
	ln net.Listener
	wg sync.WaitGroup
}

func NewServer(cache *Cache, timeout time.Duration, log zerolog.Logger) *Server {
	if timeout <= 0 {
		timeout = transport.DefaultTimeout
	}
	return &Server{cache: cache, timeout: timeout, log: log}
}

// Serve accepts connections until the listener closes. It returns nil
// after Close.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.wg.Wait()
				return nil
			}
			return err
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

// Close stops accepting new connections. In-flight handlers finish on
// their own read timeouts.
func (s *Server) Close() error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return nil
	}
	return ln.Close()
}

func (s *Server) handle(conn net.Conn) {
	stream := transport.NewStream(conn, s.timeout)
	defer stream.Close()

	log := s.log.With().
		Str("conn", uuid.NewString()).
		Str("remote", conn.RemoteAddr().String()).
		Logger()
	log.Debug().Msg("flush connection open")

	for {
		line, err := stream.Reader().ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug().Err(err).Msg("flush connection read failed")
			}
			return
		}
		status := s.dispatch(log, strings.Fields(strings.TrimSpace(line)))
		reply := strconv.Itoa(int(status)) + "\n"
		if _, err := stream.Write([]byte(reply)); err != nil {
			log.Debug().Err(err).Msg("flush reply write failed")
			return
		}
		if err := stream.Flush(); err != nil {
			log.Debug().Err(err).Msg("flush reply write failed")
			return
		}
	}
}

func (s *Server) dispatch(log zerolog.Logger, words []string) Status {
	switch {
	case len(words) == 3 && words[0] == cmdAdd:
		s.cache.Add(words[1], words[2])
		log.Info().Str("site", words[1]).Str("queue_id", words[2]).Msg("queued for site")
		return StatusOK
	case len(words) == 2 && words[0] == cmdSend:
		ids := s.cache.Send(words[1])
		log.Info().Str("site", words[1]).Int("entries", len(ids)).Msg("flush site")
		return StatusOK
	case len(words) == 1 && words[0] == cmdPurge:
		dropped := s.cache.Purge()
		log.Info().Int("dropped", dropped).Msg("purged stale sites")
		return StatusOK
	default:
		log.Warn().Strs("request", words).Msg("rejected flush request")
		return StatusBad
	}
}
