// Package flush implements the fast-flush cache service: daemons record
// which queue entries are waiting for a destination site, and a flush
// request triggers delivery of everything queued for that site. Client
// and server speak a one-line command protocol with a single integer
// status reply per request.
package flush

import "strconv"

// Status is the integer reply code of one flush request.
type Status int

const (
	// StatusOK means the request was accepted.
	StatusOK Status = 0
	// StatusBad means the server rejected the request as invalid.
	StatusBad Status = 3
	// StatusFail means the request could not be completed (no server,
	// I/O failure, or server-side failure).
	StatusFail Status = -1
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBad:
		return "bad request"
	case StatusFail:
		return "failed"
	default:
		return "status " + strconv.Itoa(int(s))
	}
}

// Request verbs of the line protocol.
const (
	cmdAdd   = "add"
	cmdSend  = "send"
	cmdPurge = "purge"
)
