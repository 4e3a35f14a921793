package report

import (
	"fmt"
	"net"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

const dialTimeout = 3 * time.Second

// TCPReporter writes one payload to an established TCP connection and never
// reads a reply. Only the race winner ever touches the connection, so no
// synchronization is needed around it.
type TCPReporter struct {
	conn net.Conn
}

// DialTCP connects to the collector up front, with backoff, so connection
// failures surface before any worker is spawned.
func DialTCP(addr string) (*TCPReporter, error) {
	var conn net.Conn
	err := retry.Do(
		func() error {
			c, err := net.DialTimeout("tcp", addr, dialTimeout)
			if err != nil {
				return err
			}
			conn = c
			return nil
		},
		retry.Attempts(3),
		retry.OnRetry(func(n uint, err error) {
			log.Err(err).Uint("n", n).Str("addr", addr).Msg("dial-failed-retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: dialing %s: %v", ErrConnection, addr, err)
	}
	return &TCPReporter{conn: conn}, nil
}

func (r *TCPReporter) Send(p *Payload) error {
	data, err := p.MarshalText()
	if err != nil {
		return err
	}
	if _, err := r.conn.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	log.Debug().Int("bytes", len(data)).Msg("result-sent")
	return nil
}

func (r *TCPReporter) Close() error {
	return r.conn.Close()
}
