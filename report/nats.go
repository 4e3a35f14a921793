package report

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// NATSReporter publishes the payload to a subject instead of writing to a
// raw socket, for collectors that sit behind a NATS server.
type NATSReporter struct {
	nc      *nats.Conn
	subject string
}

func DialNATS(url, subject string) (*NATSReporter, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to %s: %v", ErrConnection, url, err)
	}
	return &NATSReporter{nc: nc, subject: subject}, nil
}

func (r *NATSReporter) Send(p *Payload) error {
	data, err := p.MarshalText()
	if err != nil {
		return err
	}
	if err := r.nc.Publish(r.subject, data); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	// Publish is buffered; push it out before the process exits.
	if err := r.nc.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	log.Debug().Str("subject", r.subject).Int("bytes", len(data)).Msg("result-published")
	return nil
}

func (r *NATSReporter) Close() error {
	r.nc.Close()
	return nil
}
