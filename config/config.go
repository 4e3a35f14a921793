package config

import (
	"github.com/namsral/flag"

	"github.com/domino14/sudorace/solver"
)

type Config struct {
	ServerAddr   string
	ServerPort   int
	CheckCadence int
	NatsURL      string
	NatsSubject  string
	Debug        bool

	args []string
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("sudorace", flag.ContinueOnError)
	fs.StringVar(&c.ServerAddr, "server-addr", "127.0.0.1", "host of the result collector")
	fs.IntVar(&c.ServerPort, "server-port", 7120, "port of the result collector")
	fs.IntVar(&c.CheckCadence, "check-cadence", solver.DefaultCheckCadence,
		"cells visited between cooperative cancellation checks")
	fs.StringVar(&c.NatsURL, "nats-url", "", "publish results to this NATS server instead of a TCP socket")
	fs.StringVar(&c.NatsSubject, "nats-subject", "sudorace.results", "NATS subject for results")
	fs.BoolVar(&c.Debug, "debug", false, "log debug output")
	err := fs.Parse(args)
	c.args = fs.Args()
	return err
}

// Args returns the positional arguments left after flag parsing: the 81 cell
// values and the worker count.
func (c *Config) Args() []string {
	return c.args
}
