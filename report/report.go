// Package report serializes a solved grid plus its solve time and hands the
// bytes to the collector service. The wire format is 81 space-separated
// integers in row-major order followed by the elapsed seconds as a float,
// with a trailing space and no terminator. The collector never replies.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/domino14/sudorace/board"
)

var (
	ErrConnection     = errors.New("result collector connection failure")
	ErrBufferCapacity = errors.New("result buffer capacity exceeded")
	ErrBadPayload     = errors.New("malformed result payload")
)

// BufferCapacity bounds the serialized payload. Worst case: 81 values of at
// most one digit plus a space each (162 bytes; cell values never exceed 9),
// then the elapsed float with six decimals and a space. An elapsed value
// would need to exceed ~10^85 seconds to overflow the remaining 94 bytes, so
// the bound holds for any representable race; MarshalText still checks it
// rather than assuming.
const BufferCapacity = 256

// Payload is the winning worker's result.
type Payload struct {
	Grid    *board.Board
	Elapsed time.Duration
}

// MarshalText renders the payload into a buffer of at most BufferCapacity
// bytes.
func (p *Payload) MarshalText() ([]byte, error) {
	buf := make([]byte, 0, BufferCapacity)
	for _, v := range p.Grid.Cells() {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ' ')
	}
	buf = strconv.AppendFloat(buf, p.Elapsed.Seconds(), 'f', 6, 64)
	buf = append(buf, ' ')
	if len(buf) > BufferCapacity {
		return nil, fmt.Errorf("%w: %d bytes", ErrBufferCapacity, len(buf))
	}
	return buf, nil
}

// ParsePayload is the inverse of MarshalText.
func ParsePayload(data []byte) (*Payload, error) {
	fields := strings.Fields(string(data))
	if len(fields) != board.CellCount+1 {
		return nil, fmt.Errorf("%w: expected %d fields, got %d",
			ErrBadPayload, board.CellCount+1, len(fields))
	}
	grid, err := board.Parse(fields[:board.CellCount])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	secs, err := strconv.ParseFloat(fields[board.CellCount], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad elapsed value %q", ErrBadPayload, fields[board.CellCount])
	}
	return &Payload{
		Grid:    grid,
		Elapsed: time.Duration(secs * float64(time.Second)),
	}, nil
}

// Reporter is the transmission side of result reporting. Send is invoked at
// most once per race, by the winning worker.
type Reporter interface {
	Send(p *Payload) error
	Close() error
}
