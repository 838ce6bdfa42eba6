package imaging

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChannel is returned when a channel selector does not name red,
// green or blue.
var ErrInvalidChannel = errors.New("invalid channel")

// Channel selects one component of an (R, G, B) triple.
type Channel int

const (
	Red   Channel = iota // index 0
	Green                // index 1
	Blue                 // index 2
)

// DefaultChannel is used when no channel is given.
const DefaultChannel = Red

var channelNames = [...]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

// ParseChannel maps a channel name to a Channel.
//
// Matching is case-insensitive, so "RED", "Red" and "red" all select Red.
// Any other input, including names with surrounding whitespace, returns an
// error wrapping ErrInvalidChannel.
func ParseChannel(s string) (Channel, error) {
	name := strings.ToLower(s)
	for i, n := range channelNames {
		if name == n {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want red, green or blue)", ErrInvalidChannel, s)
}

// Valid reports whether c is one of Red, Green or Blue.
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

// Index returns the position of c in an (R, G, B) triple.
func (c Channel) Index() int {
	return int(c)
}

func (c Channel) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}
