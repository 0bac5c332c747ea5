package netutil

import (
	"fmt"
	"strconv"
)

// Port represents a TCP port.
type Port uint16

// PortFromInt converts an integer to a Port.
// @error when the integer is negative or larger than 65535
func PortFromInt(val int) (Port, error) {
	if val < 0 || val > 65535 {
		return Port(0), fmt.Errorf("invalid port range: %d", val)
	}
	return Port(val), nil
}

// PortFromString converts a string to a Port.
// @error when the string is not an integer or the integral value is not a valid Port.
func PortFromString(s string) (Port, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return Port(0), fmt.Errorf("invalid port %q: %w", s, err)
	}
	return PortFromInt(val)
}

// Value return the corresponding uint16 value of a Port.
func (p Port) Value() uint16 {
	return uint16(p)
}

func (p Port) String() string {
	return strconv.Itoa(int(p))
}
