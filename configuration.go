package hostcfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// A Configuration describes how to reach a host: its name, port, and the user to connect as.
//
// Name identifies a Configuration within a single User's collection and cannot change once created.
type Configuration struct {
	Name     string `json:"name" validate:"required"`
	Hostname string `json:"hostname"`
	Port     Port   `json:"port"`
	Username string `json:"username"`
}

// A Port is a Configuration's TCP port.
//
// A Port decodes from either a JSON number or a string holding an integer, e.g., "8080".
type Port int

// UnmarshalJSON implements [encoding/json.Unmarshaler].
func (p *Port) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return fmt.Errorf("%w: port: %s", ErrBadFormat, err)
		}
	}

	raw = strings.TrimSpace(raw)
	if i, err := strconv.Atoi(raw); err == nil {
		*p = Port(i)
		return nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: port %s is not an integer", ErrBadFormat, string(b))
	}

	*p = Port(int(f))
	return nil
}
