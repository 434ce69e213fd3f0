package configuration

import (
	"cmp"
	"slices"
	"strings"

	"github.com/xy-planning-network/hostcfg"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ascPrefix marks a sort directive as ascending; without it, a directive sorts descending.
const ascPrefix = "^"

// A directive orders Configurations by one field.
type directive struct {
	field string
	asc   bool
}

// Sort returns a sorted copy of cfgs, ordered by spec.
//
// spec is a comma-separated list of fields: name, hostname, port, or username.
// A bare field sorts descending; a field prefixed with "^" sorts ascending.
// The first field listed is the primary key, later fields break ties in the order listed,
// and Configurations tied on every field keep their relative order.
//
// Ports compare numerically; the rest compare as English text.
//
// An empty spec returns cfgs in their original order.
// Naming any other field, including an empty one, fails with ErrInvalidSort.
func Sort(spec string, cfgs []hostcfg.Configuration) ([]hostcfg.Configuration, error) {
	out := slices.Clone(cfgs)
	if spec == "" {
		return out, nil
	}

	var dirs []directive
	for _, raw := range strings.Split(spec, ",") {
		d := directive{field: strings.TrimPrefix(raw, ascPrefix), asc: strings.HasPrefix(raw, ascPrefix)}
		if !isField(d.field) {
			return nil, hostcfg.Errorf(hostcfg.ErrInvalidSort, "Configurations have no field %s", d.field)
		}

		dirs = append(dirs, d)
	}

	// collate.Collator holds scratch buffers, so each call gets its own.
	col := collate.New(language.English)
	slices.SortStableFunc(out, func(a, b hostcfg.Configuration) int {
		for _, d := range dirs {
			var c int
			switch d.field {
			case "port":
				c = cmp.Compare(a.Port, b.Port)
			case "name":
				c = col.CompareString(a.Name, b.Name)
			case "hostname":
				c = col.CompareString(a.Hostname, b.Hostname)
			case "username":
				c = col.CompareString(a.Username, b.Username)
			}

			if c == 0 {
				continue
			}

			if !d.asc {
				c = -c
			}

			return c
		}

		return 0
	})

	return out, nil
}

func isField(f string) bool {
	switch f {
	case "name", "hostname", "port", "username":
		return true
	default:
		return false
	}
}
