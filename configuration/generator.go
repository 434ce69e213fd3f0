package configuration

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"math/rand"

	"github.com/xy-planning-network/hostcfg"
)

// Word list files WordGenerator reads.
const (
	NamesFile      = "names.txt"
	NounsFile      = "nouns.txt"
	AdjectivesFile = "adjectives.txt"
)

// A Generator invents Configurations to seed a User's collection with.
type Generator interface {
	Generate() hostcfg.Configuration
}

// A WordGenerator invents Configurations from word lists, Docker style:
// a noun for the name, "<adjective>-<noun>.example.com" for the hostname,
// a person's name for the username, and a port from 1 to 100.
type WordGenerator struct {
	names      []string
	nouns      []string
	adjectives []string
	intN       func(n int) int
}

// LoadWords reads the word lists out of fsys.
//
// Each list is a file of one word per line; blank lines are skipped.
// A missing or empty file fails with ErrMissingData.
func LoadWords(fsys fs.FS) (*WordGenerator, error) {
	g := &WordGenerator{intN: rand.Intn}
	for _, f := range []struct {
		name string
		dst  *[]string
	}{
		{NamesFile, &g.names},
		{NounsFile, &g.nouns},
		{AdjectivesFile, &g.adjectives},
	} {
		words, err := readWords(fsys, f.name)
		if err != nil {
			return nil, err
		}

		*f.dst = words
	}

	return g, nil
}

// Generate invents a Configuration.
func (g *WordGenerator) Generate() hostcfg.Configuration {
	noun := g.pick(g.nouns)
	return hostcfg.Configuration{
		Name:     noun,
		Hostname: fmt.Sprintf("%s-%s.example.com", g.pick(g.adjectives), noun),
		Port:     hostcfg.Port(g.intN(100) + 1),
		Username: g.pick(g.names),
	}
}

func (g *WordGenerator) pick(words []string) string {
	return words[g.intN(len(words))]
}

func readWords(fsys fs.FS, name string) ([]string, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: reading word list %s: %s", hostcfg.ErrMissingData, name, err)
	}

	var words []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if w := string(bytes.TrimSpace(sc.Bytes())); w != "" {
			words = append(words, w)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading word list %s: %s", hostcfg.ErrBadFormat, name, err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: word list %s is empty", hostcfg.ErrMissingData, name)
	}

	return words, nil
}
