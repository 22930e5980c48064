// Package dictionary supplies the sets of place names a trie is built from.
package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	trie "github.com/sarthakjha889/go-placefinder-trie"
)

// ErrUnknownBuiltin is returned by Builtin for a name with no compiled-in set.
var ErrUnknownBuiltin = errors.New("unknown builtin dictionary")

const (
	// ASEAN names the reference set of Malaysian and Southeast Asian places.
	ASEAN = "asean"
	// World names ASEAN extended with a list of countries.
	World = "world"
)

var asean = []string{
	"Malaysia", "Thailand", "Singapore", "Vietnam", "Indonesia", "Brunei",
	"Philippines", "Malaya", "North Borneo", "British Empire", "Peninsular Malaysia",
	"East Malaysia", "Malaysian Borneo", "Sarawak", "Tanjung Piai", "Straits Settlements",
	"Malayan Union", "Federation of Malaya", "Kuala Lumpur", "Putrajaya", "Southeast Asia",
	"continental Eurasia", "tropics", "Malay kingdoms", "British protectorates",
	"Association of Southeast Asian Nations", "East Asia Summit",
	"Organisation of Islamic Cooperation", "Asia-Pacific Economic Cooperation",
	"Commonwealth of Nations", "Non-Aligned Movement",
}

var countries = []string{
	"UnitedStates", "Canada", "Mexico", "Brazil", "Argentina", "Chile",
	"Colombia", "Peru", "Venezuela", "Ecuador", "UnitedKingdom", "France",
	"Germany", "Italy", "Spain", "Portugal", "Netherlands", "Belgium",
	"Sweden", "Norway", "Denmark", "Finland", "Poland", "Austria",
	"Switzerland", "Russia", "Ukraine", "Turkey", "Greece", "CzechRepublic",
	"China", "Japan", "SouthKorea", "India", "Pakistan", "Bangladesh",
	"Indonesia", "Vietnam", "Thailand", "Malaysia", "Philippines",
	"Australia", "NewZealand", "Egypt", "South Africa", "Nigeria",
	"Kenya", "Morocco", "Algeria", "Ghana", "Saudi Arabia",
	"UnitedArabEmirates", "Israel", "Iran", "Iraq", "Afghanistan",
	"Kazakhstan", "Uzbekistan", "Qatar", "Singapore",
}

// Default returns a copy of the reference dictionary, in insertion order.
func Default() []string {
	return append([]string(nil), asean...)
}

// Extended returns the reference dictionary followed by every country not
// already present.
func Extended() []string {
	return dedupe(append(Default(), countries...))
}

// Builtin returns the compiled-in dictionary registered under name.
func Builtin(name string) ([]string, error) {
	switch strings.ToLower(name) {
	case "", ASEAN:
		return Default(), nil
	case World:
		return Extended(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, name)
}

// file is the on-disk dictionary layout:
//
//	phrases:
//	  - Malaysia
//	  - Kuala Lumpur
type file struct {
	Phrases []string `yaml:"phrases"`
}

// Parse reads a YAML dictionary. Blank phrases are dropped and repeated
// phrases kept once.
func Parse(r io.Reader) ([]string, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	phrases := make([]string, 0, len(f.Phrases))
	for _, p := range f.Phrases {
		if strings.TrimSpace(p) == "" {
			continue
		}
		phrases = append(phrases, p)
	}
	return dedupe(phrases), nil
}

// Load reads the YAML dictionary at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	phrases, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return phrases, nil
}

// Build inserts every phrase into a new trie.
func Build(phrases []string) *trie.Trie {
	t := trie.New()
	t.Insert(phrases...)
	return t
}

func dedupe(phrases []string) []string {
	seen := make(map[string]struct{}, len(phrases))
	out := phrases[:0]
	for _, p := range phrases {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
