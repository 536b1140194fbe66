package dictionary

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed wordlists/en.txt
var wordsEN string

//go:embed wordlists/short.txt
var wordsShort string

// ErrUnknown is returned when a Config names a dictionary that does not
// exist.
var ErrUnknown = errors.New("unknown dictionary")

var (
	listsOnce sync.Once
	lists     map[string][]string
)

// loadLists parses the embedded word lists once. Blank lines are skipped
// and words are deduplicated, preserving first occurrence order.
func loadLists() {
	lists = map[string][]string{
		"en":    parseList(wordsEN),
		"short": parseList(wordsShort),
	}
}

func parseList(data string) []string {
	fields := strings.Fields(data)
	seen := make(map[string]struct{}, len(fields))
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

// Names returns the identifiers of all available dictionaries, sorted.
func Names() []string {
	listsOnce.Do(loadLists)
	names := make([]string, 0, len(lists))
	for name := range lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Words returns every word in the named dictionary.
func Words(name string) ([]string, error) {
	listsOnce.Do(loadLists)
	words, ok := lists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return words, nil
}

// WordsInRange returns the words of the named dictionary whose length falls
// within the inclusive bounds.
func WordsInRange(name string, min, max int) ([]string, error) {
	all, err := Words(name)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, w := range all {
		if n := len(w); n >= min && n <= max {
			words = append(words, w)
		}
	}
	return words, nil
}
