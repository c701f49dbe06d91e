package dictionary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"

	"wordy/internal/domain"
)

// LoadStats reports what LoadCSV kept and dropped
type LoadStats struct {
	Total       int
	Kept        int
	Rejected    int
	ProperNouns int
	Duplicates  int
}

// LoadCSV reads one word per row from the first column. Only five letter
// a-z words are kept; capitalized words are treated as proper nouns and
// dropped. The result is de-duplicated and sorted.
func LoadCSV(r io.Reader) ([]string, LoadStats, error) {
	var stats LoadStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	seen := make(map[string]struct{})
	var words []string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("failed to read dictionary: %w", err)
		}
		if len(row) == 0 {
			continue
		}

		stats.Total++
		word := strings.TrimSpace(row[0])
		lower := strings.ToLower(word)
		if !IsValidWord(lower) {
			stats.Rejected++
			continue
		}
		if lower != word {
			stats.Rejected++
			stats.ProperNouns++
			continue
		}
		if _, ok := seen[word]; ok {
			stats.Duplicates++
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}

	sort.Strings(words)
	stats.Kept = len(words)
	return words, stats, nil
}

// Schedule assigns one word per consecutive day starting at epoch. Words are
// shuffled with the given seed so the order is reproducible.
func Schedule(words []string, epoch domain.Date, seed int64) []domain.Word {
	shuffled := append([]string(nil), words...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	out := make([]domain.Word, len(shuffled))
	for i, w := range shuffled {
		out[i] = domain.Word{Text: w, Date: epoch.AddDays(i)}
	}
	return out
}
