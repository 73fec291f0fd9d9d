// Package leaderboard persists the top scores. Records are kept as a JSON
// array; a legacy "name:score" text file is read when no JSON exists yet.
package leaderboard

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	MaxEntries = 10

	jsonFile   = "leaderboard.json"
	legacyFile = "leaderboard.txt"
)

var ErrNegativeScore = errors.New("leaderboard: score must be non-negative")

// Record is one leaderboard line.
type Record struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Board is the in-memory leaderboard bound to a directory.
type Board struct {
	dir     string
	entries []Record
}

// Open loads the leaderboard stored in dir. A missing file yields an empty
// board; an unreadable or corrupt one is an error.
func Open(dir string) (*Board, error) {
	b := &Board{dir: dir}
	data, err := os.ReadFile(filepath.Join(dir, jsonFile))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &b.entries); err != nil {
			return nil, fmt.Errorf("parse %s: %w", jsonFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		legacy, err := loadLegacy(filepath.Join(dir, legacyFile))
		if err != nil {
			return nil, err
		}
		b.entries = legacy
	default:
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	b.normalize()
	return b, nil
}

// loadLegacy reads "name:score" lines, skipping any that do not parse.
// A bare number is accepted as an unnamed score.
func loadLegacy(path string) ([]Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read legacy leaderboard: %w", err)
	}
	defer f.Close()

	var out []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		name, score, found := strings.Cut(line, ":")
		if !found {
			name, score = "", line
		}
		n, err := strconv.Atoi(strings.TrimSpace(score))
		if err != nil || n < 0 {
			continue
		}
		out = append(out, Record{Name: strings.TrimSpace(name), Score: n})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read legacy leaderboard: %w", err)
	}
	return out, nil
}

func (b *Board) normalize() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > MaxEntries {
		b.entries = b.entries[:MaxEntries]
	}
}

func (b *Board) Dir() string { return b.dir }

// Entries returns the records, best first.
func (b *Board) Entries() []Record {
	return append([]Record(nil), b.entries...)
}

// Best returns the top record, if any.
func (b *Board) Best() (Record, bool) {
	if len(b.entries) == 0 {
		return Record{}, false
	}
	return b.entries[0], true
}

// Qualifies reports whether score would make it onto the board: there is
// still room, or it beats the lowest entry.
func (b *Board) Qualifies(score int) bool {
	if len(b.entries) < MaxEntries {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}

// Submit places rec on the board and writes it out. It returns the 1-based
// rank, or 0 when the score did not qualify (nothing is written then).
func (b *Board) Submit(rec Record) (int, error) {
	if rec.Score < 0 {
		return 0, ErrNegativeScore
	}
	if !b.Qualifies(rec.Score) {
		return 0, nil
	}
	rec.Name = strings.TrimSpace(rec.Name)
	// Ties go below existing entries.
	rank := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].Score < rec.Score })
	b.entries = append(b.entries, Record{})
	copy(b.entries[rank+1:], b.entries[rank:])
	b.entries[rank] = rec
	b.normalize()
	if err := b.Save(); err != nil {
		return 0, err
	}
	return rank + 1, nil
}

// Save writes the board as JSON via a temp file and rename.
func (b *Board) Save() error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	data, err := json.MarshalIndent(b.entries, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(b.dir, jsonFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}

// New returns an empty board bound to dir.
func New(dir string) *Board {
	return &Board{dir: dir}
}
