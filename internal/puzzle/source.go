package puzzle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"svw.info/sudokugame/internal/domain"
	"svw.info/sudokugame/internal/ports"
)

// HTTPSource fetches a fresh puzzle from a JSON endpoint. The payload's
// "board" field may be a nested 9x9 array or a flat array of 81 values;
// zero or null entries are empty cells.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSource{URL: url, Client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSource) Fetch(ctx context.Context) (*domain.Board, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("puzzle source: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("puzzle source: unexpected status %s", resp.Status)
	}
	var payload struct {
		Board json.RawMessage `json:"board"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("puzzle source: decode: %w", err)
	}
	return ParseBoardJSON(payload.Board)
}

// ParseBoardJSON accepts either board layout and maps 0 and null to empty.
// Non-empty cells become givens, per the load-time policy.
func ParseBoardJSON(raw json.RawMessage) (*domain.Board, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return nil, fmt.Errorf("board is neither a nested 9x9 nor a flat 81-cell array")
	}

	if hasArrayElement(outer) {
		var nested [][]*int
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, fmt.Errorf("board is neither a nested 9x9 nor a flat 81-cell array")
		}
		if len(nested) != 9 {
			return nil, fmt.Errorf("board has %d rows, want 9", len(nested))
		}
		b := &domain.Board{}
		for r, row := range nested {
			if len(row) != 9 {
				return nil, fmt.Errorf("row %d has %d cells, want 9", r, len(row))
			}
			for c, cell := range row {
				if err := setCell(b, r, c, cell); err != nil {
					return nil, err
				}
			}
		}
		b.MarkGivens()
		return b, nil
	}

	var flat []*int
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("board is neither a nested 9x9 nor a flat 81-cell array")
	}
	if len(flat) != 81 {
		return nil, fmt.Errorf("flat board has %d cells, want 81", len(flat))
	}
	b := &domain.Board{}
	for i, cell := range flat {
		if err := setCell(b, i/9, i%9, cell); err != nil {
			return nil, err
		}
	}
	b.MarkGivens()
	return b, nil
}

// hasArrayElement reports whether any element of the outer array is itself
// an array, marking the nested layout. Nulls decide nothing, so an all-null
// payload reads as a flat list of empty cells.
func hasArrayElement(outer []json.RawMessage) bool {
	for _, el := range outer {
		for _, ch := range el {
			switch ch {
			case ' ', '\t', '\r', '\n':
				continue
			}
			if ch == '[' {
				return true
			}
			if ch != 'n' { // a number settles it as flat
				return false
			}
			break // null, look at the next element
		}
	}
	return false
}

func setCell(b *domain.Board, r, c int, v *int) error {
	if v == nil || *v == 0 {
		return nil
	}
	if *v < 1 || *v > 9 {
		return fmt.Errorf("cell (%d,%d) holds %d, want 0-9", r, c, *v)
	}
	b.Values[r][c] = uint8(*v)
	return nil
}

// Fallback wraps a Source and substitutes the built-in classic board when
// the underlying fetch fails, so callers never observe a retrieval failure.
type Fallback struct {
	Inner ports.Source
	Log   *slog.Logger
}

func NewFallback(inner ports.Source, log *slog.Logger) *Fallback {
	return &Fallback{Inner: inner, Log: log}
}

func (f *Fallback) Fetch(ctx context.Context) (*domain.Board, error) {
	b, err := f.Inner.Fetch(ctx)
	if err != nil {
		f.Log.Warn("puzzle fetch failed, using fallback board", "err", err)
		return domain.FallbackPuzzle(), nil
	}
	return b, nil
}
