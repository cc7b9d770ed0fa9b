package font

import (
	"fmt"
	"hash/fnv"
	"os"
	"sync"
)

// FontSource is a loaded font file. It is heavyweight and should be shared;
// any number of Providers can read from one source.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr points to the FontSource itself and detects copies.
	addr *FontSource

	id   uint64
	name string

	mu     sync.RWMutex
	data   []byte
	parsed ParsedFont

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, err := lookupParser(config.parserName)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	h := fnv.New64a()
	_, _ = h.Write(dataCopy) // fnv.Write never returns an error

	s := &FontSource{
		id:     h.Sum64(),
		name:   extractFontName(parsed),
		data:   dataCopy,
		parsed: parsed,
		config: config,
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// ID returns the FNV-1a hash of the font data. Two sources loaded from the
// same bytes share an ID.
func (s *FontSource) ID() uint64 {
	s.copyCheck()
	return s.id
}

// Data returns the font file bytes, or nil after Close.
// The returned slice must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Parsed returns the parsed font, or ErrClosed after Close.
func (s *FontSource) Parsed() (ParsedFont, error) {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.parsed == nil {
		return nil, ErrClosed
	}
	return s.parsed, nil
}

// Close releases the font data. Providers created from the source stop
// resolving glyphs afterwards.
func (s *FontSource) Close() error {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.parsed = nil
	return nil
}

func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("font: FontSource must not be copied by value")
	}
}

func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if full := parsed.FullName(); full != "" {
		return full
	}
	return "Unknown Font"
}
