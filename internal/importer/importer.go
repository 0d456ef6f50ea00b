package importer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/cashview/internal/model"
)

// Row is one statement row keyed by column header.
type Row map[string]string

// Reader converts a statement export into header-keyed rows.
type Reader interface {
	Read(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named readers.
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// ForPath returns the reader matching the file extension, or nil.
func (r *Registry) ForPath(path string) Reader {
	return r.Get(strings.TrimPrefix(filepath.Ext(path), "."))
}

// DefaultRegistry returns a registry with all built-in readers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&XLSXReader{})
	r.Register(&CSVReader{})
	return r
}

// Load reads and normalizes the statement at path. Any failure to read the
// file is logged and yields an empty set.
func Load(log zerolog.Logger, path string) []model.Transaction {
	return DefaultRegistry().Load(log, path)
}

// Load reads and normalizes the statement at path using the registered readers.
func (r *Registry) Load(log zerolog.Logger, path string) []model.Transaction {
	rows, err := r.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("statement file not found, using empty transaction set")
		} else {
			log.Error().Err(err).Str("path", path).Msg("reading statement failed, using empty transaction set")
		}
		return []model.Transaction{}
	}
	log.Info().Str("path", path).Int("rows", len(rows)).Msg("statement loaded")

	return Normalize(log, rows)
}

// ReadFile reads raw rows from path.
func (r *Registry) ReadFile(path string) ([]Row, error) {
	rd := r.ForPath(path)
	if rd == nil {
		return nil, fmt.Errorf("no reader for %q", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	rows, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s statement: %w", rd.Format(), err)
	}
	return rows, nil
}

// rowsFromRecords turns a header record plus data records into Rows. Short
// records leave the trailing columns out of the row.
func rowsFromRecords(records [][]string) []Row {
	if len(records) <= 1 {
		return nil
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []Row
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make(Row, len(header))
		for i, h := range header {
			if h == "" || i >= len(rec) {
				continue
			}
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
