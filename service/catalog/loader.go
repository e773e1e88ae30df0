// Package catalog reads the bundled product document.
package catalog

import (
	"embed"
	"encoding/xml"
	"fmt"
	"io/fs"
	"log/slog"

	catalogEntity "product.GO/model/entity/catalog"
)

// DocumentName is the bundled catalog document.
const DocumentName = "products.xml"

//go:embed products.xml
var bundled embed.FS

// LoadResult carries the decoded record and, when degraded, the cause.
// A degraded result always holds the zero Record.
type LoadResult struct {
	Record catalogEntity.Record
	Err    error
}

func (r LoadResult) Degraded() bool {
	return r.Err != nil
}

// Loader decodes one document from a read-only file system. It keeps no
// state between calls, so every Load re-reads the document.
type Loader struct {
	src  fs.FS
	name string
}

func NewLoader(src fs.FS, name string) *Loader {
	return &Loader{src: src, name: name}
}

// DefaultLoader reads the embedded products.xml.
func DefaultLoader() *Loader {
	return NewLoader(bundled, DocumentName)
}

func (l *Loader) Load() LoadResult {
	rec, err := l.decode()
	if err != nil {
		slog.Error("catalog document unavailable, serving empty record", "document", l.name, "error", err)
		return LoadResult{Err: err}
	}
	return LoadResult{Record: rec}
}

func (l *Loader) decode() (catalogEntity.Record, error) {
	var rec catalogEntity.Record
	data, err := fs.ReadFile(l.src, l.name)
	if err != nil {
		return rec, fmt.Errorf("read %s: %w", l.name, err)
	}
	if err := xml.Unmarshal(data, &rec); err != nil {
		return catalogEntity.Record{}, fmt.Errorf("decode %s: %w", l.name, err)
	}
	return rec, nil
}
