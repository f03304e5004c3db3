// Package scan parses and validates uploaded scan documents before they
// are handed to the inventory store. A document must decode to a JSON
// array of assets, each carrying an id, a type, and a name. Validation is
// all-or-nothing: one bad element rejects the whole document.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cloud-compass/compass/backend/pkg/model"

	"golang.org/x/sync/errgroup"
)

// FormatError reports a document that is not a JSON array or contains an
// element missing a required field. The store is never touched when one
// is returned.
type FormatError struct {
	Name string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid scan document %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("invalid scan document: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// FileReadError reports that the underlying document could not be read.
type FileReadError struct {
	Name string
	Err  error
}

func (e *FileReadError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("failed to read scan document %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("failed to read scan document: %v", e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// Document is one uploaded scan file.
type Document struct {
	Name   string
	Reader io.Reader
}

// Parse reads one document and returns its candidate asset list. The
// sequence is returned exactly as uploaded; normalization or enrichment is
// left to downstream consumers.
func Parse(doc Document) ([]model.Asset, error) {
	data, err := io.ReadAll(doc.Reader)
	if err != nil {
		return nil, &FileReadError{Name: doc.Name, Err: err}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &FormatError{Name: doc.Name, Err: fmt.Errorf("document is not a JSON array: %w", err)}
	}
	if raw == nil {
		return nil, &FormatError{Name: doc.Name, Err: fmt.Errorf("document is not a JSON array")}
	}

	assets := make([]model.Asset, 0, len(raw))
	for i, elem := range raw {
		var a model.Asset
		if err := json.Unmarshal(elem, &a); err != nil {
			return nil, &FormatError{Name: doc.Name, Err: fmt.Errorf("element %d is not an asset object: %w", i, err)}
		}
		if err := a.Validate(); err != nil {
			return nil, &FormatError{Name: doc.Name, Err: fmt.Errorf("element %d: %w", i, err)}
		}
		assets = append(assets, a)
	}

	return assets, nil
}

// ParseAll parses several uploaded documents concurrently and merges the
// resulting asset lists in upload order. Any single failure fails the
// whole upload.
func ParseAll(ctx context.Context, docs []Document) ([]model.Asset, error) {
	results := make([][]model.Asset, len(docs))

	eg, _ := errgroup.WithContext(ctx)
	for i, doc := range docs {
		eg.Go(func() error {
			assets, err := Parse(doc)
			if err != nil {
				return err
			}
			results[i] = assets
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	merged := make([]model.Asset, 0)
	for _, assets := range results {
		merged = append(merged, assets...)
	}
	return merged, nil
}
