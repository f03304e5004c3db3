package scan

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloud-compass/compass/backend/pkg/inventory"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestParse_ValidDocument(t *testing.T) {
	doc := Document{
		Name: "scan.json",
		Reader: strings.NewReader(`[
			{"id":"a","type":"VPC","name":"A","riskScore":0.5,"tags":["x"]},
			{"id":"b","type":"EC2Instance","name":"B","metadata":{"region":"eu-central-1"}}
		]`),
	}

	assets, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(assets) != 2 || assets[0].ID != "a" || assets[1].ID != "b" {
		t.Fatalf("Parse() assets = %+v, want a,b in upload order", assets)
	}
	if assets[1].Metadata["region"] != "eu-central-1" {
		t.Fatalf("metadata not passed through: %+v", assets[1].Metadata)
	}
}

func TestParse_FormatErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not an array", body: `{"id":"a"}`},
		{name: "not json", body: `this is not json`},
		{name: "null document", body: `null`},
		{name: "element not an object", body: `["just-a-string"]`},
		{name: "missing name", body: `[{"id":"a","type":"X","name":"A"},{"id":"b","type":"Y"}]`},
		{name: "missing type", body: `[{"id":"a","name":"A"}]`},
		{name: "missing id", body: `[{"type":"X","name":"A"}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(Document{Name: "bad.json", Reader: strings.NewReader(tc.body)})
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("Parse() error = %v, want *FormatError", err)
			}
		})
	}
}

func TestParse_ReadError(t *testing.T) {
	_, err := Parse(Document{Name: "gone.json", Reader: failingReader{}})
	var rerr *FileReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("Parse() error = %v, want *FileReadError", err)
	}
}

func TestParse_RejectedBatchLeavesStoreUntouched(t *testing.T) {
	store := inventory.NewStore()

	// Second element misses its name: neither "a" nor "b" may end up in
	// the store.
	_, err := Parse(Document{
		Name:   "partial.json",
		Reader: strings.NewReader(`[{"id":"a","type":"X","name":"A"},{"id":"b","type":"Y"}]`),
	})
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}

	if n, _ := store.Counts(); n != 0 {
		t.Fatalf("store contains %d assets, want 0", n)
	}
}

func TestParseAll_MergesInUploadOrder(t *testing.T) {
	docs := []Document{
		{Name: "one.json", Reader: strings.NewReader(`[{"id":"a","type":"X","name":"A"}]`)},
		{Name: "two.json", Reader: strings.NewReader(`[{"id":"b","type":"Y","name":"B"},{"id":"c","type":"Z","name":"C"}]`)},
	}

	assets, err := ParseAll(context.Background(), docs)
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(assets) != 3 || assets[0].ID != "a" || assets[1].ID != "b" || assets[2].ID != "c" {
		t.Fatalf("ParseAll() assets = %+v, want a,b,c", assets)
	}
}

func TestParseAll_SingleFailureFailsUpload(t *testing.T) {
	docs := []Document{
		{Name: "good.json", Reader: strings.NewReader(`[{"id":"a","type":"X","name":"A"}]`)},
		{Name: "bad.json", Reader: strings.NewReader(`not an array`)},
	}

	_, err := ParseAll(context.Background(), docs)
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("ParseAll() error = %v, want *FormatError", err)
	}
}
