package inventory

import (
	"sync"

	"github.com/cloud-compass/compass/backend/pkg/model"
)

// Selection tracks the single "active" asset shown in the detail view.
// It has two states: idle (no selection) and active(id). Selecting an id
// that cannot be resolved in the store is allowed; the derived detail is
// then empty, which renders as no detail content rather than an error.
//
// Selection also acts as the guard against stale AI responses: an
// in-flight summary or suggestion request is keyed to the asset it
// targeted, and its result is applied only if that asset is still the
// active one when the response arrives (see Accept).
type Selection struct {
	mu     sync.Mutex
	active string
}

// NewSelection returns an idle selection.
func NewSelection() *Selection {
	return &Selection{}
}

// Select makes id the active asset, replacing any previous selection.
func (s *Selection) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = id
}

// Deselect returns the selection to idle. Closing the detail view maps to
// this transition.
func (s *Selection) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = ""
}

// ActiveID returns the active asset id and whether there is one.
func (s *Selection) ActiveID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.active != ""
}

// Accept reports whether a result computed for assetID may still be
// applied. Last request wins by id comparison, not by arrival order: a
// response for an asset that is no longer active is discarded.
func (s *Selection) Accept(assetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != "" && s.active == assetID
}

// Neighbor pairs an incident relationship with the resolved asset at its
// other end.
type Neighbor struct {
	Relationship model.Relationship `json:"relationship"`
	Other        model.Asset        `json:"other"`
}

// Detail is the derived content of the detail view for one asset.
type Detail struct {
	Asset    model.Asset `json:"asset"`
	Outgoing []Neighbor  `json:"outgoing"`
	Incoming []Neighbor  `json:"incoming"`
}

// DeriveDetail resolves the detail view for the asset with the given id.
// Incident relationships are partitioned into outgoing (from == id) and
// incoming (to == id), each paired with the other endpoint's asset.
// Pairs whose other endpoint cannot be resolved are left out. When the id
// itself cannot be resolved, ok is false and the detail is empty.
func DeriveDetail(assets []model.Asset, relationships []model.Relationship, id string) (Detail, bool) {
	byID := make(map[string]model.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}

	selected, ok := byID[id]
	if !ok {
		return Detail{}, false
	}

	detail := Detail{
		Asset:    selected,
		Outgoing: []Neighbor{},
		Incoming: []Neighbor{},
	}
	for _, r := range relationships {
		switch id {
		case r.From:
			if other, found := byID[r.To]; found {
				detail.Outgoing = append(detail.Outgoing, Neighbor{Relationship: r, Other: other})
			}
		case r.To:
			if other, found := byID[r.From]; found {
				detail.Incoming = append(detail.Incoming, Neighbor{Relationship: r, Other: other})
			}
		}
	}

	return detail, true
}
