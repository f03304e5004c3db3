package inventory

import (
	"strings"

	"github.com/cloud-compass/compass/backend/pkg/model"
)

// Criteria describes what the dashboard currently wants to see. A zero
// Criteria matches everything.
//
// Search is a case-insensitive substring match against asset name or id.
// Types and Clouds restrict to the listed tags; an empty slice means no
// restriction. An asset without a cloud tag never matches a non-empty
// cloud filter.
type Criteria struct {
	Search string
	Types  []string
	Clouds []string
}

// View is the visible subgraph handed to the rendering surface. Every
// relationship in it has both endpoints among its assets.
type View struct {
	Assets        []model.Asset        `json:"assets"`
	Relationships []model.Relationship `json:"relationships"`
}

// FilterView computes the visible subgraph for the given criteria. It is a
// pure function of its inputs: store order is preserved, and applying the
// same criteria to the same snapshot always yields the same view.
//
// The filter runs in two passes. Nodes are matched first; an edge is then
// visible iff both of its endpoints survived the node pass, so edges to
// hidden or absent assets are silently dropped.
func FilterView(assets []model.Asset, relationships []model.Relationship, c Criteria) View {
	visible := make([]model.Asset, 0, len(assets))
	visibleIDs := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		if !c.matchesSearch(a) || !c.matchesType(a) || !c.matchesCloud(a) {
			continue
		}
		visible = append(visible, a)
		visibleIDs[a.ID] = struct{}{}
	}

	rels := make([]model.Relationship, 0, len(relationships))
	for _, r := range relationships {
		if _, ok := visibleIDs[r.From]; !ok {
			continue
		}
		if _, ok := visibleIDs[r.To]; !ok {
			continue
		}
		rels = append(rels, r)
	}

	return View{Assets: visible, Relationships: rels}
}

func (c Criteria) matchesSearch(a model.Asset) bool {
	if c.Search == "" {
		return true
	}
	term := strings.ToLower(c.Search)
	return strings.Contains(strings.ToLower(a.Name), term) ||
		strings.Contains(strings.ToLower(a.ID), term)
}

func (c Criteria) matchesType(a model.Asset) bool {
	if len(c.Types) == 0 {
		return true
	}
	for _, t := range c.Types {
		if a.Type == t {
			return true
		}
	}
	return false
}

func (c Criteria) matchesCloud(a model.Asset) bool {
	if len(c.Clouds) == 0 {
		return true
	}
	if a.Cloud == "" {
		return false
	}
	for _, cl := range c.Clouds {
		if a.Cloud == cl {
			return true
		}
	}
	return false
}
