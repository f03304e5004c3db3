package inventory_test

import (
	"reflect"
	"testing"

	"github.com/cloud-compass/compass/backend/internal/seed"
	"github.com/cloud-compass/compass/backend/pkg/inventory"
	"github.com/cloud-compass/compass/backend/pkg/model"
)

func seededStore(t *testing.T) *inventory.Store {
	t.Helper()
	s := inventory.NewStore()
	if err := seed.Load(s); err != nil {
		t.Fatalf("seed.Load() error = %v", err)
	}
	return s
}

func visibleAssetIDs(assets []model.Asset) []string {
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ID)
	}
	return ids
}

func visibleRelIDs(rels []model.Relationship) []string {
	ids := make([]string, 0, len(rels))
	for _, r := range rels {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterView_EmptyCriteriaIsIdentity(t *testing.T) {
	s := seededStore(t)
	view := inventory.FilterView(s.Assets(), s.Relationships(), inventory.Criteria{})

	if !reflect.DeepEqual(visibleAssetIDs(view.Assets), visibleAssetIDs(s.Assets())) {
		t.Fatalf("empty criteria changed asset list: %v", visibleAssetIDs(view.Assets))
	}
	if !reflect.DeepEqual(visibleRelIDs(view.Relationships), visibleRelIDs(s.Relationships())) {
		t.Fatalf("empty criteria changed relationship list: %v", visibleRelIDs(view.Relationships))
	}
}

func TestFilterView_SecurityGroupScenario(t *testing.T) {
	s := seededStore(t)
	view := inventory.FilterView(s.Assets(), s.Relationships(), inventory.Criteria{
		Types: []string{model.AssetTypeSecurityGroup},
	})

	wantAssets := []string{"sg-web", "sg-db"}
	if got := visibleAssetIDs(view.Assets); !reflect.DeepEqual(got, wantAssets) {
		t.Fatalf("visible assets = %v, want %v", got, wantAssets)
	}

	// rel-1..rel-5 each touch a non-SecurityGroup asset and must be
	// dropped; only sg-web -> sg-db survives.
	wantRels := []string{"rel-6"}
	if got := visibleRelIDs(view.Relationships); !reflect.DeepEqual(got, wantRels) {
		t.Fatalf("visible relationships = %v, want %v", got, wantRels)
	}
}

func TestFilterView_EdgeVisibilityInvariant(t *testing.T) {
	s := seededStore(t)

	criteria := []inventory.Criteria{
		{},
		{Search: "server"},
		{Search: "SG-WEB"},
		{Types: []string{model.AssetTypeEC2Instance}},
		{Types: []string{model.AssetTypeSecurityGroup, model.AssetTypeEC2Instance}},
		{Clouds: []string{model.CloudAWS}},
		{Clouds: []string{model.CloudGCP}},
		{Search: "db", Types: []string{model.AssetTypeSecurityGroup}},
	}

	for _, c := range criteria {
		view := inventory.FilterView(s.Assets(), s.Relationships(), c)
		visible := make(map[string]struct{}, len(view.Assets))
		for _, a := range view.Assets {
			visible[a.ID] = struct{}{}
		}
		for _, r := range view.Relationships {
			if _, ok := visible[r.From]; !ok {
				t.Fatalf("criteria %+v: relationship %s has hidden endpoint %s", c, r.ID, r.From)
			}
			if _, ok := visible[r.To]; !ok {
				t.Fatalf("criteria %+v: relationship %s has hidden endpoint %s", c, r.ID, r.To)
			}
		}
	}
}

func TestFilterView_DanglingEdgeDropped(t *testing.T) {
	s := seededStore(t)
	s.AppendRelationship(model.Relationship{
		ID:           "rel-dangling",
		From:         "sg-web",
		To:           "ghost-asset",
		Type:         model.RelationUses,
		DiscoveredBy: model.DiscoveredByScan,
	})

	view := inventory.FilterView(s.Assets(), s.Relationships(), inventory.Criteria{})
	for _, r := range view.Relationships {
		if r.ID == "rel-dangling" {
			t.Fatal("relationship to absent asset must not be visible")
		}
	}
}

func TestFilterView_Idempotent(t *testing.T) {
	s := seededStore(t)
	c := inventory.Criteria{Search: "sg", Types: []string{model.AssetTypeSecurityGroup}}

	first := inventory.FilterView(s.Assets(), s.Relationships(), c)
	second := inventory.FilterView(s.Assets(), s.Relationships(), c)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("re-applying identical criteria to an unchanged store changed the view")
	}
}

func TestFilterView_Search(t *testing.T) {
	s := seededStore(t)

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "empty matches all", search: "", want: []string{
			"i-0123456789abcdef0", "i-abcdef01234567890", "user-001", "vpc-01", "sg-web", "sg-db",
		}},
		{name: "name substring", search: "server", want: []string{"i-0123456789abcdef0", "i-abcdef01234567890"}},
		{name: "id substring", search: "vpc-0", want: []string{"vpc-01"}},
		{name: "case insensitive", search: "WEB-ACCESS", want: []string{"sg-web"}},
		{name: "no match", search: "nothing-here", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view := inventory.FilterView(s.Assets(), s.Relationships(), inventory.Criteria{Search: tc.search})
			if got := visibleAssetIDs(view.Assets); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("visible assets = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterView_CloudlessAssetNeverMatchesCloudFilter(t *testing.T) {
	assets := []model.Asset{
		{ID: "a", Type: "VPC", Name: "tagged", Cloud: model.CloudAWS},
		{ID: "b", Type: "VPC", Name: "untagged"},
	}

	view := inventory.FilterView(assets, nil, inventory.Criteria{Clouds: []string{model.CloudAWS}})
	if got := visibleAssetIDs(view.Assets); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("visible assets = %v, want [a]", got)
	}

	// With no cloud filter the untagged asset is visible again.
	view = inventory.FilterView(assets, nil, inventory.Criteria{})
	if len(view.Assets) != 2 {
		t.Fatalf("visible assets = %v, want both", visibleAssetIDs(view.Assets))
	}
}
