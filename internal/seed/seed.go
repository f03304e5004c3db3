// Package seed provides the built-in sample inventory the dashboard boots
// with before any scan data has been uploaded.
package seed

import (
	"time"

	"github.com/cloud-compass/compass/backend/pkg/inventory"
	"github.com/cloud-compass/compass/backend/pkg/model"
)

// Assets returns the sample asset list in its canonical order.
func Assets() []model.Asset {
	now := time.Now().UTC()
	return []model.Asset{
		{
			ID:    "i-0123456789abcdef0",
			Type:  model.AssetTypeEC2Instance,
			Cloud: model.CloudAWS,
			Name:  "web-server-01",
			Metadata: map[string]any{
				"region":       "us-east-1",
				"ip":           "192.0.2.1",
				"instanceType": "t2.micro",
				"state":        "running",
			},
			RiskScore: 0.7,
			Tags:      []string{"web", "production"},
			UpdatedAt: now,
		},
		{
			ID:    "i-abcdef01234567890",
			Type:  model.AssetTypeEC2Instance,
			Cloud: model.CloudAWS,
			Name:  "db-server-01",
			Metadata: map[string]any{
				"region":       "us-east-1",
				"ip":           "192.0.2.2",
				"instanceType": "m5.large",
				"state":        "running",
			},
			RiskScore: 0.4,
			Tags:      []string{"database", "production"},
			UpdatedAt: now,
		},
		{
			ID:    "user-001",
			Type:  model.AssetTypeIAMUser,
			Cloud: model.CloudAWS,
			Name:  "dev-admin",
			Metadata: map[string]any{
				"arn":    "arn:aws:iam::123456789012:user/dev-admin",
				"groups": []string{"developers", "admins"},
			},
			RiskScore: 0.9,
			Tags:      []string{"admin-access"},
			UpdatedAt: now,
		},
		{
			ID:    "vpc-01",
			Type:  model.AssetTypeVPC,
			Cloud: model.CloudAWS,
			Name:  "main-vpc",
			Metadata: map[string]any{
				"cidrBlock": "10.0.0.0/16",
				"region":    "us-east-1",
			},
			RiskScore: 0.2,
			Tags:      []string{"networking", "core"},
			UpdatedAt: now,
		},
		{
			ID:    "sg-web",
			Type:  model.AssetTypeSecurityGroup,
			Cloud: model.CloudAWS,
			Name:  "web-access-sg",
			Metadata: map[string]any{
				"description": "Allows HTTP and HTTPS access",
				"inboundRules": []map[string]any{
					{"protocol": "tcp", "port": 80, "source": "0.0.0.0/0"},
					{"protocol": "tcp", "port": 443, "source": "0.0.0.0/0"},
				},
			},
			RiskScore: 0.8,
			Tags:      []string{"security", "web"},
			UpdatedAt: now,
		},
		{
			ID:    "sg-db",
			Type:  model.AssetTypeSecurityGroup,
			Cloud: model.CloudAWS,
			Name:  "db-access-sg",
			Metadata: map[string]any{
				"description": "Allows DB access from web servers",
				"inboundRules": []map[string]any{
					{"protocol": "tcp", "port": 5432, "source": "sg-web"},
				},
			},
			RiskScore: 0.3,
			Tags:      []string{"security", "database"},
			UpdatedAt: now,
		},
	}
}

// Relationships returns the sample relationship list in its canonical
// order.
func Relationships() []model.Relationship {
	now := time.Now().UTC()
	return []model.Relationship{
		{ID: "rel-1", From: "i-0123456789abcdef0", To: "vpc-01", Type: model.RelationResidesIn, DiscoveredBy: model.DiscoveredByScan, CreatedAt: now},
		{ID: "rel-2", From: "i-abcdef01234567890", To: "vpc-01", Type: model.RelationResidesIn, DiscoveredBy: model.DiscoveredByScan, CreatedAt: now},
		{ID: "rel-3", From: "i-0123456789abcdef0", To: "sg-web", Type: model.RelationMemberOf, DiscoveredBy: model.DiscoveredByScan, CreatedAt: now},
		{ID: "rel-4", From: "i-abcdef01234567890", To: "sg-db", Type: model.RelationMemberOf, DiscoveredBy: model.DiscoveredByScan, CreatedAt: now},
		{ID: "rel-5", From: "user-001", To: "i-0123456789abcdef0", Type: model.RelationCanAccess, DiscoveredBy: model.DiscoveredByAI, CreatedAt: now},
		{ID: "rel-6", From: "sg-web", To: "sg-db", Type: model.RelationAllowsTrafficTo, DiscoveredBy: model.DiscoveredByScan, CreatedAt: now},
	}
}

// Load ingests the sample inventory into the store.
func Load(store *inventory.Store) error {
	if err := store.Ingest(Assets()); err != nil {
		return err
	}
	for _, rel := range Relationships() {
		store.AppendRelationship(rel)
	}
	return nil
}
