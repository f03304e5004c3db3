// Package model defines the wire-level data model shared by the inventory
// store, the scan upload boundary, the AI collaborator, and the HTTP API.
package model

import (
	"fmt"
	"time"
)

// Asset represents a single cloud resource node in the graph.
//
// Type and Cloud are open string enumerations: the constants below cover
// the values rendered with dedicated treatment in the dashboard, but
// upstream scans may deliver values outside this set and those are kept
// verbatim.
type Asset struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Cloud     string         `json:"cloud,omitempty"`
	Name      string         `json:"name"`
	Metadata  map[string]any `json:"metadata"`
	RiskScore float64        `json:"riskScore"`
	Tags      []string       `json:"tags"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Relationship represents a directed, typed edge between two assets.
// From and To may reference assets that are not currently present in the
// store; such dangling edges are tolerated and simply excluded from
// filtered views.
type Relationship struct {
	ID           string    `json:"id"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Type         string    `json:"type"`
	DiscoveredBy string    `json:"discoveredBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Known asset types. The enumeration is open: anything else renders with
// the default treatment.
const (
	AssetTypeEC2Instance    = "EC2Instance"
	AssetTypeIAMUser        = "IAMUser"
	AssetTypeIAMRole        = "IAMRole"
	AssetTypeVPC            = "VPC"
	AssetTypeSecurityGroup  = "SecurityGroup"
	AssetTypeS3Bucket       = "S3Bucket"
	AssetTypeLambdaFunction = "LambdaFunction"
)

// Known cloud providers.
const (
	CloudAWS   = "aws"
	CloudAzure = "azure"
	CloudGCP   = "gcp"
)

// Known relationship types.
const (
	RelationResidesIn       = "resides_in"
	RelationMemberOf        = "member_of"
	RelationCanAccess       = "can_access"
	RelationAllowsTrafficTo = "allows_traffic_to"
	RelationUses            = "uses"
	RelationConnectedTo     = "connected_to"
	RelationDependsOn       = "depends_on"
)

// Relationship provenance values.
const (
	DiscoveredByScan = "scan"
	DiscoveredByAI   = "ai"
)

// KnownAssetTypes returns the asset type tags the dashboard renders with a
// dedicated icon, in display order.
func KnownAssetTypes() []string {
	return []string{
		AssetTypeEC2Instance,
		AssetTypeIAMUser,
		AssetTypeIAMRole,
		AssetTypeVPC,
		AssetTypeSecurityGroup,
		AssetTypeS3Bucket,
		AssetTypeLambdaFunction,
	}
}

// KnownClouds returns the recognized cloud provider tags.
func KnownClouds() []string {
	return []string{CloudAWS, CloudAzure, CloudGCP}
}

// Validate reports whether the asset carries the fields every stored asset
// must have. The remaining fields are optional or opaque.
func (a Asset) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("asset is missing an id")
	}
	if a.Type == "" {
		return fmt.Errorf("asset %q is missing a type", a.ID)
	}
	if a.Name == "" {
		return fmt.Errorf("asset %q is missing a name", a.ID)
	}
	return nil
}
