// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package models

// GraphLabels lists the node labels that may be looked up by id. Labels are
// spliced into Cypher text.
var GraphLabels = []string{"Camera", "Event", "Image", "Tag", "FaceIdentity", "PlateIdentity", "Watchlist"}

// IsGraphLabel reports whether label is one of GraphLabels.
func IsGraphLabel(label string) bool {
	for _, l := range GraphLabels {
		if l == label {
			return true
		}
	}
	return false
}

// GraphNode is a node returned by the graph store.
type GraphNode struct {
	ElementID  string                 `json:"elementId"`
	Labels     []string               `json:"labels"`
	Properties map[string]interface{} `json:"properties"`
}

// GraphRelationship is an edge returned by the graph store.
type GraphRelationship struct {
	ElementID      string                 `json:"elementId"`
	Type           string                 `json:"type"`
	StartElementID string                 `json:"startElementId"`
	EndElementID   string                 `json:"endElementId"`
	Properties     map[string]interface{} `json:"properties"`
}

// GraphRecord is one camera -> event row with the optional image and tag.
type GraphRecord struct {
	Camera      *GraphNode         `json:"c"`
	Event       *GraphNode         `json:"e"`
	Image       *GraphNode         `json:"i"`
	Tag         *GraphNode         `json:"tag"`
	Generated   *GraphRelationship `json:"g"`
	HasSnapshot *GraphRelationship `json:"h"`
	Tagged      *GraphRelationship `json:"t"`
}

// GraphRecords is the graph overview view.
type GraphRecords struct {
	Records []GraphRecord `json:"records"`
	Limit   int           `json:"limit"`
}

// Connection is one relationship of a node and the node at its other end.
type Connection struct {
	Relationship *GraphRelationship `json:"relationship"`
	Connected    *GraphNode         `json:"connected"`
}

// NodeRelationships is a node with its direct neighbours.
type NodeRelationships struct {
	Node        *GraphNode   `json:"node"`
	Connections []Connection `json:"connections"`
}

// Watchlist is a named list an identity belongs to.
type Watchlist struct {
	ID    interface{} `json:"id"`
	Name  interface{} `json:"name"`
	Level interface{} `json:"level"`
}

// FaceIdentity is a recognised face with its watchlists and event count.
type FaceIdentity struct {
	ID         interface{} `json:"id"`
	Similarity interface{} `json:"similarity"`
	FirstName  interface{} `json:"first_name"`
	LastName   interface{} `json:"last_name"`
	Watchlists []Watchlist `json:"watchlists"`
	Events     int64       `json:"events"`
}

// PlateIdentity is a recognised licence plate with its watchlists and event count.
type PlateIdentity struct {
	ID             interface{} `json:"id"`
	Number         interface{} `json:"number"`
	State          interface{} `json:"state"`
	OwnerFirstName interface{} `json:"owner_first_name"`
	OwnerLastName  interface{} `json:"owner_last_name"`
	Watchlists     []Watchlist `json:"watchlists"`
	Events         int64       `json:"events"`
}

// Identities is the faces and plates view for a window.
type Identities struct {
	TimeRange string          `json:"timeRange"`
	Window    WindowBounds    `json:"window"`
	Faces     []FaceIdentity  `json:"faces"`
	Plates    []PlateIdentity `json:"plates"`
}
