// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/tomtom215/eventdash/internal/models"
)

func toNode(v interface{}) *models.GraphNode {
	var n neo4j.Node
	switch t := v.(type) {
	case neo4j.Node:
		n = t
	case *neo4j.Node:
		if t == nil {
			return nil
		}
		n = *t
	default:
		return nil
	}
	props := n.Props
	if props == nil {
		props = map[string]interface{}{}
	}
	return &models.GraphNode{ElementID: n.ElementId, Labels: n.Labels, Properties: props}
}

func toRelationship(v interface{}) *models.GraphRelationship {
	var r neo4j.Relationship
	switch t := v.(type) {
	case neo4j.Relationship:
		r = t
	case *neo4j.Relationship:
		if t == nil {
			return nil
		}
		r = *t
	default:
		return nil
	}
	props := r.Props
	if props == nil {
		props = map[string]interface{}{}
	}
	return &models.GraphRelationship{
		ElementID:      r.ElementId,
		Type:           r.Type,
		StartElementID: r.StartElementId,
		EndElementID:   r.EndElementId,
		Properties:     props,
	}
}

func nodeField(rec *neo4j.Record, key string) *models.GraphNode {
	v, _ := rec.Get(key)
	return toNode(v)
}

func relField(rec *neo4j.Record, key string) *models.GraphRelationship {
	v, _ := rec.Get(key)
	return toRelationship(v)
}

// nodeProps returns the properties of the node at key, or an empty map.
func nodeProps(rec *neo4j.Record, key string) map[string]interface{} {
	if n := nodeField(rec, key); n != nil {
		return n.Properties
	}
	return map[string]interface{}{}
}

func intField(rec *neo4j.Record, key string) int64 {
	v, _ := rec.Get(key)
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func watchlists(rec *neo4j.Record) []models.Watchlist {
	v, _ := rec.Get("lists")
	items, _ := v.([]interface{})
	out := make([]models.Watchlist, 0, len(items))
	for _, item := range items {
		n := toNode(item)
		if n == nil {
			continue
		}
		out = append(out, models.Watchlist{
			ID:    n.Properties["id"],
			Name:  n.Properties["name"],
			Level: n.Properties["level"],
		})
	}
	return out
}
