// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/eventdash/internal/models"
	"github.com/tomtom215/eventdash/internal/timerange"
)

const recordsCypher = `MATCH (c:Camera)-[g:GENERATED]->(e:Event)
OPTIONAL MATCH (e)-[h:HAS_SNAPSHOT]->(i:Image)
OPTIONAL MATCH (e)-[t:TAGGED]->(tag:Tag)
RETURN c, e, i, tag, g, h, t
LIMIT $limit`

// identityCypher matches identities of one kind linked to events in the
// window. Verbs: window condition, relationship type, identity label, ordering.
const identityCypher = `MATCH (e:Event)
WHERE %s
MATCH (e)-[:%s]->(n:%s)
OPTIONAL MATCH (n)-[:IN_LIST]->(wl:Watchlist)
WITH n, collect(DISTINCT wl) AS lists, count(DISTINCT e) AS events
RETURN n AS node, lists, events
ORDER BY %s
LIMIT toInteger($limit)`

const neighboursCypher = `MATCH (n:%s {id: $id})
OPTIONAL MATCH (n)-[r]-(connected)
RETURN n, r, connected
LIMIT $limit`

// ValidLabel reports whether NodeRelationships accepts label.
func ValidLabel(label string) bool {
	return models.IsGraphLabel(label)
}

// Records returns camera -> event rows with their optional image and tag.
func (s *Service) Records(ctx context.Context, limit int) (*models.GraphRecords, error) {
	limit = clamp(limit, RecordsDefault, RecordsMax)
	records, err := s.run(ctx, "graph.records", recordsCypher, map[string]interface{}{"limit": limit})
	if err != nil {
		return nil, err
	}

	out := &models.GraphRecords{Records: make([]models.GraphRecord, 0, len(records)), Limit: limit}
	for _, rec := range records {
		out.Records = append(out.Records, models.GraphRecord{
			Camera:      nodeField(rec, "c"),
			Event:       nodeField(rec, "e"),
			Image:       nodeField(rec, "i"),
			Tag:         nodeField(rec, "tag"),
			Generated:   relField(rec, "g"),
			HasSnapshot: relField(rec, "h"),
			Tagged:      relField(rec, "t"),
		})
	}
	return out, nil
}

// IdentityQuery selects the window and list sizes for Identities.
type IdentityQuery struct {
	Window      timerange.Request
	FacesLimit  int
	PlatesLimit int
}

// Identities returns faces ordered by similarity (highest first) and plates
// ordered by number, each with watchlists and the count of matching events in
// the window (default 30m).
func (s *Service) Identities(ctx context.Context, q IdentityQuery) (*models.Identities, error) {
	now := s.now()
	w := q.Window.Resolve(now, timerange.Default30m)

	where := []string{"e.start_time >= $start"}
	params := map[string]interface{}{"start": w.Start}
	if w.IsAbsolute() {
		where = append(where, "e.start_time <= $end")
		params["end"] = w.End
	}
	cond := strings.Join(where, " AND ")

	facesParams := withLimit(params, clamp(q.FacesLimit, IdentitiesDefault, IdentitiesMax))
	faceRecords, err := s.run(ctx, "identities.faces",
		fmt.Sprintf(identityCypher, cond, "MATCHED_FACE", "FaceIdentity", "coalesce(n.similarity, 0) DESC, n.id ASC"),
		facesParams)
	if err != nil {
		return nil, err
	}

	platesParams := withLimit(params, clamp(q.PlatesLimit, IdentitiesDefault, IdentitiesMax))
	plateRecords, err := s.run(ctx, "identities.plates",
		fmt.Sprintf(identityCypher, cond, "MATCHED_PLATE", "PlateIdentity", "coalesce(n.number, '') ASC, n.id ASC"),
		platesParams)
	if err != nil {
		return nil, err
	}

	out := &models.Identities{
		TimeRange: string(w.Token),
		Window:    models.WindowBounds{Start: w.Start, End: w.EffectiveEnd(now)},
		Faces:     make([]models.FaceIdentity, 0, len(faceRecords)),
		Plates:    make([]models.PlateIdentity, 0, len(plateRecords)),
	}
	for _, rec := range faceRecords {
		props := nodeProps(rec, "node")
		out.Faces = append(out.Faces, models.FaceIdentity{
			ID:         props["id"],
			Similarity: props["similarity"],
			FirstName:  props["first_name"],
			LastName:   props["last_name"],
			Watchlists: watchlists(rec),
			Events:     intField(rec, "events"),
		})
	}
	for _, rec := range plateRecords {
		props := nodeProps(rec, "node")
		out.Plates = append(out.Plates, models.PlateIdentity{
			ID:             props["id"],
			Number:         props["number"],
			State:          props["state"],
			OwnerFirstName: props["owner_first_name"],
			OwnerLastName:  props["owner_last_name"],
			Watchlists:     watchlists(rec),
			Events:         intField(rec, "events"),
		})
	}
	return out, nil
}

// NodeRelationships returns the node with the given label and id and its
// direct neighbours. It returns ErrUnknownLabel for labels outside models.GraphLabels and
// ErrNotFound when no such node exists.
func (s *Service) NodeRelationships(ctx context.Context, label, id string) (*models.NodeRelationships, error) {
	if !ValidLabel(label) {
		return nil, ErrUnknownLabel
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	records, err := s.run(ctx, "graph.node", fmt.Sprintf(neighboursCypher, label),
		map[string]interface{}{"id": id, "limit": maxConnections})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}

	out := &models.NodeRelationships{
		Node:        nodeField(records[0], "n"),
		Connections: make([]models.Connection, 0, len(records)),
	}
	for _, rec := range records {
		rel := relField(rec, "r")
		if rel == nil {
			continue
		}
		out.Connections = append(out.Connections, models.Connection{
			Relationship: rel,
			Connected:    nodeField(rec, "connected"),
		})
	}
	return out, nil
}

func withLimit(params map[string]interface{}, limit int) map[string]interface{} {
	out := make(map[string]interface{}, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	out["limit"] = limit
	return out
}
