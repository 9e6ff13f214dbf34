// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package query

import (
	"fmt"
	"strings"

	"github.com/tomtom215/eventdash/internal/timerange"
)

// FilterSet is an ordered set of WHERE clauses with positional parameters.
//
// Example usage:
//
//	fs := query.New(window, "e")
//	fs.AddClause("e.level = " + fs.Next(), "ERROR")
//	where, args := fs.Build()
type FilterSet struct {
	alias   string
	clauses []string
	args    []interface{}
}

// Dimensions are the optional event filters. Empty strings add nothing.
type Dimensions struct {
	Category string
	Channel  string
	Search   string
	// RequireGeo restricts rows to usable coordinates.
	RequireGeo bool
}

// SnapshotDimensions are the optional snapshot filters.
type SnapshotDimensions struct {
	EventID string
	Type    string
}

// New starts a filter set with the window clause. alias qualifies event columns
// ("e" yields "e.start_time"); pass "" for unqualified columns.
func New(w timerange.Window, alias string) *FilterSet {
	fs := &FilterSet{
		alias:   alias,
		clauses: make([]string, 0, 8),
		args:    make([]interface{}, 0, 8),
	}
	col := fs.Column("start_time")
	if w.IsAbsolute() {
		p1 := fs.Next()
		fs.args = append(fs.args, w.Start)
		p2 := fs.Next()
		fs.args = append(fs.args, w.End)
		fs.clauses = append(fs.clauses, fmt.Sprintf("%s BETWEEN %s AND %s", col, p1, p2))
		return fs
	}
	fs.AddClause(col+" >= "+fs.Next(), w.Start)
	return fs
}

// Compose builds the event filter set in canonical dimension order.
func Compose(w timerange.Window, alias string, d Dimensions) *FilterSet {
	fs := New(w, alias)
	fs.addEquals("topic", d.Category)
	fs.addEquals("channel_id", d.Channel)
	fs.addSearch(d.Search)
	if d.RequireGeo {
		fs.addGeoValidity()
	}
	return fs
}

// ComposeSnapshots builds the filter set for the snapshot/event join. Event
// columns are qualified by eventAlias, snapshot columns by snapAlias.
func ComposeSnapshots(w timerange.Window, eventAlias, snapAlias string, d SnapshotDimensions) *FilterSet {
	fs := New(w, eventAlias)
	snap := &FilterSet{alias: snapAlias}
	if v := strings.TrimSpace(d.EventID); v != "" {
		fs.AddClause(snap.Column("event_id")+" = "+fs.Next(), v)
	}
	if v := strings.TrimSpace(d.Type); v != "" {
		fs.AddClause(snap.Column("type")+" = "+fs.Next(), v)
	}
	return fs
}

// Column qualifies name with the set's alias.
func (fs *FilterSet) Column(name string) string {
	if fs.alias == "" {
		return name
	}
	return fs.alias + "." + name
}

// Next returns the placeholder the next bound argument will occupy.
func (fs *FilterSet) Next() string {
	return fmt.Sprintf("$%d", len(fs.args)+1)
}

// AddClause appends a raw clause with its arguments. The clause must reference
// its placeholders via Next before the arguments are appended.
func (fs *FilterSet) AddClause(clause string, args ...interface{}) *FilterSet {
	fs.clauses = append(fs.clauses, clause)
	fs.args = append(fs.args, args...)
	return fs
}

func (fs *FilterSet) addEquals(column, value string) {
	v := strings.TrimSpace(value)
	if v == "" {
		return
	}
	fs.AddClause(fs.Column(column)+" = "+fs.Next(), v)
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// addSearch adds one OR clause over id, topic and channel name with three
// copies of the wrapped, escaped term.
func (fs *FilterSet) addSearch(term string) {
	v := strings.TrimSpace(term)
	if v == "" {
		return
	}
	pattern := "%" + likeEscaper.Replace(v) + "%"
	fields := []string{"id", "topic", "channel_name"}
	parts := make([]string, len(fields))
	base := len(fs.args)
	for i, f := range fields {
		parts[i] = fmt.Sprintf(`%s ILIKE $%d ESCAPE '\'`, fs.Column(f), base+i+1)
	}
	fs.AddClause("("+strings.Join(parts, " OR ")+")", pattern, pattern, pattern)
}

func (fs *FilterSet) addGeoValidity() {
	lat, lon := fs.Column("latitude"), fs.Column("longitude")
	fs.clauses = append(fs.clauses,
		lat+" IS NOT NULL",
		lon+" IS NOT NULL",
		lat+" BETWEEN -90 AND 90",
		lon+" BETWEEN -180 AND 180",
	)
}

// Build returns the clauses joined with AND, and a copy of the arguments.
func (fs *FilterSet) Build() (string, []interface{}) {
	return fs.Where(), fs.Args()
}

// Where returns the clauses joined with AND, without the WHERE keyword.
func (fs *FilterSet) Where() string {
	if len(fs.clauses) == 0 {
		return "1=1"
	}
	return strings.Join(fs.clauses, " AND ")
}

// Args returns a copy of the bound arguments.
func (fs *FilterSet) Args() []interface{} {
	out := make([]interface{}, len(fs.args))
	copy(out, fs.args)
	return out
}

// Clauses returns a copy of the clause list.
func (fs *FilterSet) Clauses() []string {
	out := make([]string, len(fs.clauses))
	copy(out, fs.clauses)
	return out
}

// Len returns the number of clauses.
func (fs *FilterSet) Len() int {
	return len(fs.clauses)
}

// Limit returns a LIMIT fragment numbered after the set's parameters, and the
// set's arguments followed by limit. The set itself is not modified.
func (fs *FilterSet) Limit(limit int) (string, []interface{}) {
	args := append(fs.Args(), limit)
	return fmt.Sprintf("LIMIT $%d", len(args)), args
}

// Page returns a LIMIT/OFFSET fragment numbered after the set's parameters,
// and the set's arguments followed by limit and offset.
func (fs *FilterSet) Page(limit, offset int) (string, []interface{}) {
	args := append(fs.Args(), limit, offset)
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}
