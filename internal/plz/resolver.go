package plz

import "strings"

type Status string

const (
	StatusResolved      Status = "resolved"
	StatusAmbiguous     Status = "ambiguous"
	StatusUnresolved    Status = "unresolved"
	StatusInvalidFormat Status = "invalid_format"
)

// Confidence tells a verified hit apart from a keyword inference.
type Confidence string

const (
	ConfidenceVerified Confidence = "verified"
	ConfidenceKeyword  Confidence = "keyword"
)

// Result is the outcome of a resolution. Constituency is set for resolved
// results, Candidates (two or more, in match order) for ambiguous ones.
type Result struct {
	Status       Status     `json:"status"`
	Constituency string     `json:"constituency,omitempty"`
	Candidates   []string   `json:"candidates,omitempty"`
	Confidence   Confidence `json:"confidence,omitempty"`
	Locality     string     `json:"locality,omitempty"`
}

// Resolver is immutable and safe for concurrent use.
type Resolver struct {
	table      *Table
	localities *Localities
	matcher    LocalityMatcher
}

// NewResolver wires the verified table, the optional locality table and
// the keyword matcher.
func NewResolver(table *Table, localities *Localities, matcher LocalityMatcher) *Resolver {
	if table == nil {
		table = &Table{codes: map[string]string{}}
	}
	return &Resolver{table: table, localities: localities, matcher: matcher}
}

// Resolve looks code up in the verified table first. Unknown codes fall back
// to the locality covering them; a locality matching several constituencies
// is reported as ambiguous rather than guessed.
func (r *Resolver) Resolve(code string) Result {
	if !ValidCode(code) {
		return Result{Status: StatusInvalidFormat}
	}
	if num, ok := r.table.Lookup(code); ok {
		return Result{Status: StatusResolved, Constituency: num, Confidence: ConfidenceVerified}
	}
	if city, ok := r.localities.City(code); ok {
		return r.matchLocality(city)
	}
	return Result{Status: StatusUnresolved}
}

// ResolveLocality runs the keyword match for a city name.
func (r *Resolver) ResolveLocality(name string) Result {
	return r.matchLocality(strings.TrimSpace(name))
}

func (r *Resolver) matchLocality(city string) Result {
	if r.matcher == nil || city == "" {
		return Result{Status: StatusUnresolved, Locality: city}
	}
	hits := r.matcher.MatchLocality(city)
	switch len(hits) {
	case 0:
		return Result{Status: StatusUnresolved, Locality: city}
	case 1:
		return Result{Status: StatusResolved, Constituency: hits[0], Confidence: ConfidenceKeyword, Locality: city}
	default:
		return Result{Status: StatusAmbiguous, Candidates: hits, Confidence: ConfidenceKeyword, Locality: city}
	}
}

// Table exposes the verified table for coverage reports.
func (r *Resolver) Table() *Table { return r.table }
