package finder

import (
	"github.com/EmpoweredVote/mdb-finder/internal/gender"
	"github.com/EmpoweredVote/mdb-finder/internal/plz"
)

// Representative is a roster member enriched for display.
type Representative struct {
	Name               string        `json:"name"`
	Party              string        `json:"party"`
	MdbID              string        `json:"mdb_id,omitempty"`
	ConstituencyNumber string        `json:"wahlkreis_number"`
	ConstituencyName   string        `json:"wahlkreis_name"`
	ContactURL         *string       `json:"contact_url"`
	ProfileURL         string        `json:"profile_url,omitempty"`
	Gender             gender.Gender `json:"gender"`
	NormalizedName     string        `json:"normalized_name"`
}

type ResponseType string

const (
	TypeMembers  ResponseType = "members"
	TypeMultiple ResponseType = "multiple_wahlkreis"
	TypeNotFound ResponseType = "not_found"
	TypeInvalid  ResponseType = "invalid"
)

// ConstituencySummary is a Wahlkreis without its members.
type ConstituencySummary struct {
	Number      string `json:"number"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	MemberCount int    `json:"member_count"`
}

// Response is the payload of a postal-code or city search.
type Response struct {
	PLZ         string                `json:"plz,omitempty"`
	City        string                `json:"city,omitempty"`
	Type        ResponseType          `json:"type"`
	Message     string                `json:"message,omitempty"`
	Confidence  plz.Confidence        `json:"confidence,omitempty"`
	Wahlkreis   *ConstituencySummary  `json:"wahlkreis,omitempty"`
	Count       int                   `json:"count"`
	Members     []Representative      `json:"members,omitempty"`
	Options     []ConstituencySummary `json:"options,omitempty"`
	Suggestions []string              `json:"suggestions,omitempty"`
}

// ConstituencyDetail is served by the single-constituency endpoint.
type ConstituencyDetail struct {
	ConstituencySummary
	Keywords []string         `json:"keywords"`
	Members  []Representative `json:"members"`
}
