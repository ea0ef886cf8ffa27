package roster

// Member is one seat in the roster. A member holding a direct and a list
// mandate appears twice. ConstituencyNumber is empty for list-only seats.
type Member struct {
	Name               string `json:"name"`
	Party              string `json:"party"`
	MdbID              string `json:"mdb_id,omitempty"`
	ConstituencyNumber string `json:"wahlkreis_number,omitempty"`
	ConstituencyName   string `json:"wahlkreis_name,omitempty"`
	ContactURL         string `json:"contact_url,omitempty"`
	ProfileURL         string `json:"profile_url,omitempty"`
}

// ContactRow maps a display name to the member's contact form.
type ContactRow struct {
	Name       string `json:"name"`
	ContactURL string `json:"contact_url"`
}

// GenderEntry is one curated row of the gender table.
type GenderEntry struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

// LocalityRow names the city or town covering an inclusive postal-code range.
type LocalityRow struct {
	From string `json:"from"`
	To   string `json:"to"`
	City string `json:"city"`
}

// Data is everything a Source provides. Slice order is the source's row
// order and is significant: later rows overwrite earlier ones on key clashes.
type Data struct {
	Members    []Member
	Contacts   []ContactRow
	Gender     []GenderEntry
	Localities []LocalityRow
}
