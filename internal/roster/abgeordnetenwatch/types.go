package abgeordnetenwatch

// MandatesResponse is one page of /candidacies-mandates.
type MandatesResponse struct {
	Meta Meta      `json:"meta"`
	Data []Mandate `json:"data"`
}

type Meta struct {
	Status string `json:"status"`
	Result struct {
		Count int `json:"count"`
		Total int `json:"total"`
	} `json:"result"`
}

// Entity is the {id, label} pair the API uses for every reference.
type Entity struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

type Politician struct {
	ID                   int    `json:"id"`
	Label                string `json:"label"`
	AbgeordnetenwatchURL string `json:"abgeordnetenwatch_url"`
}

type ElectoralData struct {
	Constituency  *Entity `json:"constituency"`
	ElectoralList *Entity `json:"electoral_list"`
	MandateWon    string  `json:"mandate_won"`
}

type FractionMembership struct {
	Fraction   Entity `json:"fraction"`
	ValidUntil string `json:"valid_until"`
}

type Mandate struct {
	ID                 int                  `json:"id"`
	Label              string               `json:"label"`
	Politician         Politician           `json:"politician"`
	ElectoralData      *ElectoralData       `json:"electoral_data"`
	FractionMembership []FractionMembership `json:"fraction_membership"`
}
