// Package finder answers "who represents this postal code?" by combining the
// resolver, the constituency index, the contact directory and the gender
// classifier, and serves the answers over HTTP.
package finder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/EmpoweredVote/mdb-finder/internal/constituency"
	"github.com/EmpoweredVote/mdb-finder/internal/contacts"
	"github.com/EmpoweredVote/mdb-finder/internal/gender"
	"github.com/EmpoweredVote/mdb-finder/internal/names"
	"github.com/EmpoweredVote/mdb-finder/internal/plz"
)

var (
	// ErrConstituencyNotFound means a resolved number has no roster entry,
	// i.e. the verified table and the roster disagree.
	ErrConstituencyNotFound = errors.New("constituency not found")
	ErrEmptyCity            = errors.New("city name is required")
)

const (
	msgInvalidPLZ = "PLZ must be a 5-digit number"
	msgMissingPLZ = "PLZ parameter is required"
)

// Service is built once at startup and read concurrently afterwards.
type Service struct {
	resolver   *plz.Resolver
	index      *constituency.Index
	directory  *contacts.Directory
	classifier *gender.Classifier
}

// New wires the tables and fails when the verified table references a
// constituency the roster does not contain.
func New(resolver *plz.Resolver, index *constituency.Index, directory *contacts.Directory, classifier *gender.Classifier) (*Service, error) {
	var missing []string
	for _, num := range resolver.Table().Constituencies() {
		if _, ok := index.Get(num); !ok {
			missing = append(missing, num)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: verified table references %s", ErrConstituencyNotFound, strings.Join(missing, ", "))
	}
	return &Service{resolver: resolver, index: index, directory: directory, classifier: classifier}, nil
}

func (s *Service) ResolveConstituency(code string) plz.Result {
	return s.resolver.Resolve(code)
}

// GetRepresentatives returns the members of a constituency in roster order.
func (s *Service) GetRepresentatives(number string) ([]Representative, error) {
	c, ok := s.index.Get(number)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrConstituencyNotFound, number)
	}
	out := make([]Representative, 0, len(c.Representatives))
	for _, m := range c.Representatives {
		r := Representative{
			Name:               m.Name,
			Party:              m.Party,
			MdbID:              m.MdbID,
			ConstituencyNumber: c.Number,
			ConstituencyName:   c.Name,
			ProfileURL:         m.ProfileURL,
			Gender:             s.classifier.Classify(m.Name),
			NormalizedName:     names.Normalize(m.Name),
		}
		if url, ok := s.directory.Lookup(m.Name); ok {
			r.ContactURL = &url
		} else if url := strings.TrimSpace(m.ContactURL); url != "" {
			r.ContactURL = &url
		}
		out = append(out, r)
	}
	return out, nil
}

// FindByPostalCode resolves code and, when it identifies one constituency,
// returns its representatives. An error is returned only when the tables
// disagree with each other.
func (s *Service) FindByPostalCode(code string) (Response, error) {
	code = strings.TrimSpace(code)
	resp := Response{PLZ: code}
	if code == "" {
		resp.Type = TypeInvalid
		resp.Message = msgMissingPLZ
		return resp, nil
	}

	res := s.resolver.Resolve(code)
	resp.City = res.Locality
	switch res.Status {
	case plz.StatusInvalidFormat:
		resp.Type = TypeInvalid
		resp.Message = msgInvalidPLZ
		return resp, nil
	case plz.StatusUnresolved:
		resp.Type = TypeNotFound
		resp.Message = fmt.Sprintf("PLZ %s ist keinem Wahlkreis eindeutig zugeordnet. Bitte suchen Sie nach Ihrem Ort.", code)
		return resp, nil
	case plz.StatusAmbiguous:
		resp.Message = fmt.Sprintf("PLZ %s gehört zu mehreren Wahlkreisen", code)
	}
	return s.fill(resp, res)
}

// FindByCity runs the keyword match for a city name. Unmatched names get
// spelling suggestions.
func (s *Service) FindByCity(name string) (Response, error) {
	name = strings.TrimSpace(name)
	resp := Response{City: name}
	if name == "" {
		resp.Type = TypeInvalid
		resp.Message = ErrEmptyCity.Error()
		return resp, nil
	}

	res := s.resolver.ResolveLocality(name)
	switch res.Status {
	case plz.StatusUnresolved:
		resp.Type = TypeNotFound
		resp.Message = fmt.Sprintf("Kein Wahlkreis für %q gefunden", name)
		resp.Suggestions = s.Suggest(name)
		return resp, nil
	case plz.StatusAmbiguous:
		resp.Message = fmt.Sprintf("%s gehört zu mehreren Wahlkreisen", name)
	}
	return s.fill(resp, res)
}

func (s *Service) fill(resp Response, res plz.Result) (Response, error) {
	resp.Confidence = res.Confidence

	if res.Status == plz.StatusAmbiguous {
		resp.Type = TypeMultiple
		for _, num := range res.Candidates {
			sum, err := s.summary(num)
			if err != nil {
				return Response{}, err
			}
			resp.Options = append(resp.Options, sum)
		}
		resp.Count = len(resp.Options)
		return resp, nil
	}

	sum, err := s.summary(res.Constituency)
	if err != nil {
		return Response{}, err
	}
	members, err := s.GetRepresentatives(res.Constituency)
	if err != nil {
		return Response{}, err
	}
	resp.Type = TypeMembers
	resp.Wahlkreis = &sum
	resp.Members = members
	resp.Count = len(members)
	return resp, nil
}

// Constituencies lists every indexed constituency.
func (s *Service) Constituencies() []ConstituencySummary {
	out := make([]ConstituencySummary, 0, s.index.Len())
	for _, c := range s.index.All() {
		out = append(out, summarize(c))
	}
	return out
}

// Constituency returns one constituency with its members.
func (s *Service) Constituency(number string) (ConstituencyDetail, error) {
	c, ok := s.index.Get(number)
	if !ok {
		return ConstituencyDetail{}, fmt.Errorf("%w: %s", ErrConstituencyNotFound, number)
	}
	members, err := s.GetRepresentatives(c.Number)
	if err != nil {
		return ConstituencyDetail{}, err
	}
	return ConstituencyDetail{ConstituencySummary: summarize(c), Keywords: c.Keywords, Members: members}, nil
}

// Stats reports table sizes for startup logging and the CLI.
func (s *Service) Stats() map[string]int {
	return map[string]int{
		"constituencies": s.index.Len(),
		"list_only":      s.index.ListOnly(),
		"verified_codes": s.resolver.Table().Len(),
		"contacts":       s.directory.Len(),
		"gender_names":   s.classifier.Len(),
	}
}

func (s *Service) summary(number string) (ConstituencySummary, error) {
	c, ok := s.index.Get(number)
	if !ok {
		return ConstituencySummary{}, fmt.Errorf("%w: %s", ErrConstituencyNotFound, number)
	}
	return summarize(c), nil
}

func summarize(c *constituency.Constituency) ConstituencySummary {
	return ConstituencySummary{
		Number:      c.Number,
		Name:        c.Name,
		Title:       fmt.Sprintf("Wahlkreis %s: %s", c.Number, c.Name),
		URL:         "/api/wahlkreise/" + c.Number,
		MemberCount: len(c.Representatives),
	}
}
