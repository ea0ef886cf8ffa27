package abgeordnetenwatch

import (
	"strconv"
	"strings"

	"github.com/EmpoweredVote/mdb-finder/internal/constituency"
	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

// ParseConstituencyLabel splits "205 - Mainz (Bundestag 2021 - 2025)" into
// "205" and "Mainz". ok is false when the label has no leading number.
func ParseConstituencyLabel(label string) (number, name string, ok bool) {
	num, rest, found := strings.Cut(strings.TrimSpace(label), " - ")
	if !found {
		return "", "", false
	}
	if _, err := strconv.Atoi(strings.TrimSpace(num)); err != nil {
		return "", "", false
	}
	if i := strings.LastIndex(rest, " ("); i >= 0 && strings.HasSuffix(rest, ")") {
		rest = rest[:i]
	}
	return constituency.PadNumber(num), strings.TrimSpace(rest), true
}

// PartyLabel strips the period suffix: "SPD (Bundestag 2021 - 2025)" -> "SPD".
func PartyLabel(label string) string {
	if i := strings.Index(label, "("); i >= 0 {
		label = label[:i]
	}
	return strings.TrimSpace(label)
}

// ToMember maps a mandate onto a roster row. Members elected via a list
// still belong to the constituency they ran in; only mandates without a
// constituency candidacy stay unnumbered. The current fraction membership
// (no end date) wins over earlier ones.
func ToMember(m Mandate) roster.Member {
	out := roster.Member{
		Name:       strings.TrimSpace(m.Politician.Label),
		MdbID:      strconv.Itoa(m.Politician.ID),
		ProfileURL: m.Politician.AbgeordnetenwatchURL,
	}

	for _, fm := range m.FractionMembership {
		if fm.ValidUntil == "" {
			out.Party = PartyLabel(fm.Fraction.Label)
			break
		}
	}
	if out.Party == "" && len(m.FractionMembership) > 0 {
		out.Party = PartyLabel(m.FractionMembership[0].Fraction.Label)
	}

	if ed := m.ElectoralData; ed != nil && ed.Constituency != nil {
		if num, name, ok := ParseConstituencyLabel(ed.Constituency.Label); ok {
			out.ConstituencyNumber = num
			out.ConstituencyName = name
		}
	}
	return out
}
