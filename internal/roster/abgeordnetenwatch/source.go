package abgeordnetenwatch

import (
	"context"
	"time"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
	"github.com/EmpoweredVote/mdb-finder/internal/roster/csvfile"
)

func init() {
	roster.RegisterSource(roster.SourceAbgeordnetenwatch, func(cfg roster.Config) (roster.Source, error) {
		return New(NewClient(cfg.AbgeordnetenwatchEndpoint, cfg.ParliamentPeriod), cfg.DataDir), nil
	})
}

// Source takes members from the API. Contacts, gender and localities have
// no API counterpart and are read from the data directory.
type Source struct {
	client  *Client
	dataDir string
}

func New(client *Client, dataDir string) *Source {
	return &Source{client: client, dataDir: dataDir}
}

func (s *Source) Name() string { return "abgeordnetenwatch" }

func (s *Source) Load(ctx context.Context) (roster.Data, error) {
	start := time.Now()

	mandates, err := s.client.FetchMandates(ctx)
	if err != nil {
		return roster.Data{}, err
	}
	members := make([]roster.Member, 0, len(mandates))
	for _, m := range mandates {
		members = append(members, ToMember(m))
	}

	data, err := csvfile.LoadSupplementary(ctx, s.dataDir)
	if err != nil {
		return roster.Data{}, err
	}
	data.Members = members

	roster.LogLoad(s.Name(), data, time.Since(start))
	return data, nil
}
