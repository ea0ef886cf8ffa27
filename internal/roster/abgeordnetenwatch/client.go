// Package abgeordnetenwatch loads the Bundestag roster from the
// abgeordnetenwatch.de v2 API.
package abgeordnetenwatch

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/EmpoweredVote/mdb-finder/internal/roster"
)

// PageLimit is the largest page the API serves.
const PageLimit = 100

// maxPages bounds pagination if the API misreports its total.
const maxPages = 50

// Client is an HTTP client for the abgeordnetenwatch API.
type Client struct {
	http   *resty.Client
	period int
}

// NewClient creates a client for one parliament period.
func NewClient(endpoint string, period int) *Client {
	c := resty.New()
	c.SetBaseURL(endpoint)
	c.SetHeader("Accept", "application/json")
	c.SetTimeout(30 * time.Second)
	return &Client{http: c, period: period}
}

// FetchMandates pages through all mandates of the period.
func (c *Client) FetchMandates(ctx context.Context) ([]Mandate, error) {
	var all []Mandate

	for page := 0; page < maxPages; page++ {
		params := map[string]string{
			"parliament_period": strconv.Itoa(c.period),
			"type":              "mandate",
			"page":              strconv.Itoa(page),
			"pager_limit":       strconv.Itoa(PageLimit),
		}

		start := time.Now()
		roster.LogRequest("abgeordnetenwatch", "GET", "/candidacies-mandates", params)

		var body MandatesResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetResult(&body).
			Get("/candidacies-mandates")
		if err != nil {
			roster.LogError("abgeordnetenwatch", "fetch", err)
			return nil, fmt.Errorf("abgeordnetenwatch request: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("abgeordnetenwatch: status %d on page %d", resp.StatusCode(), page)
		}

		roster.LogResponse("abgeordnetenwatch", resp.StatusCode(), time.Since(start), len(body.Data))

		all = append(all, body.Data...)
		if len(body.Data) == 0 || len(all) >= body.Meta.Result.Total {
			break
		}
	}

	return all, nil
}
