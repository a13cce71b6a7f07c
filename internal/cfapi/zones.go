package cfapi

import (
	"context"
	"net/http"
)

// Zone is a DNS-managed site under an account. An immutable snapshot as of
// the moment it was listed; nothing is cached across runs.
type Zone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// listZonesPage fetches one page of the zones belonging to an account.
func (c *Client) listZonesPage(ctx context.Context, accountID string, page int) ([]Zone, *ResultInfo, error) {
	q := pageQuery(page)
	q.Set("account.id", accountID)

	var zones []Zone
	info, err := c.do(ctx, http.MethodGet, "/zones", q, nil, &zones)
	if err != nil {
		return nil, nil, err
	}
	return zones, info, nil
}
