package cfapi

import (
	"context"
	"net/http"
)

// Account is a billing/administrative grouping that owns zones.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// listAccountsPage fetches one page of the accounts visible to the token.
func (c *Client) listAccountsPage(ctx context.Context, page int) ([]Account, *ResultInfo, error) {
	var accounts []Account
	info, err := c.do(ctx, http.MethodGet, "/accounts", pageQuery(page), nil, &accounts)
	if err != nil {
		return nil, nil, err
	}
	return accounts, info, nil
}

// ListAccounts fetches every account visible to the token, following
// pagination until exhausted. Order is whatever the API returns.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var all []Account
	for page := 1; ; page++ {
		accounts, info, err := c.listAccountsPage(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, accounts...)

		if info == nil || page >= info.TotalPages {
			return all, nil
		}
	}
}
