package cfapi

import "context"

// ZonePair is one (account, zone) pair produced by the Enumerator.
type ZonePair struct {
	Account Account
	Zone    Zone
}

// AccountError records a zone-listing failure that aborted enumeration for
// a single account. The remaining accounts are still attempted.
type AccountError struct {
	Account Account
	Err     error
}

// Enumerator walks every zone of every account visible to the credential,
// fetching pages lazily as the caller advances. It is single-use and not
// restartable. Usage follows the bufio.Scanner shape:
//
//	e := cfapi.NewEnumerator(client)
//	for e.Next(ctx) {
//	    pair := e.Pair()
//	    ...
//	}
//	if err := e.Err(); err != nil { ... }
//
// Err reports a failure listing the accounts themselves, which ends the
// whole enumeration. Per-account zone failures are collected separately and
// available from AccountErrors after the loop.
type Enumerator struct {
	client *Client

	accounts         []Account
	accountIdx       int
	accountPage      int
	accountPagesDone bool

	zones         []Zone
	zoneIdx       int
	zonePage      int
	zonePagesDone bool

	pair        ZonePair
	accountErrs []AccountError
	err         error
	done        bool
}

// NewEnumerator creates an Enumerator over client. No network calls are made
// until the first Next.
func NewEnumerator(client *Client) *Enumerator {
	return &Enumerator{client: client, accountIdx: -1}
}

// Next advances to the next (account, zone) pair, fetching account and zone
// pages as needed. It returns false when the enumeration is exhausted or a
// fatal account-listing failure occurred (see Err).
func (e *Enumerator) Next(ctx context.Context) bool {
	if e.done {
		return false
	}

	for {
		// Drain the buffered zone page for the current account.
		if e.zoneIdx < len(e.zones) {
			e.pair = ZonePair{Account: e.accounts[e.accountIdx], Zone: e.zones[e.zoneIdx]}
			e.zoneIdx++
			return true
		}

		// More zone pages for the current account?
		if e.accountIdx >= 0 && !e.zonePagesDone {
			account := e.accounts[e.accountIdx]
			zones, info, err := e.client.listZonesPage(ctx, account.ID, e.zonePage+1)
			if err != nil {
				// Abort this account only; move on to the next one.
				e.accountErrs = append(e.accountErrs, AccountError{Account: account, Err: err})
				e.zonePagesDone = true
				continue
			}
			e.zonePage++
			e.zones = zones
			e.zoneIdx = 0
			if info == nil || e.zonePage >= info.TotalPages {
				e.zonePagesDone = true
			}
			continue
		}

		// Advance to the next account, fetching the next accounts page
		// when the buffered ones are used up.
		if e.accountIdx+1 >= len(e.accounts) {
			if e.accountPagesDone {
				e.done = true
				return false
			}
			accounts, info, err := e.client.listAccountsPage(ctx, e.accountPage+1)
			if err != nil {
				// Without the account listing nothing can proceed.
				e.err = err
				e.done = true
				return false
			}
			e.accountPage++
			if info == nil || e.accountPage >= info.TotalPages {
				e.accountPagesDone = true
			}
			if len(accounts) == 0 {
				if e.accountPagesDone {
					e.done = true
					return false
				}
				continue
			}
			e.accounts = append(e.accounts, accounts...)
		}

		e.accountIdx++
		e.zones = nil
		e.zoneIdx = 0
		e.zonePage = 0
		e.zonePagesDone = false
	}
}

// Pair returns the pair produced by the last successful Next.
func (e *Enumerator) Pair() ZonePair { return e.pair }

// Err returns the fatal failure that ended enumeration early, if any.
func (e *Enumerator) Err() error { return e.err }

// AccountErrors returns the accounts whose zones could not be listed.
func (e *Enumerator) AccountErrors() []AccountError { return e.accountErrs }
