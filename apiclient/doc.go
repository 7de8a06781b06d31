// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apiclient is the HTTP client for the voting backend.

One Client covers the three backend calls:

	GET  {base}/getCandidatos     - ListCandidates
	POST {base}/create            - SubmitVote
	GET  {base}/getCandidateVotes - CandidateVotes

Every call is bounded by the client timeout (DefaultTimeout, 10s) and by the
caller's context. Cancellation stays visible through errors.Is:

	records, err := client.ListCandidates(ctx)
	if errors.Is(err, context.Canceled) {
		return // discarded, not an error
	}

Non-2xx responses are reported as *StatusError.

# Base URL

New normalizes the configured base URL with NormalizeBaseURL and fails with
ErrInvalidBaseURL when it is empty or malformed, before any request is made.
ResolveAssetURL makes candidate photo URLs absolute against the same base.
*/
package apiclient
