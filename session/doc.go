// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session binds one voting flow to each browser session.

Session ids are UUIDs carried in a signed, HttpOnly cookie (see package
auth). Flows live in memory only; a session idle for longer than the TTL is
evicted by Sweep (or lazily by Get) and its flow is closed, which cancels
any candidate fetch still in progress.

	store := session.NewStore(newFlow, cfg.SessionTTL, cfg.SessionSalt)
	go store.Run(ctx, time.Minute)

	f := store.Attach(w, r)   // in a GET handler
	f, ok := store.Lookup(r)  // in a POST action
*/
package session
