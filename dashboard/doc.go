// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dashboard holds the results view: one tally fetch per page view,
partitioned into representatives, personero and consejo.

	d := dashboard.New(client)
	d.Load(ctx)
	for _, c := range d.Charts() {
		// c.Bars, c.Ticks, fixed height ChartHeight and color BarColor
	}

Numeric group tags go to the representatives bucket, "Personero" and
"Consejo" to their own. On failure Error holds MsgLoadFailed and Charts
returns nothing.

WriteTables renders the same buckets as terminal tables for cmd/votestatus.
*/
package dashboard
