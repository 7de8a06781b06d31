// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package flow implements the multi-stage voting state machine.

# Stages

	course (no selection) --SelectCourse--> course (selected)
	course (selected)     --Submit ok-----> personero
	personero             --Submit ok-----> consejo
	consejo               --Submit ok-----> complete
	any                   --Submit fails--> unchanged, alert raised
	complete              --Acknowledge---> course (no selection)
	course/personero/consejo --BackToCourses--> course (no selection), not while an alert is pending

# Usage

	f := flow.New(client)
	f.StartLoad(ctx)            // background; Snapshot reports Loading meanwhile
	f.SelectCourse("3")
	err := f.Submit(ctx, "77")  // ErrSubmitInFlight while another vote runs
	state := f.Snapshot()       // render from the copy

A flow built with NewMisconfigured reports MsgConfig and never calls the
backend. Load is the blocking form of StartLoad. Close cancels an
outstanding load; its result is dropped.
*/
package flow
