// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/votaciones/models"
)

// Fixed chart geometry (SVG user units)
const (
	ChartHeight  = 300
	BarColor     = "#8884d8"
	marginTop    = 20
	marginBottom = 60
	marginLeft   = 56
	marginRight  = 16
	slotWidth    = 96
	barWidth     = 56
	minWidth     = 360
	tickCount    = 4
)

type Chart struct {
	Title   string
	Width   int
	Height  int
	PlotTop int
	PlotEnd int // y of the x axis
	PlotL   int
	PlotR   int
	Color   string
	Bars    []Bar
	Ticks   []Tick
	Empty   bool
}

// Bar is one candidate column. X/Y/W/H are the rectangle, LabelX is the
// centre used for the name and the value labels.
type Bar struct {
	Label      string
	Votes      int64
	VotesLabel string
	X, Y, W, H int
	LabelX     int
}

type Tick struct {
	Y     int
	Label string
}

// NewChart lays out tallies as vertical bars: x = candidate name,
// y = total votes.
func NewChart(title string, tallies []models.VoteTally) Chart {
	width := marginLeft + len(tallies)*slotWidth + marginRight
	if width < minWidth {
		width = minWidth
	}
	plotH := ChartHeight - marginTop - marginBottom
	axisY := marginTop + plotH

	var maxVotes int64
	for _, t := range tallies {
		if t.Votes > maxVotes {
			maxVotes = t.Votes
		}
	}
	top := niceMax(maxVotes)

	c := Chart{
		Title:   title,
		Width:   width,
		Height:  ChartHeight,
		PlotTop: marginTop,
		PlotEnd: axisY,
		PlotL:   marginLeft,
		PlotR:   width - marginRight,
		Color:   BarColor,
		Empty:   len(tallies) == 0,
	}

	for i := 0; i <= tickCount; i++ {
		value := top * int64(i) / tickCount
		c.Ticks = append(c.Ticks, Tick{
			Y:     axisY - int(int64(plotH)*value/top),
			Label: humanize.Comma(value),
		})
	}

	for i, t := range tallies {
		votes := t.Votes
		if votes < 0 {
			votes = 0
		}
		h := int(int64(plotH) * votes / top)
		x := marginLeft + i*slotWidth + (slotWidth-barWidth)/2
		c.Bars = append(c.Bars, Bar{
			Label:      t.Name,
			Votes:      t.Votes,
			VotesLabel: humanize.Comma(t.Votes),
			X:          x,
			Y:          axisY - h,
			W:          barWidth,
			H:          h,
			LabelX:     x + barWidth/2,
		})
	}
	return c
}

// niceMax rounds the largest value up to tickCount steps of 1, 2 or 5
// times a power of ten.
func niceMax(max int64) int64 {
	if max <= 0 {
		return tickCount
	}
	raw := (max + tickCount - 1) / tickCount
	for pow := int64(1); ; pow *= 10 {
		for _, m := range []int64{1, 2, 5} {
			if step := m * pow; step >= raw {
				return step * tickCount
			}
		}
	}
}
