// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texel

import (
	"fmt"
	"strings"

	"github.com/framegrace/texelfx/motion"
)

// Order selects how characters are grouped and enumerated.
type Order int

const (
	RowTopToBottom Order = iota
	RowBottomToTop
	ColumnLeftToRight
	ColumnRightToLeft
	DiagonalTopLeftToBottomRight
	DiagonalBottomRightToTopLeft
	DiagonalBottomLeftToTopRight
	DiagonalTopRightToBottomLeft
)

var orderNames = map[Order]string{
	RowTopToBottom:               "row_top_to_bottom",
	RowBottomToTop:               "row_bottom_to_top",
	ColumnLeftToRight:            "column_left_to_right",
	ColumnRightToLeft:            "column_right_to_left",
	DiagonalTopLeftToBottomRight: "diagonal_top_left_to_bottom_right",
	DiagonalBottomRightToTopLeft: "diagonal_bottom_right_to_top_left",
	DiagonalBottomLeftToTopRight: "diagonal_bottom_left_to_top_right",
	DiagonalTopRightToBottomLeft: "diagonal_top_right_to_bottom_left",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// ParseOrder resolves an order name such as "column_left_to_right".
func ParseOrder(name string) (Order, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for o, candidate := range orderNames {
		if candidate == n {
			return o, nil
		}
	}
	return RowTopToBottom, fmt.Errorf("texel: unknown order %q", name)
}

// groupKey returns the grouping key and whether groups are visited in
// descending key order.
func (o Order) groupKey() (func(motion.Coord) int, bool) {
	switch o {
	case RowBottomToTop:
		return func(c motion.Coord) int { return c.Row }, false
	case ColumnLeftToRight:
		return func(c motion.Coord) int { return c.Column }, false
	case ColumnRightToLeft:
		return func(c motion.Coord) int { return c.Column }, true
	case DiagonalTopLeftToBottomRight:
		return func(c motion.Coord) int { return c.Column - c.Row }, false
	case DiagonalBottomRightToTopLeft:
		return func(c motion.Coord) int { return c.Column - c.Row }, true
	case DiagonalBottomLeftToTopRight:
		return func(c motion.Coord) int { return c.Column + c.Row }, false
	case DiagonalTopRightToBottomLeft:
		return func(c motion.Coord) int { return c.Column + c.Row }, true
	default:
		return func(c motion.Coord) int { return c.Row }, true
	}
}
