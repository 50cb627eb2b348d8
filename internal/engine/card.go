// internal/engine/card.go
package engine

import "fmt"

// Color is one of the four playable card colors. Wild cards carry ColorNone
// until a color is chosen for them at play time.
type Color string

const (
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorNone   Color = ""
)

// Colors lists the four playable colors in a fixed order.
var Colors = []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue}

// IsPlayable reports whether c is one of the four colors a wild card may choose.
func (c Color) IsPlayable() bool {
	switch c {
	case ColorRed, ColorYellow, ColorGreen, ColorBlue:
		return true
	}
	return false
}

// Kind partitions ranks into the three card families the rules branch on.
type Kind string

const (
	KindNumber Kind = "number"
	KindAction Kind = "action"
	KindWild   Kind = "wild"
)

// Rank identifies the face of a card: "0".."9" for number cards, or one of
// the named action/wild ranks below.
type Rank string

const (
	RankSkip         Rank = "skip"
	RankReverse      Rank = "reverse"
	RankDrawTwo      Rank = "draw_two"
	RankWild         Rank = "wild"
	RankWildDrawFour Rank = "wild_draw_four"
)

// NumberRank returns the rank for a digit 0-9.
func NumberRank(n int) Rank {
	return Rank(fmt.Sprintf("%d", n))
}

// Card is a plain value; cards are not individually identified. The closed
// system always holds exactly DeckSize of them.
type Card struct {
	Color Color `json:"color"`
	Rank  Rank  `json:"rank"`
	Kind  Kind  `json:"kind"`
}

func (c Card) String() string {
	if c.Kind == KindWild && c.Color == ColorNone {
		return string(c.Rank)
	}
	return fmt.Sprintf("%s %s", c.Color, c.Rank)
}

// Equal reports value equality between two cards. The color of a wild card is
// ignored so that a client echoing back a wild it holds (ColorNone in hand)
// still matches.
func (c Card) Equal(o Card) bool {
	if c.Kind != o.Kind || c.Rank != o.Rank {
		return false
	}
	if c.Kind == KindWild {
		return true
	}
	return c.Color == o.Color
}

func numberCard(color Color, n int) Card {
	return Card{Color: color, Rank: NumberRank(n), Kind: KindNumber}
}

func actionCard(color Color, rank Rank) Card {
	return Card{Color: color, Rank: rank, Kind: KindAction}
}

func wildCard(rank Rank) Card {
	return Card{Color: ColorNone, Rank: rank, Kind: KindWild}
}
