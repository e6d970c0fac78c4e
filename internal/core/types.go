package core

import (
	"image/color"
	"math"
)

// Vec2 is a point or extent in world pixels. Y grows downwards.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Rotated returns v rotated by deg degrees around the origin.
func (v Vec2) Rotated(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Rect is an axis-aligned box described by its top-left corner and size.
type Rect struct {
	Min  Vec2
	Size Vec2
}

// Overlaps reports whether two rectangles intersect with positive area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Min.X+o.Size.X && o.Min.X < r.Min.X+r.Size.X &&
		r.Min.Y < o.Min.Y+o.Size.Y && o.Min.Y < r.Min.Y+r.Size.Y
}

// Kind enumerates every entity the world can produce.
type Kind uint8

const (
	KindSky Kind = iota
	KindGround
	KindCloud
	KindTrunk
	KindLeaf
	KindFruit
	KindRainDrop
	KindSun
	KindHalo
	KindNight
	KindAvatar
)

var kindNames = [...]string{
	KindSky:      "sky",
	KindGround:   "ground",
	KindCloud:    "cloud",
	KindTrunk:    "trunk",
	KindLeaf:     "leaf",
	KindFruit:    "fruit",
	KindRainDrop: "raindrop",
	KindSun:      "sun",
	KindHalo:     "sunHalo",
	KindNight:    "night",
	KindAvatar:   "avatar",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Layer orders entities for drawing; lower layers are drawn first.
type Layer int

const (
	LayerSky Layer = iota
	LayerSun
	LayerSunHalo
	LayerGround
	LayerTrunks
	LayerLeaves
	LayerFruits
	LayerCloud
	LayerAvatar
	LayerNight
)

// LayerFor returns the default drawing layer for an entity kind.
func LayerFor(k Kind) Layer {
	switch k {
	case KindSky:
		return LayerSky
	case KindSun:
		return LayerSun
	case KindHalo:
		return LayerSunHalo
	case KindGround:
		return LayerGround
	case KindTrunk:
		return LayerTrunks
	case KindLeaf:
		return LayerLeaves
	case KindFruit:
		return LayerFruits
	case KindCloud, KindRainDrop:
		return LayerCloud
	case KindAvatar:
		return LayerAvatar
	case KindNight:
		return LayerNight
	default:
		return LayerGround
	}
}

// ID identifies an entity registered with a world.
type ID uint32

// Entity is the renderable state shared between the core and its host.
//
// Screen marks entities positioned in camera coordinates (sky, sun, cloud,
// rain, night) rather than world coordinates.
type Entity struct {
	ID      ID
	Kind    Kind
	Pos     Vec2
	Size    Vec2
	Color   color.NRGBA
	Opacity float64
	Angle   float64
	Hidden  bool
	Screen  bool
}

// NewEntity returns a visible, fully opaque entity.
func NewEntity(kind Kind, pos, size Vec2, c color.NRGBA) *Entity {
	return &Entity{Kind: kind, Pos: pos, Size: size, Color: c, Opacity: 1}
}

// Bounds returns the entity rectangle.
func (e *Entity) Bounds() Rect { return Rect{Min: e.Pos, Size: e.Size} }

// Center returns the midpoint of the entity rectangle.
func (e *Entity) Center() Vec2 {
	return Vec2{X: e.Pos.X + e.Size.X/2, Y: e.Pos.Y + e.Size.Y/2}
}

// SetCenter moves the entity so its midpoint lands on c.
func (e *Entity) SetCenter(c Vec2) {
	e.Pos = Vec2{X: c.X - e.Size.X/2, Y: c.Y - e.Size.Y/2}
}

// Host is the engine-side registry the world materializes entities into.
type Host interface {
	Add(e *Entity, layer Layer)
	Remove(e *Entity, layer Layer)
}

// HeightFunc maps a world x coordinate to the terrain surface y.
type HeightFunc func(x float64) float64
