// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the value types shared across pipeline stages.
package types

// ItemKind classifies the source format of an item. It is resolved once
// at ingestion from the filename extension or the import source; all
// downstream dispatch switches over this tag.
type ItemKind string

const (
	KindPDF      ItemKind = "pdf"
	KindImage    ItemKind = "image"
	KindDocument ItemKind = "word-document"
	KindClipping ItemKind = "clipping"
)

// GroupLabel names one of the two output buckets of a grouped build.
type GroupLabel string

const (
	GroupA GroupLabel = "A"
	GroupB GroupLabel = "B"
)

// Item is one user-supplied document, image, or clipping tracked by the
// session registry. The registry is the sole owner of Content; renderers
// must not retain the bytes beyond a single call.
type Item struct {
	// ID is an opaque identifier assigned at creation, stable for the
	// item's lifetime.
	ID string `json:"id" yaml:"id"`

	// Name is the original display filename. It doubles as the title on
	// fallback-rendered document pages and as the match key for keyword
	// grouping.
	Name string `json:"name" yaml:"name"`

	// Kind is the source format, immutable once set.
	Kind ItemKind `json:"kind" yaml:"kind"`

	// Content is the raw (or lightly re-encoded) input bytes.
	Content []byte `json:"-" yaml:"-"`

	// Include controls whether the item participates in output
	// generation. Excluded items stay in the registry.
	Include bool `json:"include" yaml:"include"`

	// Order is the numeric sort key. Ties are broken by insertion order.
	Order int `json:"order" yaml:"order"`

	// Group is the manual bucket tag. GroupB is the default.
	Group GroupLabel `json:"group" yaml:"group"`
}

// Renamable reports whether the item's name may be changed after
// creation. Only clippings carry a user-chosen name.
func (it *Item) Renamable() bool {
	return it.Kind == KindClipping
}
