// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates the stages: it dispatches items to the
// right decoder and renderer, feeds the session's ordered view into the
// assembler, and partitions grouped builds.
// See docs/ARCHITECTURE § Orchestration.
package pipeline

import (
	"fmt"
	"io"

	"github.com/pdiddy/pdf-binder/internal/assemble"
	"github.com/pdiddy/pdf-binder/internal/convert"
	"github.com/pdiddy/pdf-binder/internal/decode"
	"github.com/pdiddy/pdf-binder/internal/render"
	"github.com/pdiddy/pdf-binder/internal/session"
	"github.com/pdiddy/pdf-binder/pkg/types"
)

// Generator runs generation requests against a session. One request
// runs to completion before the session can be mutated again.
type Generator struct {
	docs *convert.DocumentRenderer
}

// NewGenerator builds a generator around the document renderer (which
// carries the native-converter capability resolved at startup).
func NewGenerator(docs *convert.DocumentRenderer) *Generator {
	return &Generator{docs: docs}
}

// ItemPDF produces the per-item PDF buffer. Dispatch is an exhaustive
// switch over the item kind:
//
//   - pdf: content passes through unchanged; validity is re-checked by
//     the assembler.
//   - image, clipping: decode then render; nil when the bytes cannot be
//     decoded.
//   - word-document: two-tier conversion, always non-nil.
//   - anything else: nil.
//
// A nil result means the item contributes nothing to the output.
func (g *Generator) ItemPDF(it *types.Item) []byte {
	switch it.Kind {
	case types.KindPDF:
		return it.Content
	case types.KindImage, types.KindClipping:
		img, err := decode.Image(it.Content)
		if err != nil {
			return nil
		}
		return render.ImagePDF(img)
	case types.KindDocument:
		return g.docs.Render(it.Content, it.Name)
	default:
		return nil
	}
}

// BuildResult holds the outcome of one generation request. A nil PDF
// with no failures means there was nothing to generate; that is an
// informational state, not an error.
type BuildResult struct {
	PDF      []byte
	Rendered int
	Skipped  int
	Failed   int
}

// Empty reports whether no items survived filtering and rendering.
func (r BuildResult) Empty() bool { return r.PDF == nil }

// Total returns the number of items considered.
func (r BuildResult) Total() int { return r.Rendered + r.Skipped + r.Failed }

// BuildCombined renders every included item in registry order and
// merges the survivors into one PDF. Per-item failures degrade to "this
// item contributes nothing"; they never abort the build.
func (g *Generator) BuildCombined(s *session.Session, w io.Writer) BuildResult {
	var result BuildResult
	var buffers [][]byte

	for _, it := range s.View() {
		pdf, ok := g.renderItem(it, &result, w)
		if !ok {
			continue
		}
		buffers = append(buffers, pdf)
	}

	if len(buffers) == 0 {
		fmt.Fprintf(w, "\nnothing to generate: no items survived\n")
		return result
	}

	result.PDF = assemble.Merge(buffers)
	fmt.Fprintf(w, "\n%d item(s) merged, %d skipped, %d failed\n",
		result.Rendered, result.Skipped, result.Failed)
	return result
}

// GroupResult holds the two buckets of a grouped build.
type GroupResult struct {
	A BuildResult
	B BuildResult
}

// BuildGrouped renders every included item in registry order,
// partitions the survivors with the policy, and merges each bucket
// independently. A bucket that receives nothing stays empty
// (informational); the other bucket is unaffected.
func (g *Generator) BuildGrouped(s *session.Session, policy GroupPolicy, w io.Writer) GroupResult {
	var result GroupResult
	buffers := map[types.GroupLabel][][]byte{}

	for _, it := range s.View() {
		label := policy(it)
		sub := &result.B
		if label == types.GroupA {
			sub = &result.A
		}
		pdf, ok := g.renderItem(it, sub, w)
		if !ok {
			continue
		}
		buffers[label] = append(buffers[label], pdf)
	}

	if bufs := buffers[types.GroupA]; len(bufs) > 0 {
		result.A.PDF = assemble.Merge(bufs)
	}
	if bufs := buffers[types.GroupB]; len(bufs) > 0 {
		result.B.PDF = assemble.Merge(bufs)
	}

	fmt.Fprintf(w, "\ngroup A: %d item(s), group B: %d item(s)\n",
		result.A.Rendered, result.B.Rendered)
	return result
}

// renderItem runs one item through ItemPDF, updating counters and
// writing a progress line. ok is false when the item contributes
// nothing.
func (g *Generator) renderItem(it *types.Item, result *BuildResult, w io.Writer) (pdf []byte, ok bool) {
	if !it.Include {
		fmt.Fprintf(w, "skipped:  %s (excluded)\n", it.Name)
		result.Skipped++
		return nil, false
	}

	pdf = g.ItemPDF(it)
	if pdf == nil {
		fmt.Fprintf(w, "failed:   %s (could not render)\n", it.Name)
		result.Failed++
		return nil, false
	}

	fmt.Fprintf(w, "rendered: %s\n", it.Name)
	result.Rendered++
	return pdf, true
}
