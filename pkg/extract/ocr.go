// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"context"
	"image"
)

// Rasterizer renders the pages of a PDF to images at the given DPI, in page
// order. Implementations may shell out to a renderer or call a native
// library; the extractor does not care which.
type Rasterizer interface {
	RenderPages(ctx context.Context, path string, dpi int) ([]image.Image, error)
}

// OCREngine recognizes text from one rasterized page image at a time.
// Implementations must be safe for concurrent use if the extractor is shared
// across documents.
type OCREngine interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}
