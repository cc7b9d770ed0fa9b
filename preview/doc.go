// Package preview draws layout results into PDF documents for inspection.
//
// A page shows the layout bounds, the glyphs at their computed positions
// and, for axes that overflow under the Scroll policy, a scrollbar track
// and thumb sized from the post-reservation overflow.
//
//	r, err := preview.New(src)
//	if err != nil {
//		return err
//	}
//	err = r.Render(w, req, res)
//
// Layout coordinates are pixels at 96 DPI; the PDF uses millimeters.
package preview
