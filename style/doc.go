// Package style reads text box styles from CSS-like declarations.
//
//	props, err := style.Decode("text-align: center; overflow: hidden scroll; scrollbar-width: 6px")
//	if err != nil {
//		return err
//	}
//	l := textbox.New(props.Options()...)
//	res, err := l.Layout(textbox.Request{Style: props.Style, FontSize: props.FontSize, ...})
//
// Supported properties: text-align, vertical-align (alias align-items),
// line-height, font-size, overflow, overflow-x, overflow-y,
// scrollbar-width, scrollbar-padding and tab-size. Lengths are px unless
// suffixed with pt.
package style
