// Package analysis implements the operations layered on parsed subtitle
// entries: keyword search with contextual windows, fixed-duration
// segmentation for piecewise summarization, and gap-based chapter detection.
//
// Every operation is a pure function of its input text and options, safe to
// call concurrently. The rendered search report is Chinese, matching the
// audience the tool ships to.
package analysis
