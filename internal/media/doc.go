// Package media decodes picture files and renders the fixed-size
// thumbnails shown next to each queued picture.
//
// Thumbnails use a "contain" fit: the picture is scaled uniformly until it
// fits the box, centered, and letterboxed on a white background.
package media
