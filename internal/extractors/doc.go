// Package extractors provides implementations of the PageTextProvider
// interface for various document formats. Each provider knows how to
// pull per-page plain text out of a specific file type.
//
// Providers are registered with the Registry at startup and selected
// by file extension.
package extractors
