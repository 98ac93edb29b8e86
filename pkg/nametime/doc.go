// Package nametime parses capture timestamps embedded in media filenames.
//
// Two camera naming conventions are recognized, in priority order:
// Pixel-style PXL_YYYYMMDD_HHMMSSmmm tokens and lv_0_YYYYMMDDHHMMSS tokens.
// Both encode the capture moment in UTC.
package nametime
