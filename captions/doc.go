// Package captions formats raw caption segments into paragraph text and
// provides the extraction service tying URL parsing, transcript fetching,
// and formatting together.
package captions
