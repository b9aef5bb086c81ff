// Package highlight locates planted payloads inside modified text.
//
// A highlight.Func scans one document and returns the payload substrings
// it carries, in a stable order. The finders mirror the injection
// sources: Dates matches the date generator's YYYY-MM-DD shape, FromList
// and FromFile match an item pool, HTMLTags matches the tags of an HTML
// tag pool. Renderers colorize whatever the finder returns; see package
// render.
//
// Finders report presence, not positions: FromList returns each pool
// pattern at most once per call, Dates returns every occurrence.
package highlight
