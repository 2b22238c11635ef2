// Package site mounts the website's pages on a chi router.
//
// Pages are declared in a fixed table of route tags, parsed once at startup
// into a tree of [PageNode]s. Each node renders its compiled template through
// the view package, with the current year injected per request. The resume
// page serves a PDF from disk when one is present and falls back to its
// template otherwise.
package site
