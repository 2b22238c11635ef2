package site

import "github.com/jackielii/folio/internal/config"

// pageEntry declares a page: the template it renders, its route tag and an
// optional attachment served instead of the template when the file exists.
type pageEntry struct {
	name       string
	tag        string
	attachment string
}

func sitePages(cfg config.Site) []pageEntry {
	return []pageEntry{
		{name: "index", tag: "GET / Home"},
		{name: "projects", tag: "GET /projects Projects"},
		{name: "about", tag: "GET /about About"},
		{name: "resume", tag: "GET /resume Resume", attachment: cfg.ResumePath},
		{name: "contact", tag: "GET /contact Contact"},
	}
}
