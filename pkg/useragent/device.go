package useragent

import (
	"net/http"
	"strings"
)

type match struct {
	needle string
	skip   string
	label  string
}

// order matters: Edge and Chrome both claim Safari
var browsers = []match{
	{"Edg/", "", "Edge"},
	{"Firefox/", "", "Firefox"},
	{"Chrome/", "", "Chrome"},
	{"Safari/", "Chrome", "Safari"},
}

var systems = []match{
	{"Android", "", "Android"},
	{"iPhone", "", "iOS"},
	{"iPad", "", "iOS"},
	{"Windows", "", "Windows"},
	{"Mac OS X", "", "macOS"},
	{"Linux", "", "Linux"},
}

// ClientLabel turns the User-Agent of r into a short "Browser on OS"
// label for the move log.
func ClientLabel(r *http.Request) string {
	ua := r.Header.Get("User-Agent")
	if ua == "" {
		return "Unknown Client"
	}
	return lookup(browsers, ua, "Unknown Browser") + " on " + lookup(systems, ua, "Unknown OS")
}

func lookup(table []match, ua, fallback string) string {
	for _, m := range table {
		if strings.Contains(ua, m.needle) && (m.skip == "" || !strings.Contains(ua, m.skip)) {
			return m.label
		}
	}
	return fallback
}
