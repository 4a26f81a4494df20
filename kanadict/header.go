package kanadict

import (
	"bufio"
	"io"
	"strings"
)

// Header holds the directives of a dictionary file.
//
//	\name{hiragana}
//	\sokuon{っ}
//	\choonpu{ー}
//
// Directives may appear anywhere in a file; later ones win. Unknown
// directives are ignored.
type Header struct {
	Name    string
	Sokuon  string
	Choonpu string
}

// ReadHeader scans reader for header directives.
func ReadHeader(reader io.Reader) (Header, error) {
	var h Header
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "\\") {
			continue
		}
		name, arg, ok := parseDirective(line[1:])
		if !ok {
			continue
		}
		switch name {
		case "name":
			h.Name = arg
		case "sokuon":
			h.Sokuon = arg
		case "choonpu":
			h.Choonpu = arg
		}
	}
	return h, scanner.Err()
}

// parseDirective splits "name{arg}" into its parts.
func parseDirective(s string) (name, arg string, ok bool) {
	open := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if open <= 0 || end < open {
		return "", "", false
	}
	return s[:open], strings.TrimSpace(s[open+1 : end]), true
}
