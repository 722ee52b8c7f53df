package ifc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/matzehuels/ifcgraph/pkg/refgraph"
)

var (
	// recordRE matches a single-line record: #<digits>= <TYPE>(<args>);
	// The argument capture is lazy and stops at the first ");".
	recordRE = regexp.MustCompile(`^#(\d+)=\s*(\w+)\((.*?)\);`)

	// refRE matches a tag reference inside record arguments.
	refRE = regexp.MustCompile(`#\d+`)
)

// Parse reads IFC text from r and builds its reference graph.
//
// Input is decoded as UTF-8; a leading byte order mark and any byte that is
// not part of a valid sequence are dropped, so decoding never fails. Lines
// end at LF, CR or CRLF. Each line is trimmed and matched against the single-line record pattern. Lines that do
// not match (header, footer, comments, continuation lines of multi-line
// records) are skipped. A tag that appears twice keeps the entity type of
// its last record; the edges of both records are kept.
//
// Parse returns an error only if reading from r fails.
func Parse(r io.Reader) (*refgraph.Graph, error) {
	g := refgraph.New()
	dec := transform.Chain(dropInvalid{}, unicode.UTF8BOM.NewDecoder())
	br := bufio.NewReader(transform.NewReader(r, dec))

	for {
		line, err := br.ReadString('\n')
		for _, l := range strings.Split(line, "\r") {
			if l != "" {
				parseLine(g, l)
			}
		}
		if errors.Is(err, io.EOF) {
			return g, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
	}
}

// ParseFile opens the file at path and parses it with [Parse].
// The file is closed before ParseFile returns.
func ParseFile(path string) (*refgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

func parseLine(g *refgraph.Graph, line string) {
	m := recordRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return
	}

	tag := "#" + m[1]
	// tag is never empty and is set before its edges, so neither call fails.
	_ = g.SetNode(refgraph.Node{Tag: tag, Entity: m[2]})
	for _, ref := range refRE.FindAllString(m[3], -1) {
		_ = g.AddEdge(refgraph.Edge{From: tag, To: ref})
	}
}

// dropInvalid removes bytes that do not belong to a valid UTF-8 sequence.
type dropInvalid struct{ transform.NopResetter }

func (dropInvalid) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}
