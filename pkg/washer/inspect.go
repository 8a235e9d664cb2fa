package washer

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Report is a read-only census of a document, meant as a policy
// authoring aid: it shows which tags and attributes a policy would have
// to allow for the document to survive a wash unchanged.
type Report struct {
	// Elements maps each tag name to its occurrence count.
	Elements map[string]int

	// Attributes maps each tag name to the sorted set of attribute
	// names seen on it anywhere in the document.
	Attributes map[string][]string

	// ImagesMissingAlt counts <img> elements without an alt attribute.
	ImagesMissingAlt int

	// BlockedTags lists, sorted, the always-removed tags present in
	// the document (script, style, iframe, ...).
	BlockedTags []string
}

// Inspect parses input and reports its tag and attribute usage. It
// never modifies markup. The html/head/body wrapper elements the parser
// synthesizes are not counted.
func Inspect(input string) (*Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return nil, err
	}

	report := &Report{
		Elements:   make(map[string]int),
		Attributes: make(map[string][]string),
	}
	attrSets := make(map[string]map[string]bool)
	blocked := make(map[string]bool)

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			tag := strings.ToLower(n.Data)
			if tag == "html" || tag == "head" || tag == "body" {
				continue
			}
			report.Elements[tag]++
			if blockedTags[tag] {
				blocked[tag] = true
			}
			for _, a := range n.Attr {
				if attrSets[tag] == nil {
					attrSets[tag] = make(map[string]bool)
				}
				attrSets[tag][strings.ToLower(a.Key)] = true
			}
		}
	})

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		if _, ok := sel.Attr("alt"); !ok {
			report.ImagesMissingAlt++
		}
	})

	for tag, set := range attrSets {
		names := make([]string, 0, len(set))
		for name := range set {
			names = append(names, name)
		}
		sort.Strings(names)
		report.Attributes[tag] = names
	}
	for tag := range blocked {
		report.BlockedTags = append(report.BlockedTags, tag)
	}
	sort.Strings(report.BlockedTags)

	return report, nil
}
