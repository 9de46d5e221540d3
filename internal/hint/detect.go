package hint

import "strings"

// DefaultKeywords is the call-prefix table used when none is configured.
var DefaultKeywords = []string{
	"logger.info(",
	"LOGGER.debug(",
	"LOGGER.error(",
	"LOG.debug(",
	"logger.debug(",
	"LOGGER.info(",
	"LOG.warn(",
	"LOG.info(",
	"logger.error(",
}

// Detector classifies nodes as logging-call candidates by text alone.
type Detector struct {
	keywords []string
}

// NewDetector returns a detector for the given keywords. Empty keywords
// are dropped; a nil or empty table falls back to DefaultKeywords.
func NewDetector(keywords []string) Detector {
	table := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw != "" {
			table = append(table, kw)
		}
	}
	if len(table) == 0 {
		table = append(table, DefaultKeywords...)
	}
	return Detector{keywords: table}
}

// Keywords returns a copy of the active table.
func (d Detector) Keywords() []string {
	return append([]string(nil), d.keywords...)
}

// IsCandidate reports whether the node text contains a keyword and ends
// with a closing parenthesis.
func (d Detector) IsCandidate(node Node) bool {
	if node == nil {
		return false
	}
	text := node.Text()
	if text == "" || !strings.HasSuffix(text, ")") {
		return false
	}
	for _, kw := range d.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Detect wraps IsCandidate into a Candidate.
func (d Detector) Detect(node Node) Candidate {
	return Candidate{Node: node, Accepted: d.IsCandidate(node)}
}
