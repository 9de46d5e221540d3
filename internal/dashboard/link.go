// Package dashboard builds Datadog log-search links for logged messages.
package dashboard

import "strings"

// DefaultBaseURL is the log explorer the links open.
const DefaultBaseURL = "https://app.datadoghq.com/logs"

// streamParams is the fixed live-stream view appended after the query.
const streamParams = "&agg_m=count&agg_m_source=base&agg_t=count&cols=host%2Cservice&fromUser=true&messageDisplay=inline&refresh_mode=sliding&storage=hot&stream_sort=desc&viz=stream&live=true"

// Builder renders links against a dashboard base path.
type Builder struct {
	// BaseURL defaults to DefaultBaseURL when empty.
	BaseURL string
}

// Build returns the dashboard link filtered by encodedQuery. An empty
// query yields the unfiltered live view.
func (b Builder) Build(encodedQuery string) string {
	base := strings.TrimRight(b.BaseURL, "?/")
	if base == "" {
		base = DefaultBaseURL
	}
	var sb strings.Builder
	sb.Grow(len(base) + len("?query=") + len(encodedQuery) + len(streamParams))
	sb.WriteString(base)
	sb.WriteString("?query=")
	sb.WriteString(encodedQuery)
	sb.WriteString(streamParams)
	return sb.String()
}

// BuildLink builds a link against DefaultBaseURL.
func BuildLink(encodedQuery string) string {
	return Builder{}.Build(encodedQuery)
}

// LinkFor extracts the first literal of text and builds its link.
func (b Builder) LinkFor(text string) string {
	return b.Build(ExtractLiteral(text))
}
