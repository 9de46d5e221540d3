package dashboard

import (
	"strings"
	"testing"
)

const expectedTail = "&agg_m=count&agg_m_source=base&agg_t=count&cols=host%2Cservice&fromUser=true&messageDisplay=inline&refresh_mode=sliding&storage=hot&stream_sort=desc&viz=stream&live=true"

func TestBuildLinkFormat(t *testing.T) {
	got := BuildLink("disk%20full")
	want := "https://app.datadoghq.com/logs?query=disk%20full" + expectedTail
	if got != want {
		t.Fatalf("BuildLink =\n%s\nwant\n%s", got, want)
	}
}

func TestBuildLinkEmptyQuery(t *testing.T) {
	got := BuildLink("")
	if !strings.HasPrefix(got, DefaultBaseURL+"?query=&agg_m=count") {
		t.Fatalf("unexpected unfiltered link: %s", got)
	}
}

func TestBuilderCustomBase(t *testing.T) {
	b := Builder{BaseURL: "https://app.datadoghq.eu/logs/"}
	got := b.Build("x")
	if !strings.HasPrefix(got, "https://app.datadoghq.eu/logs?query=x&") {
		t.Fatalf("unexpected link: %s", got)
	}
}

func TestLinkQueryTokenIsEscaped(t *testing.T) {
	texts := []string{
		`logger.info("a b & c = d")`,
		`logger.info("100% done?")`,
		`logger.info(no literal)`,
		`LOG.warn("tabs\tand/slashes")`,
	}
	for _, text := range texts {
		link := Builder{}.LinkFor(text)
		idx := strings.Index(link, "query=")
		if idx < 0 {
			t.Fatalf("link without query: %s", link)
		}
		rest := link[idx+len("query="):]
		token := rest
		if end := strings.Index(rest, "&agg_m="); end >= 0 {
			token = rest[:end]
		}
		if strings.ContainsAny(token, " &=") {
			t.Fatalf("query token %q from %q has raw separators", token, text)
		}
		if !strings.HasSuffix(link, expectedTail) {
			t.Fatalf("link %s lost the fixed parameters", link)
		}
	}
}
