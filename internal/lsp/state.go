package lsp

import (
	"strings"

	"loglens/internal/hint"
	"loglens/internal/syntax"
)

type document struct {
	text       string
	version    int
	languageID string
}

// supported reports whether the document is in a language we annotate.
func (d *document) supported(uri string) bool {
	return syntax.SupportedLanguage(d.languageID) || strings.HasSuffix(strings.ToLower(uri), ".java")
}

func (s *Server) currentEngine() (*hint.Engine, hint.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine, s.settings
}

func (s *Server) currentTrace() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.traceLSP
}

func (s *Server) documentSnapshot(uri string) (document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return document{}, false
	}
	return *doc, true
}

func (s *Server) storeActivations(uri string, table []func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, open := s.docs[uri]; !open {
		return
	}
	s.activations[uri] = table
}

func (s *Server) activation(uri string, index int) (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.activations[uri]
	if index < 0 || index >= len(table) || table[index] == nil {
		return nil, false
	}
	return table[index], true
}
