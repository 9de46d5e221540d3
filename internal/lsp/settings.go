package lsp

import (
	"encoding/json"

	"loglens/internal/hint"
)

func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return nil
	}
	s.applySettings(params.Settings)
	return nil
}

// applySettings merges client settings. Absent keys keep their values;
// an empty keyword list restores the defaults.
func (s *Server) applySettings(raw json.RawMessage) {
	if len(raw) == 0 {
		return
	}
	var settings lspSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logf("ignoring malformed settings: %v", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if v := settings.Loglens.InlayHints.WithStringInterpolationHint; v != nil {
		s.settings.WithStringInterpolationHint = *v
	}
	if v := settings.Loglens.LSP.Trace; v != nil {
		s.traceLSP = *v
	}
	if settings.Loglens.Keywords != nil {
		s.engineOpts.Keywords = append([]string(nil), settings.Loglens.Keywords...)
		s.engine = hint.New(s.engineOpts)
	}
}
