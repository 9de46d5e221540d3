package lsp

import (
	"context"
	"encoding/json"

	"loglens/internal/hint"
	"loglens/internal/source"
	"loglens/internal/syntax"
)

func (s *Server) handleInlayHint(msg *rpcMessage) error {
	var params inlayHintParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	uri := canonicalURI(params.TextDocument.URI)
	doc, ok := s.documentSnapshot(uri)
	if !ok || !doc.supported(uri) {
		if s.currentTrace() {
			s.logf("inlayHint: uri=%s open=%v hints=0", uri, ok)
		}
		return s.sendResponse(msg.ID, []inlayHint{})
	}
	engine, settings := s.currentEngine()
	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()

	hints, table, err := buildInlayHints(ctx, engine, settings, uri, doc.text, params.Range)
	if err != nil {
		s.logf("inlayHint: uri=%s: %v", uri, err)
		return s.sendResponse(msg.ID, []inlayHint{})
	}
	s.storeActivations(uri, table)
	if s.currentTrace() {
		s.logf("inlayHint: uri=%s version=%d hints=%d annotations=%d", uri, doc.version, len(hints), len(table))
	}
	return s.sendResponse(msg.ID, hints)
}

// buildInlayHints scans text and returns the hints inside rng together
// with the activation table for the whole document. A nil rng covers the
// whole document. Hint command arguments index into the table.
func buildInlayHints(ctx context.Context, engine *hint.Engine, settings hint.Settings, uri, text string, rng *lspRange) ([]inlayHint, []func(), error) {
	hints := make([]inlayHint, 0)
	if engine == nil || !settings.WithStringInterpolationHint {
		return hints, nil, nil
	}
	root, err := syntax.NewJavaParser().Parse(ctx, []byte(text))
	if err != nil {
		return hints, nil, err
	}
	fileSet := source.NewFileSet()
	file := fileSet.Get(fileSet.AddVirtual(uriToPath(uri), []byte(text)))

	startOff, endOff := uint32(0), safeUint32(len(text))
	if rng != nil {
		startOff = offsetForPositionInFile(file, rng.Start)
		endOff = max(offsetForPositionInFile(file, rng.End), startOff)
	}

	var table []func()
	engine.Scan(root, settings, hint.SinkFunc(func(offset int, d hint.Descriptor) {
		index := len(table)
		table = append(table, d.OnActivate)
		off := safeUint32(offset)
		if off < startOff || off > endOff {
			return
		}
		hints = append(hints, inlayHint{
			Position: positionForOffsetInFile(file, off),
			Label: []inlayHintLabelPart{{
				Value:   d.Label,
				Tooltip: d.Link,
				Command: &command{
					Title:     d.Label,
					Command:   OpenDashboardCommand,
					Arguments: []any{uri, index},
				},
			}},
			PaddingLeft: d.Padding != "",
		})
	}))
	return hints, table, nil
}

func (s *Server) handleExecuteCommand(msg *rpcMessage) error {
	var params executeCommandParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	if params.Command != OpenDashboardCommand {
		return s.sendError(msg.ID, codeInvalidParams, "unknown command "+params.Command)
	}
	if len(params.Arguments) != 2 {
		return s.sendError(msg.ID, codeInvalidParams, "expected [uri, index] arguments")
	}
	var uri string
	var index int
	if err := json.Unmarshal(params.Arguments[0], &uri); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid uri argument")
	}
	if err := json.Unmarshal(params.Arguments[1], &index); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid index argument")
	}
	activate, ok := s.activation(canonicalURI(uri), index)
	if !ok {
		return s.sendError(msg.ID, codeInvalidParams, "annotation is no longer available")
	}
	go activate()
	return s.sendResponse(msg.ID, nil)
}
