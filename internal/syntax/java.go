package syntax

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

var (
	// ErrFileTooLarge is returned for content above the parser limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidContent is returned for content that is not valid UTF-8.
	ErrInvalidContent = errors.New("content is not valid UTF-8")
	// ErrUnsupportedLanguage is returned by ForPath for unknown extensions.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// DefaultMaxFileSize bounds the input accepted by parsers.
const DefaultMaxFileSize = 10 * 1024 * 1024

// Parser produces a tree for one language.
type Parser interface {
	Language() string
	Extensions() []string
	Parse(ctx context.Context, content []byte) (*Node, error)
}

// JavaParser parses Java with tree-sitter.
// It is safe for concurrent use; each call gets its own tree-sitter parser.
type JavaParser struct {
	MaxFileSize int
}

// NewJavaParser returns a JavaParser with the default size limit.
func NewJavaParser() *JavaParser {
	return &JavaParser{MaxFileSize: DefaultMaxFileSize}
}

// Language returns "java".
func (p *JavaParser) Language() string { return "java" }

// Extensions returns the file extensions this parser handles.
func (p *JavaParser) Extensions() []string { return []string{".java"} }

// Parse builds the full concrete tree, anonymous tokens included, so that
// every call node ends with its argument list.
func (p *JavaParser) Parse(ctx context.Context, content []byte) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("java parse canceled before start: %w", err)
	}
	limit := p.MaxFileSize
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}
	if len(content) > limit {
		return nil, ErrFileTooLarge
	}
	if !utf8.Valid(content) {
		return nil, ErrInvalidContent
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	src := string(content)
	return convert(tree.RootNode(), src), nil
}

func convert(n *sitter.Node, src string) *Node {
	out := &Node{
		Kind:  n.Type(),
		Start: int(n.StartByte()),
		End:   int(n.EndByte()),
		src:   src,
	}
	count := int(n.ChildCount())
	if count == 0 {
		return out
	}
	out.Kids = make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		out.Kids = append(out.Kids, convert(child, src))
	}
	return out
}

var parsers = []Parser{NewJavaParser()}

// ForPath picks a parser by file extension.
func ForPath(path string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, p := range parsers {
		for _, e := range p.Extensions() {
			if e == ext {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, path)
}

// Supported reports whether path has a parser.
func Supported(path string) bool {
	_, err := ForPath(path)
	return err == nil
}

// SupportedLanguage reports whether an LSP languageId has a parser.
func SupportedLanguage(languageID string) bool {
	for _, p := range parsers {
		if strings.EqualFold(p.Language(), languageID) {
			return true
		}
	}
	return false
}
