package parser

import (
	"bytes"

	"github.com/kovetskiy/jax/config"
	"github.com/kovetskiy/jax/types"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

type MathInline struct {
	ast.BaseInline

	Equation []byte
	Pair     types.DelimiterPair
}

func (n *MathInline) Inline() {}

func (n *MathInline) IsBlank(source []byte) bool {
	return util.IsBlank(n.Equation)
}

func (n *MathInline) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

var KindMathInline = ast.NewNodeKind("MathInline")

func (n *MathInline) Kind() ast.NodeKind {
	return KindMathInline
}

type MathBlock struct {
	ast.BaseInline

	Equation []byte
	Pair     types.DelimiterPair
}

func (n *MathBlock) IsBlank(source []byte) bool {
	return util.IsBlank(n.Equation)
}

func (n *MathBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

var KindMathBlock = ast.NewNodeKind("MathBlock")

func (n *MathBlock) Kind() ast.NodeKind {
	return KindMathBlock
}

// MathParser matches the configured delimiter pairs in inline text.
// Display pairs are tried before inline pairs, so "$$" never reads as
// two "$" spans.
type MathParser struct {
	config  *config.Configuration
	trigger []byte
}

func NewMathParser(cfg *config.Configuration) parser.InlineParser {
	return &MathParser{
		config:  cfg,
		trigger: triggerBytes(cfg),
	}
}

func triggerBytes(cfg *config.Configuration) []byte {
	var trigger []byte
	for _, mode := range []types.Mode{types.ModeDisplay, types.ModeInline} {
		for _, pair := range cfg.Delimiters(mode) {
			// goldmark consumes a backslash as an escape before it
			// consults triggers, so markers opening with one never fire
			if pair.Open == "" || pair.Open[0] == '\\' {
				continue
			}
			if bytes.IndexByte(trigger, pair.Open[0]) < 0 {
				trigger = append(trigger, pair.Open[0])
			}
		}
	}
	return trigger
}

func (s *MathParser) Trigger() []byte {
	return s.trigger
}

func (s *MathParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if line == nil {
		return nil
	}

	if match, ok := s.config.Match(string(line), 0, types.ModeDisplay); ok {
		if node := s.parseDisplay(block, match.Pair); node != nil {
			return node
		}
		// an unclosed display opener may still start an inline span
	}

	if match, ok := s.config.Match(string(line), 0, types.ModeInline); ok {
		return s.parseInline(block, match.Pair)
	}

	return nil
}

// parseDisplay scans for the close marker, following the span onto the
// next lines when needed. The reader is restored when no close marker
// turns up.
func (s *MathParser) parseDisplay(block text.Reader, pair types.DelimiterPair) ast.Node {
	savedLine, savedSegment := block.Position()

	var (
		source  = block.Source()
		closer  = []byte(pair.Close)
		opening = true
	)

	for lines := 0; lines < 20; lines++ {
		line, segment := block.PeekLine()
		if line == nil {
			break
		}

		offset := 0
		if opening {
			offset = len(pair.Open)
			opening = false
		}

		if index := bytes.Index(line[offset:], closer); index > -1 {
			start := savedSegment.Start + len(pair.Open)
			end := segment.Start + offset + index
			if start >= end {
				break
			}

			block.Advance(offset + index + len(closer))
			return &MathBlock{
				Equation: source[start:end],
				Pair:     pair,
			}
		}

		block.AdvanceLine()
	}

	block.SetPosition(savedLine, savedSegment)
	return nil
}

// parseInline scans the rest of the line for the close marker, skipping
// backslash-escaped ones when the marker itself does not start with a
// backslash.
func (s *MathParser) parseInline(block text.Reader, pair types.DelimiterPair) ast.Node {
	line, _ := block.PeekLine()
	if line == nil {
		return nil
	}

	closer := []byte(pair.Close)
	escaping := len(closer) > 0 && closer[0] != '\\'

	for i := len(pair.Open); i < len(line); i++ {
		if bytes.HasPrefix(line[i:], closer) {
			if i == len(pair.Open) {
				return nil
			}

			node := &MathInline{
				Equation: line[len(pair.Open):i],
				Pair:     pair,
			}
			block.Advance(i + len(closer))
			return node
		}

		if escaping && line[i] == '\\' {
			i++
		}
	}

	return nil
}
