package parser

import (
	"fmt"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"
)

// HeadingIDs assigns anchor ids to headings, deduplicating repeats so
// every anchor in a compiled document stays addressable.
type HeadingIDs struct {
	Values map[string]bool
}

func (s *HeadingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	value = util.TrimLeftSpace(value)
	value = util.TrimRightSpace(value)
	result := []byte{}
	for i := 0; i < len(value); {
		v := value[i]
		l := util.UTF8Len(v)
		i += int(l)
		if l != 1 {
			continue
		}
		if util.IsAlphaNumeric(v) {
			if 'A' <= v && v <= 'Z' {
				v += 'a' - 'A'
			}
			result = append(result, v)
		} else if util.IsSpace(v) || v == '-' || v == '_' {
			result = append(result, '-')
		}
	}
	if len(result) == 0 {
		if kind == ast.KindHeading {
			result = []byte("heading")
		} else {
			result = []byte("id")
		}
	}
	if _, ok := s.Values[util.BytesToReadOnlyString(result)]; !ok {
		s.Values[util.BytesToReadOnlyString(result)] = true
		return result
	}
	for i := 1; ; i++ {
		newResult := fmt.Sprintf("%s-%d", result, i)
		if _, ok := s.Values[newResult]; !ok {
			s.Values[newResult] = true
			return []byte(newResult)
		}
	}
}

func (s *HeadingIDs) Put(value []byte) {
	s.Values[util.BytesToReadOnlyString(value)] = true
}
