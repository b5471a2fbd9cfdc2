package parser

import (
	"github.com/Yurihaia/ycf/internal/token"
)

// MapPath — ключ карты с хвостом точечного пути: `a.b.c` даёт
// Key="a", Path=["b","c"]. Путь значим только при смежности: '.'
// после пробела или комментария путь не продолжает.
type MapPath struct {
	Key  string
	Path []string
}

// ParsePath consumes a map key and any adjacent dotted segments.
func (p *Parser) ParsePath() (MapPath, *ParseError) {
	st := p.NextToken()
	if st.Tok.Kind != token.Ident {
		return MapPath{}, newError(st, ExpectedIdent)
	}

	mp := MapPath{Key: p.Src(st.Tok)}
	for p.PeekNoSkip().Tok.Kind == token.Dot {
		p.NextNoSkip()
		seg := p.NextNoSkip()
		if seg.Tok.Kind != token.Ident {
			return MapPath{}, newError(seg, ExpectedIdent)
		}
		mp.Path = append(mp.Path, p.Src(seg.Tok))
	}
	return mp, nil
}

// TryParsePath consumes a dotted key path if an identifier is next.
func (p *Parser) TryParsePath() (MapPath, bool, *ParseError) {
	if p.PeekToken().Tok.Kind != token.Ident {
		return MapPath{}, false, nil
	}
	mp, err := p.ParsePath()
	if err != nil {
		return MapPath{}, false, err
	}
	return mp, true, nil
}
