package search

import (
	"net/url"
	"strings"

	"github.com/tavaresm/garimpo/internal/domain/dto"
)

// BuildQuery derives the canonical query string from a filter: its present,
// non-empty fields joined with single spaces, in the fixed order categoria,
// genero, cor, estilo. The canonical query is the cache and quota key; two
// filters with the same non-empty values always produce the same string.
//
// Returns ErrInvalidFilter when categoria is empty or whitespace.
func BuildQuery(f dto.SearchRequest) (string, error) {
	if strings.TrimSpace(f.Categoria) == "" {
		return "", ErrInvalidFilter
	}

	parts := make([]string, 0, 4)
	for _, v := range []string{f.Categoria, f.Genero, f.Cor, f.Estilo} {
		if s := strings.TrimSpace(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " "), nil
}

// EncodeQuery escapes a canonical query for use in a URL query component.
// Adapters that build request URLs by concatenation use this; adapters built
// on url.Values get the same escaping from the standard library.
func EncodeQuery(q string) string {
	return url.QueryEscape(q)
}
