package filekind

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

var matchLexer = lexers.Match

// Describe returns a short human-readable kind of a file, e.g. "Go" or "PDF file".
// Languages known to the chroma lexer registry are reported by their name.
func Describe(name string) string {
	if lexer := matchLexer(name); lexer != nil {
		if config := lexer.Config(); config != nil && config.Name != "" {
			return config.Name
		}
	}
	return describeByExt(name)
}

func describeByExt(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" || ext == name[1:] {
		return "File"
	}
	return strings.ToUpper(ext) + " file"
}
