package ledbadge

import "strings"

// TokenKind discriminates the units produced by Tokenize.
type TokenKind int

const (
	// TokenChar is a literal character rendered through the glyph table.
	TokenChar TokenKind = iota
	// TokenIcon references a built-in icon by name.
	TokenIcon
	// TokenImage references an image file to load as a bitmap.
	TokenImage
)

// Token is one parsed unit of a message string.
type Token struct {
	Kind TokenKind
	Char rune   // TokenChar
	Name string // TokenIcon
	Path string // TokenImage
}

// Tokenize scans a message left to right into tokens. A ":name:" span
// becomes an icon token when name is a built-in icon (checked first, so
// a registered icon shadows a same-named file), or an image token when
// name looks like a file path. Any other ':' is a literal character,
// including one with no closing ':'. Tokenize never fails and every
// input character belongs to exactly one token.
func Tokenize(msg string) []Token {
	runes := []rune(msg)
	tokens := make([]Token, 0, len(runes))
	for i := 0; i < len(runes); {
		if runes[i] == ':' {
			if end := nextColon(runes, i+1); end >= 0 {
				name := string(runes[i+1 : end])
				if _, ok := LookupIcon(name); ok {
					tokens = append(tokens, Token{Kind: TokenIcon, Name: name})
					i = end + 1
					continue
				}
				if looksLikePath(name) {
					tokens = append(tokens, Token{Kind: TokenImage, Path: name})
					i = end + 1
					continue
				}
				// Not a recognized span: the opening ':' stays literal
				// and the candidate closing ':' is not consumed.
			}
		}
		tokens = append(tokens, Token{Kind: TokenChar, Char: runes[i]})
		i++
	}
	return tokens
}

func nextColon(runes []rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == ':' {
			return i
		}
	}
	return -1
}

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp"}

// looksLikePath reports whether a ":...:" span names an image file
// rather than literal text: it contains a path separator or ends in a
// known image extension.
func looksLikePath(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsAny(s, `/\`) {
		return true
	}
	lower := strings.ToLower(s)
	for _, ext := range imageExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
