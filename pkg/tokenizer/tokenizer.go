// Package tokenizer turns raw prose into the lowercase word sequence the
// graph is built from. Anything that is not an ASCII letter is a separator,
// and line boundaries carry no meaning.
package tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dd0wney/cluso-textgraph/pkg/logging"
)

// maxLineBytes bounds a single scanned line. Prose files with no newlines
// at all still fit.
const maxLineBytes = 16 * 1024 * 1024

// Tokenize normalizes text and splits it into tokens.
func Tokenize(text string) []string {
	return appendTokens(nil, text)
}

// Normalize returns text with every non-letter byte folded into single
// spaces and letters lowercased. Leading and trailing spaces are trimmed.
func Normalize(text string) string {
	return strings.Join(Tokenize(text), " ")
}

// TokenizeReader reads r line by line and returns the concatenated tokens.
func TokenizeReader(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var tokens []string
	for scanner.Scan() {
		tokens = appendTokens(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return tokens, nil
}

// TokenizeFile opens path, tokenizes it and closes it before returning.
func TokenizeFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tokens, err := TokenizeReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}
	logging.Debug("tokenized file", logging.Path(path), logging.Int64("bytes", size), logging.Count(len(tokens)))
	return tokens, nil
}

func appendTokens(tokens []string, text string) []string {
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			word.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			word.WriteByte(c + ('a' - 'A'))
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// IsToken reports whether s is a non-empty run of ASCII lowercase letters.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
