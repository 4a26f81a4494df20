package kanaize

import (
	"errors"
	"fmt"
)

// ErrConfiguration is wrapped by every error raised while a dictionary is
// being set up: empty sequences, inserts into a frozen trie, variant flags
// without the marker they need.
var ErrConfiguration = errors.New("kanaize: configuration error")

// ErrInvalidToken is the target of errors.Is for *InvalidTokenError.
var ErrInvalidToken = errors.New("kanaize: invalid token")

// snippetTail is the number of runes shown after the end of an invalid token.
const snippetTail = 4

// InvalidTokenError reports input which does not match any registered
// sequence. Start and End are rune indices into the translated text; End is
// where the failed lookup stopped. Snippet holds the input from Start up to
// four runes past End.
type InvalidTokenError struct {
	Start   int
	End     int
	Snippet string
}

func newInvalidTokenError(text []rune, start, end int) *InvalidTokenError {
	to := min(end+snippetTail, len(text))
	return &InvalidTokenError{
		Start:   start,
		End:     end,
		Snippet: string(text[start:to]),
	}
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token at start=%d end=%d, input[start..end+4] = %q",
		e.Start, e.End, e.Snippet)
}

func (e *InvalidTokenError) Unwrap() error {
	return ErrInvalidToken
}
