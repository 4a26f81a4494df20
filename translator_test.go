package kanaize

import (
	"errors"
	"testing"
)

func buildTrie(t *testing.T, pairs ...string) *Trie {
	t.Helper()
	b := NewBuilder()
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := b.Put(pairs[i], pairs[i+1]); err != nil {
			t.Fatalf("Put(%q, %q) failed: %v", pairs[i], pairs[i+1], err)
		}
	}
	trie, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return trie
}

var vowels = []string{"a", "あ", "i", "い", "u", "う", "e", "え", "o", "お"}

func verifyTranslations(t *testing.T, tr *Translator, tests map[string]string) {
	t.Helper()
	for text, want := range tests {
		got, err := tr.Translate(text)
		if err != nil {
			t.Fatalf("translate(%q) failed: %v", text, err)
		}
		if got != want {
			t.Fatalf("translate(%q) -> %q, but it should be %q", text, got, want)
		}
	}
}

func TestTranslateSingleLetters(t *testing.T) {
	tr := NewTranslator(buildTrie(t, vowels...), DefaultConfig())
	verifyTranslations(t, tr, map[string]string{
		"aeiou": "あえいおう",
		"":      "",
	})
}

func TestTranslateInvalidInput(t *testing.T) {
	tr := NewTranslator(buildTrie(t, vowels...), DefaultConfig())
	tests := []struct {
		text    string
		start   int
		end     int
		snippet string
	}{
		{"aexx", 2, 2, "xx"},
		{"aeibadtext", 3, 3, "badt"},
	}
	for _, tt := range tests {
		out, err := tr.Translate(tt.text)
		if out != "" {
			t.Fatalf("translate(%q) returned partial output %q", tt.text, out)
		}
		var invalid *InvalidTokenError
		if !errors.As(err, &invalid) {
			t.Fatalf("translate(%q): expected InvalidTokenError, got %v", tt.text, err)
		}
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("translate(%q): error should match ErrInvalidToken", tt.text)
		}
		if invalid.Start != tt.start || invalid.End != tt.end || invalid.Snippet != tt.snippet {
			t.Fatalf("translate(%q): got start=%d end=%d snippet=%q", tt.text,
				invalid.Start, invalid.End, invalid.Snippet)
		}
	}
}

func TestInvalidTokenMessage(t *testing.T) {
	tr := NewTranslator(buildTrie(t, vowels...), DefaultConfig())
	_, err := tr.Translate("aeibadtext")
	want := `invalid token at start=3 end=3, input[start..end+4] = "badt"`
	if err == nil || err.Error() != want {
		t.Fatalf("expected %q, got %v", want, err)
	}
}

func TestInvalidTokenAfterDeadEnd(t *testing.T) {
	tr := NewTranslator(buildTrie(t, "a", "あ", "n", "ん", "nya", "にゃ"), DefaultConfig())
	_, err := tr.Translate("anyo")
	var invalid *InvalidTokenError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTokenError, got %v", err)
	}
	if invalid.Start != 1 || invalid.End != 3 || invalid.Snippet != "nyo" {
		t.Fatalf("got start=%d end=%d snippet=%q", invalid.Start, invalid.End, invalid.Snippet)
	}
}

func TestTranslateMixedLengths(t *testing.T) {
	tr := NewTranslator(buildTrie(t,
		"a", "あ", "i", "い", "n", "ん", "be", "べ", "da", "だ", "de", "で",
		"ka", "か", "ku", "く", "ma", "ま", "mi", "み", "na", "な", "no", "の",
		"ri", "り", "sa", "さ", "se", "せ", "su", "す", "ta", "た",
	), DefaultConfig())
	verifyTranslations(t, tr, map[string]string{
		"nandesuka": "なんですか",
		"tabemasu":  "たべます",
		"nomimasu":  "のみます",
		"kudasai":   "ください",
		"arimasen":  "ありません",
	})
}

func TestTranslateAmbiguity(t *testing.T) {
	trie := buildTrie(t, "ni", "に", "gi", "ぎ", "ri", "り", "zu", "ず", "zu", "づ", "shi", "し")
	config := DefaultConfig()
	verifyTranslations(t, NewTranslator(trie, config), map[string]string{
		"nigirizushi": "にぎりずし",
	})
	config.ShowAmbiguity = true
	verifyTranslations(t, NewTranslator(trie, config), map[string]string{
		"nigirizushi": "にぎり[ず|づ]し",
	})
}

func TestTranslateAmbiguityMinimal(t *testing.T) {
	trie := buildTrie(t, "k", "X", "k", "Y")
	verifyTranslations(t, NewTranslator(trie, DefaultConfig()), map[string]string{"k": "X"})
	config := DefaultConfig()
	config.ShowAmbiguity = true
	verifyTranslations(t, NewTranslator(trie, config), map[string]string{"k": "[X|Y]"})
}

func TestTranslateDisambiguator(t *testing.T) {
	trie := buildTrie(t, "pa", "ぱ", "n", "ん", "ya", "や", "nya", "にゃ")
	tr := NewTranslator(trie, DefaultConfig())
	verifyTranslations(t, tr, map[string]string{
		"pan'ya": "ぱんや",
		"panya":  "ぱにゃ",
		"'pa'":   "ぱ",
	})
	config := DefaultConfig()
	config.Disambiguator = '/'
	verifyTranslations(t, NewTranslator(trie, config), map[string]string{
		"pan/ya": "ぱんや",
	})
}

func TestTranslatePunctuation(t *testing.T) {
	trie := buildTrie(t, vowels...)
	verifyTranslations(t, NewTranslator(trie, DefaultConfig()), map[string]string{
		"a i, u.":  "あ い, う.",
		"e?o！":     "え?お！",
		"「ai」。":    "「あい」。",
		"a\ti":     "あ\tい",
		"   ":      "   ",
		"a...? e!": "あ...? え!",
	})
	config := DefaultConfig()
	config.Punctuation = "-"
	tr := NewTranslator(trie, config)
	verifyTranslations(t, tr, map[string]string{"a-i": "あ-い"})
	if _, err := tr.Translate("a i"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("blank is not punctuation in this configuration, expected invalid token, got %v", err)
	}
}

func TestTranslateDoubledConsonants(t *testing.T) {
	kb := NewKanaBuilder("っ", "")
	puts := []struct {
		seq, sym string
		flags    Flags
	}{
		{"cho", "ちょ", DoubleConsonant}, {"da", "だ", NoFlags}, {"i", "い", NoFlags},
		{"i", "い", NoFlags}, {"ki", "き", DoubleConsonant}, {"ku", "く", DoubleConsonant},
		{"kyo", "きょ", DoubleConsonant}, {"ma", "ま", NoFlags}, {"me", "め", NoFlags},
		{"n", "ん", NoFlags}, {"ne", "ね", NoFlags}, {"ni", "に", NoFlags},
		{"no", "の", NoFlags}, {"ra", "ら", NoFlags}, {"sa", "さ", DoubleConsonant},
		{"sha", "しゃ", DoubleConsonant}, {"shi", "し", DoubleConsonant}, {"su", "す", NoFlags},
		{"ta", "た", DoubleConsonant}, {"te", "て", DoubleConsonant}, {"to", "と", DoubleConsonant},
		{"ya", "や", NoFlags},
	}
	for _, p := range puts {
		if err := kb.PutVariants(p.seq, p.sym, p.flags); err != nil {
			t.Fatal(err)
		}
	}
	trie, err := kb.Build()
	if err != nil {
		t.Fatal(err)
	}
	verifyTranslations(t, NewTranslator(trie, DefaultConfig()), map[string]string{
		"chottomattekudasai":   "ちょっとまってください",
		"yakkyokuniittekimasu": "やっきょくにいってきます",
		"nennotame":            "ねんのため",
		"irasshaimashita":      "いらっしゃいました",
	})
}

func TestTranslateLongVowels(t *testing.T) {
	kb := NewKanaBuilder("ッ", "ー")
	puts := []struct {
		seq, sym string
		flags    Flags
	}{
		{"de", "デ", LongVowel}, {"fu", "フ", LongVowel}, {"i", "イ", LongVowel},
		{"ka", "カ", DoubleConsonant | LongVowel}, {"ke", "ケ", DoubleConsonant | LongVowel},
		{"ma", "マ", LongVowel}, {"na", "ナ", LongVowel},
		{"pa", "パ", DoubleConsonant | LongVowel}, {"ra", "ラ", LongVowel},
		{"re", "レ", LongVowel}, {"ri", "リ", LongVowel},
		{"sa", "サ", DoubleConsonant | LongVowel}, {"su", "ス", DoubleConsonant | LongVowel},
		{"to", "ト", DoubleConsonant | LongVowel}, {"za", "ザ", LongVowel}, {"n", "ン", NoFlags},
	}
	for _, p := range puts {
		if err := kb.PutVariants(p.seq, p.sym, p.flags); err != nil {
			t.Fatal(err)
		}
	}
	trie, err := kb.Build()
	if err != nil {
		t.Fatal(err)
	}
	verifyTranslations(t, NewTranslator(trie, DefaultConfig()), map[string]string{
		"karee":          "カレー",
		"dezainaa":       "デザイナー",
		"furiiransu":     "フリーランス",
		"suupaamaaketto": "スーパーマーケット",
		"sakkaa":         "サッカー",
	})
}

func TestBuilderBuildsIndependentSnapshots(t *testing.T) {
	b := NewBuilder()
	if err := b.Put("a", "あ"); err != nil {
		t.Fatal(err)
	}
	first, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if err = b.Put("i", "い"); err != nil {
		t.Fatal(err)
	}
	second, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if first.Lookup([]rune("i"), 0).Valid() {
		t.Fatalf("first snapshot must not see later mappings")
	}
	if !second.Lookup([]rune("i"), 0).Valid() || !second.Lookup([]rune("a"), 0).Valid() {
		t.Fatalf("second snapshot should contain all mappings")
	}
	if len(b.Mappings()) != 2 || b.Mappings()[1].Sequence != "i" {
		t.Fatalf("unexpected mappings %v", b.Mappings())
	}
}

func TestBuilderRejectsEmptySequence(t *testing.T) {
	b := NewBuilder()
	if err := b.Put("", "asdf"); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("rejected mapping was added")
	}
}
