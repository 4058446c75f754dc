package slug

import (
	"strings"
	"unicode"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength    int
	separator    string
	replacements []string
}

// MaxLength caps the slug length in runes. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Replace substitutes old with new before slugification,
// for example Replace("&", "and").
func Replace(old, new string) Option {
	return func(c *config) {
		c.replacements = append(c.replacements, old, new)
	}
}

// Make turns s into a lowercase ASCII slug. Letters with common Latin
// diacritics are folded to ASCII (æ becomes "ae"), every other run of
// non-alphanumeric characters becomes a single separator, and leading or
// trailing separators are dropped. The result may be empty.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-"}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(cfg.replacements) > 0 {
		s = strings.NewReplacer(cfg.replacements...).Replace(s)
	}

	var b strings.Builder
	b.Grow(len(s))

	sepLen := len([]rune(cfg.separator))
	pendingSep := false
	count := 0

	for _, r := range s {
		r = unicode.ToLower(r)
		word := string(r)
		if folded, ok := foldTable[r]; ok {
			word = folded
		} else if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
			pendingSep = count > 0
			continue
		}

		need := len(word)
		if pendingSep {
			need += sepLen
		}
		if cfg.maxLength > 0 && count+need > cfg.maxLength {
			break
		}
		if pendingSep {
			b.WriteString(cfg.separator)
			pendingSep = false
		}
		b.WriteString(word)
		count += need
	}

	return b.String()
}

// foldTable maps lowercase Latin letters with diacritics to ASCII.
// Ligatures expand to two letters.
var foldTable = buildFoldTable(map[string]string{
	"a":  "àáâãäåāăą",
	"c":  "çćč",
	"d":  "đď",
	"e":  "èéêëēėęě",
	"i":  "ìíîïīį",
	"l":  "ł",
	"n":  "ñńň",
	"o":  "òóôõöøō",
	"r":  "ř",
	"s":  "śšș",
	"t":  "ťț",
	"u":  "ùúûüūůų",
	"y":  "ýÿ",
	"z":  "źžż",
	"ae": "æ",
	"oe": "œ",
	"ss": "ß",
})

func buildFoldTable(groups map[string]string) map[rune]string {
	table := make(map[rune]string)
	for ascii, letters := range groups {
		for _, r := range letters {
			table[r] = ascii
		}
	}
	return table
}
