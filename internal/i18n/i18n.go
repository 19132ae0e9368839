// Package i18n holds the Arabic/English string table and the current
// language selection.
package i18n

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// Lang is a supported UI language.
type Lang string

const (
	Arabic  Lang = "ar"
	English Lang = "en"
)

// Default is the language the client starts in.
const Default = Arabic

// Direction is the text direction for a language.
type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

var matcher = language.NewMatcher([]language.Tag{language.Arabic, language.English})

// ParseLang accepts BCP 47 tags ("ar", "ar-SA", "en-US") and maps them onto
// a supported language.
func ParseLang(s string) (Lang, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	if idx == 0 {
		return Arabic, nil
	}
	return English, nil
}

// Direction returns rtl for Arabic and ltr otherwise.
func (l Lang) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

// Other returns the language a toggle switches to.
func (l Lang) Other() Lang {
	if l == Arabic {
		return English
	}
	return Arabic
}

// Translate looks up a key for a language. Unknown keys render as "?".
func Translate(l Lang, k Key) string {
	if k < 0 || k >= keyCount {
		return "?"
	}
	if l == Arabic {
		return table[k].ar
	}
	return table[k].en
}

// Store holds the current language and notifies listeners on change.
type Store struct {
	mu        sync.RWMutex
	lang      Lang
	listeners []func(Lang)
}

// NewStore creates a store set to lang, or to the default when lang is empty.
func NewStore(lang Lang) *Store {
	if lang != Arabic && lang != English {
		lang = Default
	}
	return &Store{lang: lang}
}

// Lang returns the current language.
func (s *Store) Lang() Lang {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Direction returns the text direction of the current language.
func (s *Store) Direction() Direction {
	return s.Lang().Direction()
}

// Set changes the language and notifies listeners when it differs.
func (s *Store) Set(lang Lang) {
	s.mu.Lock()
	if s.lang == lang {
		s.mu.Unlock()
		return
	}
	s.lang = lang
	listeners := append([]func(Lang){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(lang)
	}
}

// Toggle switches between Arabic and English and returns the new language.
func (s *Store) Toggle() Lang {
	next := s.Lang().Other()
	s.Set(next)
	return next
}

// OnChange registers fn to run after every language change.
func (s *Store) OnChange(fn func(Lang)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// T translates k in the current language.
func (s *Store) T(k Key) string {
	return Translate(s.Lang(), k)
}

// Tf translates k and formats it with args.
func (s *Store) Tf(k Key, args ...any) string {
	return fmt.Sprintf(s.T(k), args...)
}

// Pick returns ar or en depending on the current language. Falls back to
// the other value when the preferred one is empty.
func (s *Store) Pick(ar, en string) string {
	return PickFor(s.Lang(), ar, en)
}

// PickFor is Pick for an explicit language.
func PickFor(l Lang, ar, en string) string {
	if l == Arabic {
		if ar != "" {
			return ar
		}
		return en
	}
	if en != "" {
		return en
	}
	return ar
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// FormatDate renders t as "2 January 2006" with month names in l.
func FormatDate(l Lang, t time.Time) string {
	if l == Arabic {
		return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}
