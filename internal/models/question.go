package models

// ── Locale ───────────────────────────────────────────────

// Locale selects which language a question's text and answers are read in.
type Locale string

const (
	LocaleVietnamese Locale = "vi"
	LocaleEnglish    Locale = "en"
)

// DefaultLocale is applied whenever a request omits the locale parameter.
const DefaultLocale = LocaleVietnamese

func (l Locale) Valid() bool {
	return l == LocaleVietnamese || l == LocaleEnglish
}

// NormalizeLocale maps an empty or unknown locale string to the default.
func NormalizeLocale(s string) Locale {
	l := Locale(s)
	if !l.Valid() {
		return DefaultLocale
	}
	return l
}

// ── Categories ───────────────────────────────────────────

type Category string

const (
	CategoryGovernment Category = "government"
	CategoryHistory    Category = "history"
	CategorySymbols    Category = "symbols"
)

var ValidCategories = map[Category]bool{
	CategoryGovernment: true,
	CategoryHistory:    true,
	CategorySymbols:    true,
}

// ── Catalog Invariants ───────────────────────────────────

const (
	// CatalogSize is the number of questions in the 2020 civics item bank.
	CatalogSize = 128
	// SeniorSetSize is the number of questions flagged for the 65/20 variant.
	SeniorSetSize = 20
)

// ── Question ─────────────────────────────────────────────

// Question is one entry of the immutable civics catalog. QuestionNumber is
// the stable 1..128 key; the first answer in each list is the primary
// (canonical) answer for that locale.
type Question struct {
	QuestionNumber int      `json:"question_number"`
	Category       Category `json:"category"`
	QuestionEN     string   `json:"question_en"`
	QuestionVI     string   `json:"question_vi"`
	AnswersEN      []string `json:"answers_en"`
	AnswersVI      []string `json:"answers_vi"`
	Is6520         bool     `json:"is_65_20"`
	IsDynamic      bool     `json:"is_dynamic"`
}

// Text returns the question text in the given locale.
func (q *Question) Text(loc Locale) string {
	if loc == LocaleEnglish {
		return q.QuestionEN
	}
	return q.QuestionVI
}

// Answers returns the ordered answer list for the given locale.
func (q *Question) Answers(loc Locale) []string {
	if loc == LocaleEnglish {
		return q.AnswersEN
	}
	return q.AnswersVI
}

// PrimaryAnswer returns the canonical answer (first list entry) for the
// given locale, or "" if the list is empty.
func (q *Question) PrimaryAnswer(loc Locale) string {
	answers := q.Answers(loc)
	if len(answers) == 0 {
		return ""
	}
	return answers[0]
}

// ── Bookmarks ────────────────────────────────────────────

type Bookmark struct {
	QuestionNumber int    `json:"question_number"`
	Note           string `json:"note,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type BookmarkRequest struct {
	QuestionNumber int    `json:"question_number"`
	Note           string `json:"note,omitempty"`
}

// ── Shared Response Types ────────────────────────────────

type ErrorResponse struct {
	Error string `json:"error"`
}
