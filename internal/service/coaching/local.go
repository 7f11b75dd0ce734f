package coaching

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

type keywordPool struct {
	category  string
	keywords  []string
	responses []string
}

// keywordPools is scanned in order; the first category with a keyword
// present in the prompt as whole words wins.
var keywordPools = []keywordPool{
	{
		category: "reading",
		keywords: []string{"reading", "read", "book", "books", "chapter", "pages"},
		responses: []string{
			"Keep reading today, every page counts!",
			"Opening the book is already a win!",
			"Knowledge is power, keep turning those pages!",
		},
	},
	{
		category: "exercise",
		keywords: []string{"exercise", "workout", "run", "gym", "fitness", "yoga", "walk", "swim"},
		responses: []string{
			"Moving your body makes life better!",
			"Stay active, stay healthy!",
			"Today's sweat is tomorrow's strength!",
		},
	},
	{
		category: "study",
		keywords: []string{"study", "learn", "practice", "course", "lesson"},
		responses: []string{
			"Learning keeps you growing!",
			"Every lesson moves you forward!",
			"Today's effort is tomorrow's success!",
		},
	},
	{
		category: "work",
		keywords: []string{"work", "job", "project", "focus"},
		responses: []string{
			"Stay focused and make it a great day at work!",
			"Focused work builds big dreams!",
			"What you put in today pays off tomorrow!",
		},
	},
	{
		category: "check-in",
		keywords: []string{"check-in", "checkin", "check in", "streak"},
		responses: []string{
			"Check-in done, keep it going!",
			"Consistency is the real victory!",
			"A little progress every day!",
		},
	},
	{
		category: "encouragement",
		keywords: []string{"keep going", "you can do it", "cheer", "come on"},
		responses: []string{
			"Keep going, you are doing great!",
			"Believe in yourself, you can do it!",
			"Persistence wins in the end!",
		},
	},
}

var defaultResponses = []string{
	"Keep up the good habit!",
	"Persistence wins in the end!",
	"A little progress every day!",
	"You are doing great!",
	"Keep going, you can do it!",
	"Stay on track!",
	"Awesome work!",
	"Keep pushing forward!",
}

// LocalGenerator produces canned coaching text from keyword pools without
// any network access. It is total: every call returns non-empty text.
type LocalGenerator struct {
	pick func(n int) int
}

// NewLocalGenerator creates a generator that picks responses at random.
func NewLocalGenerator() *LocalGenerator {
	return &LocalGenerator{pick: rand.IntN}
}

// GenerateLocal returns a response from the pool of the first keyword
// category found in prompt, or from the default pool.
func (g *LocalGenerator) GenerateLocal(prompt string) string {
	pool := defaultResponses
	if c, ok := matchCategory(prompt); ok {
		pool = c.responses
	}
	return pool[g.pick(len(pool))]
}

// matchCategory returns the first keyword category found in prompt,
// compared case-insensitively on word boundaries: "read" matches
// "read 20 pages" but not "already".
func matchCategory(prompt string) (keywordPool, bool) {
	text := wordText(prompt)
	for _, c := range keywordPools {
		for _, kw := range c.keywords {
			if strings.Contains(text, " "+kw+" ") {
				return c, true
			}
		}
	}
	return keywordPool{}, false
}

// wordText lowercases s and rejoins its words with single spaces, padded on
// both ends. Hyphens and apostrophes stay inside words.
func wordText(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '\''
	})
	return " " + strings.Join(words, " ") + " "
}
