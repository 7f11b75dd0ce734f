package coaching

import (
	"log/slog"
	"math"
	"strings"
	"unicode"

	"github.com/heartmarshall/habitcoach-backend/internal/domain"
)

// Label thresholds on the raw polarity p.
const (
	positiveThreshold = 0.7
	negativeThreshold = 0.3
)

// SentimentResult is the outcome of scoring a text.
// Score = (p-0.5)*2 lies in [-1, 1]; Confidence is p itself.
type SentimentResult struct {
	Score      float64               `json:"score"`
	Label      domain.SentimentLabel `json:"label"`
	Confidence float64               `json:"confidence"`
}

// NeutralSentiment is returned for empty or unscorable text.
var NeutralSentiment = SentimentResult{Score: 0, Label: domain.SentimentNeutral, Confidence: 0.5}

// Analyzer scores free text with a lexicon-based log-odds model.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	log *slog.Logger
}

// NewAnalyzer creates a sentiment analyzer.
func NewAnalyzer(log *slog.Logger) *Analyzer {
	return &Analyzer{log: log.With("component", "sentiment")}
}

// Analyze scores text. It never fails: degenerate input yields NeutralSentiment.
func (a *Analyzer) Analyze(text string) SentimentResult {
	p, ok := polarity(text)
	if !ok {
		a.log.Debug("sentiment degraded to neutral", slog.Int("length", len(text)))
		return NeutralSentiment
	}
	return resultFromPolarity(p)
}

func resultFromPolarity(p float64) SentimentResult {
	label := domain.SentimentNeutral
	switch {
	case p > positiveThreshold:
		label = domain.SentimentPositive
	case p < negativeThreshold:
		label = domain.SentimentNegative
	}
	return SentimentResult{
		Score:      (p - 0.5) * 2,
		Label:      label,
		Confidence: p,
	}
}

// polarity returns p in [0,1]. ok is false when text has no scorable token.
func polarity(text string) (p float64, ok bool) {
	lower := domain.NormalizeText(text)
	if lower == "" {
		return 0.5, false
	}

	var (
		sum       float64
		tokens    int
		negate    int // remaining tokens a negator applies to
		intensity = 1.0
	)

	for _, field := range strings.Fields(lower) {
		if w, found := emoticons[field]; found {
			sum += w
			tokens++
			continue
		}

		words := strings.FieldsFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && r != '\''
		})
		for _, word := range words {
			tokens++

			if negators[word] {
				negate = negationScope
				continue
			}
			if m, found := intensifiers[word]; found {
				intensity *= m
				continue
			}

			w, found := lexicon[word]
			if !found {
				if negate > 0 {
					negate--
				}
				intensity = 1
				continue
			}

			w *= intensity
			if negate > 0 {
				w = -w * negationDamping
			}
			sum += w
			negate = 0
			intensity = 1
		}
	}

	if tokens == 0 {
		return 0.5, false
	}
	return 1 / (1 + math.Exp(-sum)), true
}

// negationScope is how many following words a negator can reach.
const negationScope = 3

// negationDamping softens flipped hits: "not bad" is weaker than "good".
const negationDamping = 0.75

var negators = map[string]bool{
	"not": true, "no": true, "never": true, "nothing": true, "nobody": true,
	"don't": true, "dont": true, "didn't": true, "didnt": true, "doesn't": true,
	"isn't": true, "wasn't": true, "can't": true, "cannot": true, "won't": true,
	"hardly": true, "without": true,
}

var intensifiers = map[string]float64{
	"very": 1.5, "really": 1.5, "so": 1.3, "extremely": 2, "super": 1.5,
	"totally": 1.5, "incredibly": 1.8, "quite": 1.2, "too": 1.3, "absolutely": 1.8,
}

var emoticons = map[string]float64{
	":)": 1.5, ":-)": 1.5, ":d": 2, ":-d": 2, "<3": 2, ";)": 1, "^^": 1.5,
	":(": -1.5, ":-(": -1.5, ":'(": -2, "</3": -2, ":/": -0.8, ">:(": -2,
}

// lexicon maps a word to its log-odds contribution.
var lexicon = map[string]float64{
	// positive
	"good": 1.2, "great": 1.8, "awesome": 2, "amazing": 2, "excellent": 2,
	"fantastic": 2, "wonderful": 2, "love": 2, "loved": 2, "like": 0.8,
	"liked": 0.8, "enjoy": 1.5, "enjoyed": 1.5, "happy": 1.8, "glad": 1.4,
	"nice": 1.2, "fun": 1.3, "proud": 1.6, "excited": 1.6, "better": 1,
	"best": 1.8, "easy": 0.8, "energized": 1.5, "energetic": 1.5, "strong": 1,
	"motivated": 1.5, "calm": 1, "relaxed": 1.2, "fresh": 0.8, "win": 1.2,
	"success": 1.6, "successful": 1.6, "progress": 1.2, "improved": 1.3,
	"thanks": 1.2, "thank": 1.2, "perfect": 2, "productive": 1.5, "done": 0.6,
	"finished": 0.8, "completed": 1, "achieved": 1.5, "yay": 1.8, "cool": 1,

	// negative
	"bad": -1.4, "terrible": -2, "awful": -2, "horrible": -2, "hate": -2,
	"hated": -2, "sad": -1.6, "tired": -1.2, "exhausted": -1.6, "bored": -1.2,
	"boring": -1.2, "angry": -1.8, "annoyed": -1.4, "stressed": -1.5,
	"stress": -1.2, "hard": -0.6, "difficult": -0.8, "worse": -1.3, "worst": -2,
	"fail": -1.6, "failed": -1.6, "failure": -1.6, "lazy": -1.2, "sick": -1.4,
	"pain": -1.3, "hurt": -1.3, "skipped": -1, "missed": -1, "quit": -1.4,
	"lonely": -1.5, "anxious": -1.5, "unhappy": -1.8, "disappointed": -1.7,
	"frustrated": -1.6, "ugh": -1.2, "sucks": -1.8, "weak": -1, "sore": -0.6,
}
