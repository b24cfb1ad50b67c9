package subject

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/pemistahl/lingua-go"
)

// Prober runs the per-subject expert scorers. The zero value works with
// pure keyword/script heuristics; NewProber adds a lingua-go language
// confidence signal for the english and chinese experts.
type Prober struct {
	detector lingua.LanguageDetector
}

// NewProber builds a Prober with language detection enabled.
// Model loading is lazy, so construction is cheap.
func NewProber() *Prober {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Chinese).
		Build()
	return &Prober{detector: detector}
}

var englishStopwords = []string{
	" the ", " and ", " of ", " to ", " however", " which ", " that ",
	" because ", " although ", " therefore", " would ", " should ",
}

var mathKeywords = []string{
	"求", "解", "方程", "函數", "三角形", "面積", "周長", "證明", "計算",
}

var chineseLitKeywords = []string{
	"成語", "注音", "部首", "造句", "修辭", "文言", "詩", "詞語", "錯別字", "國字",
}

var socialKeywords = []string{
	"歷史", "地理", "公民", "朝代", "戰爭", "條約", "政府", "憲法", "經濟",
	"法律", "選舉", "氣候", "地形", "人口", "貿易",
	"history", "geography", "dynasty", "government", "constitution",
}

var scienceKeywords = []string{
	"實驗", "細胞", "光合作用", "化學", "物理", "電路", "酸鹼", "分子",
	"能量", "溫度", "速度", "質量", "密度", "生態",
	"experiment", "molecule", "photosynthesis", "chemical",
}

var (
	yearMention = regexp.MustCompile(`(?:18|19|20)\d{2}\s*年`)
	unitMention = regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s*(?:mL|mol|kg|cm|km|°C|公克|公升|安培|伏特)`)
)

// Probe scores text against every known subject. The result always
// contains one probe per subject (zero-confidence entries included),
// sorted by confidence descending with declaration order breaking ties,
// so callers can take top-K deterministically.
func (p *Prober) Probe(text string) []ExpertProbe {
	han, latin, digit, total := scriptCounts(text)
	lower := strings.ToLower(text)

	probes := []ExpertProbe{
		p.probeEnglish(lower, han, latin),
		p.probeMath(text, digit, total),
		p.probeChinese(text, han, latin),
		probeKeywords(SubjectSocial, lower, socialKeywords, yearMention),
		probeKeywords(SubjectScience, lower, scienceKeywords, unitMention),
	}

	sort.SliceStable(probes, func(i, j int) bool {
		return probes[i].Confidence > probes[j].Confidence
	})
	return probes
}

func (p *Prober) probeEnglish(lower string, han, latin int) ExpertProbe {
	probe := ExpertProbe{Subject: SubjectEnglish}
	letters := han + latin
	if letters == 0 {
		probe.Notes = "no letters"
		return probe
	}

	latinRatio := float64(latin) / float64(letters)
	probe.Confidence += 0.5 * latinRatio
	if latinRatio > 0.5 {
		probe.Tags = append(probe.Tags, "latin-script")
	}

	stopHits := 0
	for _, w := range englishStopwords {
		if strings.Contains(lower, w) {
			stopHits++
		}
	}
	if stopHits > 0 {
		probe.Confidence += min(0.3, 0.06*float64(stopHits))
		probe.Tags = append(probe.Tags, "stopwords")
	}

	if p.detector != nil && latin > 0 {
		conf := p.detector.ComputeLanguageConfidence(lower, lingua.English)
		probe.Confidence += 0.2 * conf
		probe.Tags = append(probe.Tags, "lingua")
	}

	probe.Confidence = clamp01(probe.Confidence)
	probe.Notes = fmt.Sprintf("latin %.2f, %d stopwords", latinRatio, stopHits)
	return probe
}

func (p *Prober) probeMath(text string, digit, total int) ExpertProbe {
	probe := ExpertProbe{Subject: SubjectMath}

	guard := RunHardGuard(text)
	if n := len(guard.MatchedTokens); n > 0 {
		probe.Confidence += min(0.6, 0.15*float64(n))
		probe.Tags = append(probe.Tags, "operators")
	}

	if total > 0 {
		digitRatio := float64(digit) / float64(total)
		probe.Confidence += min(0.2, digitRatio)
		if digitRatio > 0.1 {
			probe.Tags = append(probe.Tags, "digits")
		}
	}

	kw := countHits(text, mathKeywords)
	if kw > 0 {
		probe.Confidence += min(0.3, 0.1*float64(kw))
		probe.Tags = append(probe.Tags, "keywords")
	}

	probe.Confidence = clamp01(probe.Confidence)
	probe.Notes = fmt.Sprintf("%d math tokens, %d keywords", len(guard.MatchedTokens), kw)
	return probe
}

func (p *Prober) probeChinese(text string, han, latin int) ExpertProbe {
	probe := ExpertProbe{Subject: SubjectChinese}
	letters := han + latin
	if letters == 0 {
		probe.Notes = "no letters"
		return probe
	}

	hanRatio := float64(han) / float64(letters)
	probe.Confidence += 0.45 * hanRatio
	if hanRatio > 0.5 {
		probe.Tags = append(probe.Tags, "han-script")
	}

	kw := countHits(text, chineseLitKeywords)
	if kw > 0 {
		probe.Confidence += min(0.45, 0.15*float64(kw))
		probe.Tags = append(probe.Tags, "literature")
	}

	if p.detector != nil && han > 0 {
		conf := p.detector.ComputeLanguageConfidence(text, lingua.Chinese)
		probe.Confidence += 0.1 * conf
		probe.Tags = append(probe.Tags, "lingua")
	}

	probe.Confidence = clamp01(probe.Confidence)
	probe.Notes = fmt.Sprintf("han %.2f, %d literature keywords", hanRatio, kw)
	return probe
}

// probeKeywords scores the social and science experts, which rely on
// vocabulary plus one structural pattern (year mentions, measurement
// units) rather than script ratios.
func probeKeywords(subj Subject, lower string, keywords []string, pattern *regexp.Regexp) ExpertProbe {
	probe := ExpertProbe{Subject: subj}

	kw := countHits(lower, keywords)
	if kw > 0 {
		probe.Confidence += min(0.8, 0.2*float64(kw))
		probe.Tags = append(probe.Tags, "keywords")
	}
	if pattern.MatchString(lower) {
		probe.Confidence += 0.15
		probe.Tags = append(probe.Tags, "pattern")
	}

	probe.Confidence = clamp01(probe.Confidence)
	probe.Notes = fmt.Sprintf("%d keywords", kw)
	return probe
}

func scriptCounts(text string) (han, latin, digit, total int) {
	for _, r := range text {
		total++
		switch {
		case unicode.Is(unicode.Han, r):
			han++
		case r < 128 && unicode.IsLetter(r):
			latin++
		case unicode.IsDigit(r):
			digit++
		}
	}
	return han, latin, digit, total
}

func countHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
