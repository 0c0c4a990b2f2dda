package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	minFragmentLen = 10
	maxFragments   = 50
)

// marqueurs de présence de données de sous-titres dans un script de la page
var captionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`"captions":\s*\{[^}]*"playerCaptionsTracklistRenderer":\s*\{`),
	regexp.MustCompile(`"transcript":\s*\{`),
	regexp.MustCompile(`"captions":\s*\{`),
}

// "text":"..." avec échappements JSON
var textFragmentRe = regexp.MustCompile(`"text":\s*"((?:[^"\\]|\\.)*)"`)

// ExtractCaptionFragments cherche, dans les <script> de la page qui contiennent
// un marqueur de sous-titres, les fragments "text":"…". Les fragments de moins
// de 10 caractères ou qui ressemblent à une URL sont ignorés ; 50 au maximum,
// dans l'ordre d'apparition.
func ExtractCaptionFragments(page []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("page: parse HTML: %w", err)
	}

	var fragments []string
	gated := false
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content := s.Text()
		if !hasCaptionMarker(content) {
			return true
		}
		gated = true
		for _, m := range textFragmentRe.FindAllStringSubmatch(content, -1) {
			frag := decodeJSONString(m[1])
			if !keepFragment(frag) {
				continue
			}
			fragments = append(fragments, frag)
			if len(fragments) == maxFragments {
				return false
			}
		}
		return true
	})

	if !gated {
		return "", ErrNoCaptionData
	}
	if len(fragments) == 0 {
		return "", fmt.Errorf("page: %w", ErrEmptyResult)
	}
	return strings.Join(fragments, " "), nil
}

func hasCaptionMarker(s string) bool {
	for _, re := range captionMarkers {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func keepFragment(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < minFragmentLen {
		return false
	}
	return !strings.HasPrefix(s, "http")
}

// decodeJSONString décode les échappements (&, \n, \") ; en cas d'échec
// le texte brut est retourné.
func decodeJSONString(s string) string {
	var out string
	if err := json.Unmarshal([]byte(`"`+s+`"`), &out); err != nil {
		return s
	}
	return strings.TrimSpace(out)
}
