package transcript

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"vide", "", ""},
		{"espaces seuls", "  \n\t ", ""},
		{"ponctuation seule", "...!?", ""},
		{"phrases dupliquées", "Hello world. Hello world. Goodbye.", "Hello world. Goodbye."},
		{"mots répétés casse ignorée", "the THE cat sat sat", "the cat sat."},
		{"balises et timestamps", `<font color="red">Hi</font> there<00:00:01.000> friend`, "Hi there friend."},
		{"terminateurs répétés", "Wait!!! What?? Wait", "Wait. What."},
		{"points multiples", "one....two", "one. two."},
		{"espaces multiples", "  a   b \n c  ", "a b c."},
		{"casse ignorée entre phrases", "Hello. hello.", "Hello."},
		{"casse ignorée sans point final", "Hello. hello", "Hello."},
		{"casse distincte gardée", "Hello there. hello world", "Hello there. hello world."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello world. Hello world. Goodbye.",
		"the THE cat sat sat",
		"cat sat! sat dog",
		"a.a a",
		"<c>so</c> <c>so</c> what? so what. So What!",
		"x y. z. x y. y q",
		"trailing text without period",
		"<unclosed tag and > stray",
		"multi\n\nline\ttext... with ?! mixed !! punctuation",
		"Hello. hello",
		"Stop! STOP? go",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

var spanRe = regexp.MustCompile(`<[^>]*>`)

func TestNormalizeRemovesMarkup(t *testing.T) {
	inputs := []string{
		"<b>bold</b> and <i>italic</i>",
		"a<00:00:01.234><c> b</c><00:00:02.000><c> c</c>",
		"<<nested>> text",
		"left < right > done",
	}
	for _, in := range inputs {
		out := Normalize(in)
		assert.False(t, spanRe.MatchString(out), "output %q still has markup", out)
	}
}

func TestNormalizeNoImmediateRepeat(t *testing.T) {
	out := Normalize("the THE cat sat sat")
	assert.Contains(t, out, "the cat sat")

	words := strings.Fields(Normalize("go go GO now now. Then then stop"))
	for i := 1; i < len(words); i++ {
		assert.False(t, strings.EqualFold(words[i-1], words[i]), "repeat %q in %v", words[i], words)
	}
}

func TestNormalizeVTTEndToEnd(t *testing.T) {
	raw := "00:00:01.000 --> 00:00:02.000\n<c>Hello</c> <c>Hello</c> world\n\nHello world\n"
	assert.Equal(t, "Hello world.", Normalize(ParseVTT(raw)))
}
