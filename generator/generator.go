package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxLength matches the longest nickname players can claim.
const MaxLength = 20

var (
	adjectives = []string{
		"Veloz", "Valiente", "Dulce", "Loco", "Feliz",
		"Rápido", "Travieso", "Salado", "Goloso", "Saltarín",
		"Brillante", "Pícaro", "Risueño", "Audaz", "Tímido",
	}
	nouns = []string{
		"Yayo", "Chuche", "Skater", "Ratón", "Demonio",
		"Caramelo", "Pato", "Río", "Cable", "Balón",
		"Gominola", "Piruleta", "Trueno", "Gato", "Cohete",
	}
	prefixes = []string{"Súper", "Mega", "Don", "Profe", "Capi"}
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Nickname generates a town themed nickname that is always short enough to
// be claimed.
func Nickname() string {
	return NicknameFrom(newRand())
}

func NicknameFrom(r *rand.Rand) string {
	noun := nouns[r.Intn(len(nouns))]
	adj := adjectives[r.Intn(len(adjectives))]
	// 30% chance for a prefix instead of an adjective
	if r.Float64() < 0.3 {
		return fit(fmt.Sprintf("%s %s", prefixes[r.Intn(len(prefixes))], noun))
	}
	name := fmt.Sprintf("%s %s", noun, adj)
	// 40% chance for a number
	if r.Float64() < 0.4 {
		name = fmt.Sprintf("%s%d", strings.ReplaceAll(name, " ", ""), r.Intn(100))
	}
	return fit(name)
}

// Alternative suggests a free-looking variant of a nickname that is taken.
func Alternative(taken string) string {
	return AlternativeFrom(newRand(), taken)
}

func AlternativeFrom(r *rand.Rand, taken string) string {
	base := strings.TrimSpace(taken)
	if base == "" {
		return NicknameFrom(r)
	}
	suffix := fmt.Sprintf("%d", 10+r.Intn(990))
	return fit(truncate(base, MaxLength-len(suffix)) + suffix)
}

func truncate(s string, runes int) string {
	if utf8.RuneCountInString(s) <= runes {
		return s
	}
	return string([]rune(s)[:runes])
}

func fit(s string) string {
	return strings.TrimSpace(truncate(s, MaxLength))
}
