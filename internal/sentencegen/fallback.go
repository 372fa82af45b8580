package sentencegen

// FallbackSentences is the fixed pair used when the source fails or
// returns nothing usable. The session continues on these rather than
// blocking on a dead oracle.
var FallbackSentences = []string{
	"the dog ran fast yesterday",
	"my brother plays loud music at night",
}

// Fallback returns a copy of the fallback pair.
func Fallback() []string {
	out := make([]string, len(FallbackSentences))
	copy(out, FallbackSentences)
	return out
}
