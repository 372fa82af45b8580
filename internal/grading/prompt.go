package grading

import (
	"fmt"
	"strings"

	"github.com/abhisek/grammiz/internal/drill"
)

const systemPrompt = `You are grading DGP (Daily Grammar Practice) work. Each submission covers exactly one stage of analysis for one target sentence.

Stage rubrics:
- Monday: parts of speech (and sub-types where given) for the tagged words. Word indices are zero-based positions in the sentence.
- Tuesday: simple subject, simple verb, complete subject, and complete predicate, each as a set of word indices.
- Wednesday: clause count, sentence type (simple/compound/complex/compound-complex), and sentence purpose.
- Thursday: the corrected sentence must fix capitalization, punctuation, and grammar without changing the meaning.
- Friday: Reed-Kellogg diagram slots. Subject, verb, and object belong on the baseline (rotation 0); modifiers hang below on slants (rotation 45). Word indices must land in the right slots.

Mark is_correct true only when the stage's analysis is 100% accurate. When it is not, the feedback must point at what to re-check without giving the full answer away.`

// buildUserMessage serializes one submission for the grader.
func buildUserMessage(stage drill.Stage, sentence drill.Sentence, workJSON []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target sentence: %q\n", sentence.Raw)
	fmt.Fprintf(&b, "Words by index: %s\n", indexWords(sentence))
	fmt.Fprintf(&b, "Stage: %s (%s)\n", stage, stage.Focus())
	fmt.Fprintf(&b, "User work: %s\n", workJSON)
	return b.String()
}

// indexWords renders "0:the 1:dog 2:ran" so the grader never miscounts.
func indexWords(sentence drill.Sentence) string {
	parts := make([]string, len(sentence.Words))
	for i, w := range sentence.Words {
		parts[i] = fmt.Sprintf("%d:%s", i, w)
	}
	return strings.Join(parts, " ")
}
