package formatter

import (
	"fmt"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
)

// FormatTurn renders one conversation turn with a speaker prefix.
func FormatTurn(t domain.ConversationTurn) string {
	if t.Speaker == domain.SpeakerUser {
		return StyleBlue.Render("You: ") + t.Content
	}
	return StylePurple.Render("Planner: ") + StyleFg.Render(t.Content)
}

// FormatTranscript renders turns, one per line.
func FormatTranscript(turns []domain.ConversationTurn) string {
	var b strings.Builder
	for _, t := range turns {
		b.WriteString(FormatTurn(t))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatChatWelcome renders the banner shown when the chat opens.
func FormatChatWelcome(greeting string) string {
	return StyleHeader.Render("DREAM2REALITY") + Dim("  /samples  /reset  /export  /quit") + "\n\n" +
		StylePurple.Render("Planner: ") + StyleFg.Render(greeting)
}

// FormatSamples renders numbered sample prompts.
func FormatSamples(samples []string) string {
	var b strings.Builder
	b.WriteString(Dim("Try one of these (type its number):") + "\n")
	for i, s := range samples {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render(fmt.Sprintf("%d.", i+1)), s)
	}
	return b.String()
}

// FormatChoices renders a compact list of numbered options on one line.
func FormatChoices(choices ...string) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = StyleYellow.Render(fmt.Sprintf("[%d]", i+1)) + " " + c
	}
	return strings.Join(parts, "  ")
}

// FormatNotice renders a validation or status notice.
func FormatNotice(msg string) string {
	return StyleYellow.Render("! ") + msg
}

// FormatError renders an error line.
func FormatError(err error) string {
	return StyleRed.Render("✖ " + err.Error())
}
