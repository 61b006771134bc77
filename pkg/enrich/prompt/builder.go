package prompt

import (
	"fmt"
	"strings"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/pkg/enrich/webpage"
	"campus-assistant-be/pkg/llm"
)

// historyWindow is how many prior chat messages ride along with each turn.
const historyWindow = 10

// BuildSystemPrompt assembles the campus-context system message: assistant
// persona, the known events/deadlines/tutoring data as bullet lists, any
// fetched web page content, and answering rules.
func BuildSystemPrompt(
	events []*entity.Event,
	deadlines []*entity.Deadline,
	tutoring []*entity.TutoringSession,
	pages []webpage.FetchResult,
) string {
	var b strings.Builder

	b.WriteString("You are a helpful campus AI assistant. You have access to the following campus information:\n\n")

	b.WriteString("UPCOMING EVENTS:\n")
	for _, e := range events {
		fmt.Fprintf(&b, "- %s on %s at %s in %s (%s)\n", e.Title, e.Date, e.Time, e.Location, e.Category)
	}

	b.WriteString("\nDEADLINES:\n")
	for _, d := range deadlines {
		fmt.Fprintf(&b, "- %s due %s", d.Title, d.DueDate)
		if d.Course != nil && *d.Course != "" {
			fmt.Fprintf(&b, " for %s", *d.Course)
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nTUTORING SESSIONS:\n")
	for _, t := range tutoring {
		fmt.Fprintf(&b, "- %s with %s at %s in %s (%s)\n", t.Subject, t.Tutor, t.Time, t.Location, t.Availability)
	}

	for _, page := range pages {
		fmt.Fprintf(&b, "\nWEB PAGE CONTENT FROM %s:\n%s\n", page.URL, page.PromptText())
	}

	b.WriteString(`
When answering questions:
- Be helpful and concise
- Reference specific events, deadlines, or tutoring sessions when relevant
- Use the web page content above when it answers the question, and mention which page it came from
- If asked about something not in the data, politely say you don't have that information
- Format your responses in a clear, readable way`)

	return b.String()
}

// AssembleMessages produces the full conversation sent to the model: system
// prompt, a bounded window of recent history, then the new user message.
// The history passed in must not already contain the new user message.
func AssembleMessages(systemPrompt string, history []llm.Message, userMessage string) []llm.Message {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: "user", Content: userMessage})
	return messages
}
