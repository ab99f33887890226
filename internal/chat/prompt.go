package chat

import (
	"fmt"
	"strings"

	"ashara.health/site/core/config"
	"ashara.health/site/internal/llm"
)

// Topics the assistant may discuss. Kept with the composer because the
// allow/deny lists are part of the persona, not per-deployment data.
var allowedTopics = []string{
	"General information about naturopathic medicine, acupuncture, and holistic health",
	"Questions about the services offered",
	"Membership plans and pricing questions",
	"Scheduling and appointment information",
	"General wellness advice and health education",
}

var restrictedTopics = []string{
	"Specific medical diagnoses or treatment plans",
	"Prescription medication advice",
	"Emergency medical situations",
	"Topics unrelated to the practice or holistic health",
}

// ComposeSystemPrompt builds the system instruction prepended to every
// upstream request. Pure function of static configuration; the result is
// never exposed to or supplied by the end user.
func ComposeSystemPrompt(p config.PracticeConfig) llm.Message {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a helpful AI assistant for %s, a naturopathic medicine practice.\n\n", p.Name)

	b.WriteString("You can help visitors with:\n")
	for _, topic := range allowedTopics {
		fmt.Fprintf(&b, "- %s\n", topic)
	}

	b.WriteString("\nYou must decline to discuss:\n")
	for _, topic := range restrictedTopics {
		fmt.Fprintf(&b, "- %s\n", topic)
	}
	fmt.Fprintf(&b, "When declining, respond with: %q\n", refusalSentence(p.Name))

	b.WriteString("\nPractice details:\n")
	fmt.Fprintf(&b, "- Services: %s\n", strings.Join(p.Services, ", "))
	fmt.Fprintf(&b, "- Membership plans: %s\n", strings.Join(p.Memberships, ", "))
	fmt.Fprintf(&b, "- Address: %s\n", p.Address)
	fmt.Fprintf(&b, "- Phone: %s\n", p.Phone)
	fmt.Fprintf(&b, "- Email: %s\n", p.Email)
	fmt.Fprintf(&b, "- Hours: %s\n", p.Hours)

	b.WriteString("\nAlways be professional, compassionate, and informative. ")
	b.WriteString("If asked about specific medical advice, remind users to consult with the doctor ")
	b.WriteString("or schedule an appointment for personalized care.")

	return llm.Message{
		Role:    llm.RoleSystem,
		Content: b.String(),
	}
}

func refusalSentence(practiceName string) string {
	return fmt.Sprintf("I'm sorry, but I can only help with questions about %s and holistic health.", practiceName)
}
