// Package lesson holds the guided prompt-engineering walkthrough: each lesson
// is a ready-made conversation plus a short markdown note.
package lesson

import (
	"strings"

	"github.com/comigor/hellollm/internal/prompt"
)

// Lesson is one step of the walkthrough.
type Lesson struct {
	Name         string
	Title        string
	Note         string
	Conversation prompt.Conversation
}

// FirstPrompt is the question sent in the opening lesson.
const FirstPrompt = "What is the difference between the LangChain and LlamaIndex?"

const reasoningProblem = `how many r's in "strawberry?" {instruction}`

// ReasoningProblem fills the strawberry question with an extra instruction.
func ReasoningProblem(instruction string) string {
	return strings.TrimSpace(strings.ReplaceAll(reasoningProblem, "{instruction}", instruction))
}

// Default returns the built-in walkthrough, in teaching order.
func Default() *Registry {
	r := NewRegistry()

	r.Register(Lesson{
		Name:         "first-prompt",
		Title:        "Our first prompt",
		Note:         "A single `user` message is all the endpoint needs.",
		Conversation: prompt.Conversation{prompt.User(FirstPrompt)},
	})

	irate := prompt.Conversation{
		prompt.Developer("You are irate and extremely hungry."),
		prompt.User("Do you prefer crushed ice or cubed ice?"),
	}
	r.Register(Lesson{
		Name:         "persona-irate",
		Title:        "Adding a developer message",
		Note:         "The `developer` message is an overarching instruction: tone, voice and general rules.",
		Conversation: irate,
	})

	joyful := irate.Clone()
	// index 0 always exists in irate
	_ = joyful.Replace(0, prompt.Developer("You are joyful and having an awesome day!"))
	r.Register(Lesson{
		Name:         "persona-joyful",
		Title:        "Swapping only the developer message",
		Note:         "Same question, different persona.",
		Conversation: joyful,
	})

	r.Register(Lesson{
		Name:         "brief-text",
		Title:        "A plain request",
		Conversation: prompt.Conversation{prompt.User("Write a brief text on climate change.")},
	})
	r.Register(Lesson{
		Name:         "brief-text-persona",
		Title:        "The same request, in character",
		Note:         "Prompt engineering can live entirely inside the user turn.",
		Conversation: prompt.Conversation{prompt.User("Write a brief text on climate change as vice ganda in a talk show.")},
	})

	r.Register(Lesson{
		Name:  "few-shot",
		Title: "Few-shot prompting",
		Note:  "An `assistant` turn shows the model what a made-up word means before we ask for more.",
		Conversation: prompt.Conversation{
			prompt.User("Something that is 'stimple' is said to be good, well functioning, and high quality. An example of a sentence that uses the word 'stimple' is:"),
			prompt.Assistant("'Boy, that there is a stimple drill'."),
			prompt.User("A 'falbean' is a tool used to fasten, tighten, or otherwise is a thing that rotates/spins. An example of a sentence that uses the words 'stimple' and 'falbean' is:"),
		},
	})

	r.Register(Lesson{
		Name:         "chain-of-thought",
		Title:        "Chain of thought",
		Note:         "Small models often miscount letters when answering directly.",
		Conversation: prompt.Conversation{prompt.User(ReasoningProblem(""))},
	})
	r.Register(Lesson{
		Name:  "chain-of-thought-fixed",
		Title: "Asking the model to reason step by step",
		Note:  "Feed back the wrong answer, then ask for the letters to be spelled out and counted.",
		Conversation: prompt.Conversation{
			prompt.User(ReasoningProblem("")),
			prompt.Assistant("There are 2 r's in 'strawberry.'"),
			prompt.User(ReasoningProblem("Now I want you to spell out each letter, and count the r's carefully.")),
		},
	})

	return r
}
