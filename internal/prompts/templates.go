package prompts

// TopicVariable is the single placeholder used by the built-in prompts
const TopicVariable = "topic"

var (
	// Essay asks the hosted chat model for a short essay
	Essay = MustParse("Write me an essay about {topic} with 100 words")

	// Poem asks the local model for a short poem
	Poem = MustParse("Write me a poem about {topic} with 100 words")
)
