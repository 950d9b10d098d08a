package service

const roastInstruction = "You are a brutally honest but hilarious resume roaster. " +
	"Roast the following resume in a funny, sarcastic way. " +
	"Be brutal but entertaining. Keep it under 200 words.\n\n"

// BuildPrompt prefixes the resume text with the fixed roasting instruction.
func BuildPrompt(resumeText string) string {
	return roastInstruction + "Resume:\n" + resumeText + "\n\nRoast:"
}
