package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert educator creating educational questions based on video content.

Rules:
- Questions must test understanding of key concepts from the provided transcript excerpt, not trivia or phrasing.
- Every question must be answerable from the excerpt alone.
- Write in clear, plain English.
- Respond with a single JSON object of the form {"questions": [...]} and nothing else.`

const multipleChoiceInstructions = `Create multiple choice questions:
1. Focus on concepts that are central to understanding the material.
2. Provide 4 options labeled A, B, C and D that are all plausible but with only one correct answer.
3. Include a brief explanation for why the correct answer is right.`

const fillInBlankInstructions = `Create fill in the blank questions:
1. Identify key terms or concepts from the content.
2. Write sentences with a key term removed and replaced with _____.
3. The blank must be a single word or short phrase that is clearly defined in the content.
4. Include the correct answer and an explanation of why it is correct.`

const shortAnswerInstructions = `Create short answer questions:
1. Ask questions that require brief explanations of 1 to 3 sentences.
2. Favor "why" and "how" questions that test understanding.
3. Include a sample answer that would receive full marks.
4. List the key points a correct answer must mention.`

const mixedInstructions = `Create a balanced mixture of multiple choice, fill in the blank, and short answer questions, following the conventions of each type.`

// buildUserMessage constructs the generation prompt for one transcript
// excerpt. Unknown types fall back to multiple choice.
func buildUserMessage(text string, count int, qtype ItemType) string {
	instructions := multipleChoiceInstructions
	switch qtype {
	case TypeFillInBlank:
		instructions = fillInBlankInstructions
	case TypeShortAnswer:
		instructions = shortAnswerInstructions
	case TypeMixed:
		instructions = mixedInstructions
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the following educational content, generate %d substantive questions.\n", count)
	b.WriteString("The questions should test deep understanding of key concepts and be valuable for learning.\n")
	b.WriteString("\nEducational content:\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(instructions)
	return b.String()
}
