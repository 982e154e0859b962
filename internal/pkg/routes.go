package pkg

import "fmt"

// Redirect targets handed to the client after a mutation. The answer form
// appends a fragment so the page can scroll to the answer it points at.

func QuestionListPath() string {
	return "/questions"
}

func QuestionDetailPath(questionID uint64) string {
	return fmt.Sprintf("/questions/%d", questionID)
}

func AnswerAnchorPath(questionID, answerID uint64) string {
	return fmt.Sprintf("/questions/%d#answer_%d", questionID, answerID)
}

func LoginPath() string {
	return "/login"
}
