package models

// PassingScore is the minimum assessment score (out of 10) for tutor approval
const PassingScore = 5.0

// AssessmentQuestion is one multiple-choice question of the tutor quiz
type AssessmentQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

// AssessmentResult is the outcome of one quiz attempt
type AssessmentResult struct {
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Score   float64 `json:"score"`
	Passed  bool    `json:"passed"`
}

// MinPersonalityWords is the shortest accepted answer to a personality question
const MinPersonalityWords = 8

// SubjectAssessment is the interview for one subject: knowledge questions
// ordered easy to hard, then the shared personality questions
type SubjectAssessment struct {
	Subject     string   `json:"subject"`
	Knowledge   []string `json:"knowledge"`
	Personality []string `json:"personality"`
}

// SubjectAssessmentResult is the outcome of one interview. Scores are out of 10.
type SubjectAssessmentResult struct {
	Subject          string  `json:"subject"`
	KnowledgeScore   float64 `json:"knowledgeScore"`
	PersonalityScore float64 `json:"personalityScore"`
	Score            float64 `json:"score"`
	Passed           bool    `json:"passed"`
}
