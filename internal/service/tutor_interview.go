package service

import (
	"math"
	"strings"
	"unicode"

	"edumarket/internal/models"
)

type knowledgeQuestion struct {
	question  string
	reference string
}

var personalityQuestions = []string{
	"When teaching, how do you explain a difficult concept so that students can understand it clearly?",
	"Describe a time when you motivated someone to keep learning despite challenges.",
	"How do you stay patient and supportive when students are struggling to grasp a topic?",
	"What strategies do you use to keep your lessons organized and engaging?",
	"How do you handle stressful teaching situations, such as when multiple students are confused?",
}

var knowledgeQuestions = map[string][]knowledgeQuestion{
	"Math": {
		{"What is the derivative of x²?", "2x"},
		{"Solve for x: 2x + 5 = 15", "5"},
		{"What is the integral of sin(x)?", "-cos(x) + C"},
		{"Explain the difference between permutation and combination.", "Permutation = order matters, Combination = order doesn't"},
		{"Prove that √2 is irrational.", "Proof by contradiction with even/odd integers"},
	},
	"Physics": {
		{"State Newton's Second Law of Motion.", "F = ma"},
		{"What is the SI unit of force?", "Newton"},
		{"What is the difference between speed and velocity?", "Speed = scalar, Velocity = vector"},
		{"Explain the concept of relativity of simultaneity.", "Events can occur simultaneously in one frame but not in another"},
		{"Derive the expression for kinetic energy in terms of momentum.", "KE = p² / 2m"},
	},
	"Chemistry": {
		{"What is the atomic number of Oxygen?", "8"},
		{"Write the balanced equation for combustion of methane (CH₄).", "CH4 + 2O2 → CO2 + 2H2O"},
		{"What is the pH of a neutral solution at 25°C?", "7"},
		{"Explain Le Chatelier's principle with an example.", "System shifts to counteract change"},
		{"Explain hybridization in methane (CH₄).", "sp³ hybridization"},
	},
	"Biology": {
		{"What is the basic structural and functional unit of life?", "Cell"},
		{"What is the role of mitochondria in a cell?", "Powerhouse, produces ATP"},
		{"Explain the process of transcription in protein synthesis.", "DNA → mRNA using RNA polymerase"},
		{"What is the difference between mitosis and meiosis?", "Mitosis = identical cells, Meiosis = gametes with half chromosomes"},
		{"Explain the theory of natural selection by Darwin.", "Survival of fittest through variation and selection"},
	},
}

// fullMarkWords is the answer length that earns full personality marks
const fullMarkWords = 40

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "and": true, "or": true,
	"to": true, "in": true, "by": true, "with": true, "is": true, "are": true,
	"for": true, "through": true, "using": true,
}

var symbolReplacer = strings.NewReplacer(
	"²", "2", "³", "3", "₂", "2", "₄", "4",
	"√", " sqrt ", "→", " ", "’", "", "'", "",
)

// NormalizeSubject matches s case-insensitively against TutorSubjects.
// "Maths" is accepted for Math.
func NormalizeSubject(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "maths") {
		return "Math", true
	}
	for _, subject := range TutorSubjects {
		if strings.EqualFold(s, subject) {
			return subject, true
		}
	}
	return "", false
}

// SubjectQuestions returns the interview for subject
func SubjectQuestions(subject string) (*models.SubjectAssessment, error) {
	name, ok := NormalizeSubject(subject)
	if !ok {
		return nil, ErrUnknownSubject
	}
	bank := knowledgeQuestions[name]
	knowledge := make([]string, len(bank))
	for i, q := range bank {
		knowledge[i] = q.question
	}
	return &models.SubjectAssessment{
		Subject:     name,
		Knowledge:   knowledge,
		Personality: append([]string(nil), personalityQuestions...),
	}, nil
}

// ScoreSubjectAssessment grades an interview. Every question needs an answer,
// and each personality answer needs at least models.MinPersonalityWords words.
func ScoreSubjectAssessment(subject string, knowledge, personality []string) (*models.SubjectAssessmentResult, error) {
	name, ok := NormalizeSubject(subject)
	if !ok {
		return nil, ErrUnknownSubject
	}
	bank := knowledgeQuestions[name]
	if len(knowledge) != len(bank) || len(personality) != len(personalityQuestions) {
		return nil, ErrIncompleteAssessment
	}

	var personalityTotal float64
	for _, answer := range personality {
		words := len(strings.Fields(answer))
		if words < models.MinPersonalityWords {
			return nil, ErrShortAnswer
		}
		personalityTotal += math.Min(float64(words), fullMarkWords) / fullMarkWords
	}
	personalityScore := roundScore(1 + 9*personalityTotal/float64(len(personality)))

	var knowledgeTotal float64
	for i, q := range bank {
		knowledgeTotal += knowledgeMatch(knowledge[i], q.reference)
	}
	knowledgeScore := roundScore(10 * knowledgeTotal / float64(len(bank)))

	score := roundScore((knowledgeScore + personalityScore) / 2)
	return &models.SubjectAssessmentResult{
		Subject:          name,
		KnowledgeScore:   knowledgeScore,
		PersonalityScore: personalityScore,
		Score:            score,
		Passed:           score >= models.PassingScore,
	}, nil
}

// knowledgeMatch is the share of the reference answer's terms found in answer
func knowledgeMatch(answer, reference string) float64 {
	want := terms(reference)
	if len(want) == 0 {
		return 0
	}
	got := terms(answer)
	hits := 0
	for term := range want {
		if got[term] {
			hits++
		}
	}
	return float64(hits) / float64(len(want))
}

func terms(s string) map[string]bool {
	s = symbolReplacer.Replace(strings.ToLower(s))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		if !stopWords[f] {
			set[f] = true
		}
	}
	return set
}

func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
