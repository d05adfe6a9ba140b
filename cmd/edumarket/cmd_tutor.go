package main

import (
	"fmt"
	"strconv"
	"strings"

	"edumarket/internal/models"
	"edumarket/internal/service"

	"github.com/spf13/cobra"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Tutor qualification and profile",
}

var tutorQuizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Print the qualifying assessment",
	Args:  cobra.NoArgs,
	RunE:  runTutorQuiz,
}

var tutorAssessCmd = &cobra.Command{
	Use:     "assess <answer>...",
	Short:   "Submit one answer (a-d) per quiz question",
	Example: `  edumarket tutor assess a b c d a`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTutorAssess,
}

var tutorInterviewCmd = &cobra.Command{
	Use:   "interview <subject>",
	Short: "Print or answer the knowledge and personality interview for a subject",
	Long: `Without answers, prints the interview for the subject.
With five --knowledge and five --personality answers, grades and records it.
Personality answers need at least 8 words each.`,
	Example: `  edumarket tutor interview maths
  edumarket tutor interview physics -k "F = ma" -k Newton ... -p "..." ...`,
	Args: cobra.ExactArgs(1),
	RunE: runTutorInterview,
}

var (
	knowledgeAnswers   []string
	personalityAnswers []string
)

var tutorSubjectCmd = &cobra.Command{
	Use:       "subject <subject>",
	Short:     "Add or remove a subject you teach",
	Args:      cobra.ExactArgs(1),
	ValidArgs: service.TutorSubjects,
	RunE:      runTutorSubject,
}

func init() {
	tutorInterviewCmd.Flags().StringArrayVarP(&knowledgeAnswers, "knowledge", "k", nil, "answer to the next knowledge question (repeat)")
	tutorInterviewCmd.Flags().StringArrayVarP(&personalityAnswers, "personality", "p", nil, "answer to the next personality question (repeat)")
	tutorCmd.AddCommand(tutorQuizCmd, tutorAssessCmd, tutorInterviewCmd, tutorSubjectCmd)
}

func runTutorQuiz(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, q := range application.tutors.Questions() {
		fmt.Fprintf(out, "%d. %s\n", q.ID, q.Question)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "   %c) %s\n", 'a'+i, opt)
		}
	}
	fmt.Fprintf(out, "\nScore at least %.0f/10 to be approved.\n", models.PassingScore)
	return nil
}

func runTutorAssess(cmd *cobra.Command, args []string) error {
	answers := make([]int, len(args))
	for i, arg := range args {
		a, err := parseAnswer(arg)
		if err != nil {
			return fmt.Errorf("answer %d: %w", i+1, err)
		}
		answers[i] = a
	}

	result, err := application.tutors.SubmitAssessment(cmd.Context(), application.session, answers)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "You answered %d of %d correctly: %.1f/10.\n", result.Correct, result.Total, result.Score)
	if result.Passed {
		fmt.Fprintln(out, "You are approved to create courses.")
	} else {
		fmt.Fprintln(out, "Not quite. Review the material and try again.")
	}
	return nil
}

func runTutorInterview(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(knowledgeAnswers) == 0 && len(personalityAnswers) == 0 {
		interview, err := service.SubjectQuestions(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s knowledge questions:\n", interview.Subject)
		for i, q := range interview.Knowledge {
			fmt.Fprintf(out, "%d. %s\n", i+1, q)
		}
		fmt.Fprintf(out, "\nPersonality questions (at least %d words each):\n", models.MinPersonalityWords)
		for i, q := range interview.Personality {
			fmt.Fprintf(out, "%d. %s\n", i+1, q)
		}
		return nil
	}

	result, err := application.tutors.SubmitSubjectAssessment(cmd.Context(), application.session, args[0], knowledgeAnswers, personalityAnswers)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Personality score: %.1f/10\n", result.PersonalityScore)
	fmt.Fprintf(out, "Knowledge score (%s): %.1f/10\n", result.Subject, result.KnowledgeScore)
	fmt.Fprintf(out, "Final score: %.1f/10\n", result.Score)
	if result.Passed {
		fmt.Fprintf(out, "You are approved to create courses and now teach %s.\n", result.Subject)
	} else {
		fmt.Fprintln(out, "Not quite. Review the material and try again.")
	}
	return nil
}

func runTutorSubject(cmd *cobra.Command, args []string) error {
	subjects, err := application.tutors.ToggleSubject(application.session, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Subjects: %s\n", strings.Join(subjects, ", "))
	return nil
}

// parseAnswer accepts an option letter (a-d) or a 1-based option number
func parseAnswer(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return int(s[0] - 'a'), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid answer %q", s)
	}
	return n - 1, nil
}
