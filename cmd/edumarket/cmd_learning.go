package main

import (
	"fmt"
	"io"

	"edumarket/internal/models"

	"github.com/spf13/cobra"
)

var (
	reviewRating  int
	reviewComment string
)

var purchaseCmd = &cobra.Command{
	Use:   "purchase <chunk-id>",
	Short: "Buy a course section; enrollment unlocks the whole course",
	Args:  cobra.ExactArgs(1),
	RunE:  runPurchase,
}

var completeCmd = &cobra.Command{
	Use:   "complete <chunk-id>",
	Short: "Mark a section as completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

var progressCmd = &cobra.Command{
	Use:   "progress <course-id>",
	Short: "Show progress in a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgress,
}

var reviewCmd = &cobra.Command{
	Use:   "review <course-id>",
	Short: "Rate a course you are enrolled in",
	Args:  cobra.ExactArgs(1),
	RunE:  runReview,
}

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List badges and which ones you have earned",
	Args:  cobra.NoArgs,
	RunE:  runBadges,
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your student or tutor dashboard",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func init() {
	reviewCmd.Flags().IntVarP(&reviewRating, "rating", "r", 0, "Rating from 1 to 5 (required)")
	reviewCmd.Flags().StringVarP(&reviewComment, "comment", "m", "", "Review text")
	reviewCmd.MarkFlagRequired("rating")
}

func runPurchase(cmd *cobra.Command, args []string) error {
	result, err := application.learning.PurchaseChunk(application.session, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if result.Price == 0 {
		fmt.Fprintf(out, "You already own %s; %q is unlocked.\n", result.Course.Title, result.Chunk.Title)
		return nil
	}
	fmt.Fprintf(out, "Purchased %q for $%.0f. All sections of %s are now unlocked.\n",
		result.Chunk.Title, result.Price, result.Course.Title)
	printNewBadges(out, result.NewBadges)
	return nil
}

func runComplete(cmd *cobra.Command, args []string) error {
	result, err := application.learning.CompleteChunk(application.session, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Progress: %.0f%% (%d sections done). Streak: %d days.\n",
		result.Progress.CompletionPercentage, len(result.Progress.CompletedChunks), result.Streak)
	printNewBadges(out, result.NewBadges)
	return nil
}

func runProgress(cmd *cobra.Command, args []string) error {
	progress, err := application.learning.CourseProgress(application.session, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", progressBar(progress.CompletionPercentage))
	for _, id := range progress.CompletedChunks {
		fmt.Fprintf(out, "  done: %s\n", id)
	}
	return nil
}

func runReview(cmd *cobra.Command, args []string) error {
	review, err := application.reviews.SubmitReview(application.session, args[0], reviewRating, reviewComment)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Thanks for your %d-star review!\n", review.Rating)
	return nil
}

func runBadges(cmd *cobra.Command, args []string) error {
	badges, err := application.badges.Catalogue()
	if err != nil {
		return err
	}
	user := application.session.User()
	out := cmd.OutOrStdout()
	for _, b := range badges {
		mark := " "
		if user.HasBadge(b.ID) {
			mark = "x"
		}
		fmt.Fprintf(out, "[%s] %s %s - %s\n", mark, b.Icon, b.Name, b.Description)
	}
	return nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if application.session.User().IsTutor() {
		dash, err := application.tutors.Dashboard(application.session)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Tutor dashboard for %s\n", dash.Tutor.Name)
		if !dash.Tutor.IsApproved {
			fmt.Fprintln(out, "Pass the assessment (`edumarket tutor quiz`) to publish courses.")
		}
		fmt.Fprintf(out, "Courses: %d  Students: %d\n", len(dash.Courses), dash.TotalStudents)
		for _, c := range dash.Courses {
			fmt.Fprintf(out, "  %s [%s] %.1f (%d reviews)\n", c.Title, c.ID, c.AverageRating, c.TotalReviews)
		}
		return nil
	}

	dash, err := application.learning.Dashboard(application.session)
	if err != nil {
		return err
	}
	earned := 0
	for _, b := range dash.Badges {
		if b.Earned {
			earned++
		}
	}
	fmt.Fprintf(out, "Welcome back, %s!\n", dash.Student.Name)
	fmt.Fprintf(out, "Enrolled: %d  Badges: %d/%d  Streak: %d days\n", len(dash.Courses), earned, len(dash.Badges), dash.Streak)
	for _, c := range dash.Courses {
		fmt.Fprintf(out, "  %-32s %s\n", c.Course.Title, progressBar(c.Progress.CompletionPercentage))
	}
	return nil
}

func printNewBadges(out io.Writer, badges []models.Badge) {
	for _, b := range badges {
		fmt.Fprintf(out, "New badge: %s %s\n", b.Icon, b.Name)
	}
}

func progressBar(percent float64) string {
	const width = 20
	filled := int(percent / 100 * width)
	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return fmt.Sprintf("[%s] %3.0f%%", bar, percent)
}
