package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"edumarket/internal/service"

	"github.com/spf13/cobra"
)

var (
	searchTerm    string
	searchSubject string
	searchTutor   string

	newCourse        service.CourseInput
	newSectionTitles []string
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse and publish courses",
	RunE:  runCoursesList,
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses, optionally filtered",
	Args:  cobra.NoArgs,
	RunE:  runCoursesList,
}

var coursesShowCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show a course with its sections and reviews",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoursesShow,
}

var coursesSubjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subjects that have courses",
	Args:  cobra.NoArgs,
	RunE:  runCoursesSubjects,
}

var coursesReviewsCmd = &cobra.Command{
	Use:   "reviews <course-id>",
	Short: "List the reviews of a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoursesReviews,
}

var coursesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new course (approved tutors only)",
	Args:  cobra.NoArgs,
	RunE:  runCoursesCreate,
}

func init() {
	for _, c := range []*cobra.Command{coursesCmd, coursesListCmd} {
		c.Flags().StringVarP(&searchTerm, "search", "s", "", "Match title, description or tutor name")
		c.Flags().StringVar(&searchSubject, "subject", service.AllSubjects, "Only courses in this subject")
		c.Flags().StringVar(&searchTutor, "tutor", "", "Only courses taught by this tutor id")
	}

	coursesCreateCmd.Flags().StringVar(&newCourse.Title, "title", "", "Course title (required)")
	coursesCreateCmd.Flags().StringVar(&newCourse.Description, "description", "", "Course description")
	coursesCreateCmd.Flags().StringVar(&newCourse.Subject, "subject", "", "Subject (required)")
	coursesCreateCmd.Flags().Float64Var(&newCourse.TotalPrice, "price", 80, "Total course price")
	coursesCreateCmd.Flags().IntVar(&newCourse.NumberOfSections, "sections", 4, "Number of sections")
	coursesCreateCmd.Flags().StringArrayVar(&newSectionTitles, "section-title", nil, "Title of the next section (repeatable)")
	coursesCreateCmd.MarkFlagRequired("title")
	coursesCreateCmd.MarkFlagRequired("subject")

	coursesCmd.AddCommand(coursesListCmd, coursesShowCmd, coursesSubjectsCmd, coursesReviewsCmd, coursesCreateCmd)
}

func runCoursesList(cmd *cobra.Command, args []string) error {
	courses, err := application.courses.Search(searchTerm, searchSubject)
	if err != nil {
		return err
	}
	if searchTutor != "" {
		matched := make(map[string]bool, len(courses))
		for _, c := range courses {
			matched[c.ID] = true
		}
		owned, err := application.courses.CoursesByTutor(searchTutor)
		if err != nil {
			return err
		}
		courses = courses[:0]
		for _, c := range owned {
			if matched[c.ID] {
				courses = append(courses, c)
			}
		}
	}
	out := cmd.OutOrStdout()
	if len(courses) == 0 {
		fmt.Fprintln(out, "No courses found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSUBJECT\tTUTOR\tPRICE\tRATING")
	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.0f (%d x $%.0f)\t%.1f (%d)\n",
			c.ID, c.Title, c.Subject, c.TutorName, c.TotalPrice, c.NumberOfSections, c.PricePerSection, c.AverageRating, c.TotalReviews)
	}
	return w.Flush()
}

func runCoursesShow(cmd *cobra.Command, args []string) error {
	detail, err := application.courses.Detail(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	c := detail.Course
	enrolled := application.session.User().IsEnrolled(c.ID)

	fmt.Fprintf(out, "%s (%s)\n", c.Title, c.Subject)
	fmt.Fprintf(out, "by %s, rated %.1f from %d reviews\n", c.TutorName, c.AverageRating, c.TotalReviews)
	if c.Description != "" {
		fmt.Fprintf(out, "\n%s\n", c.Description)
	}

	fmt.Fprintln(out, "\nSections:")
	for _, ch := range detail.Chunks {
		status := fmt.Sprintf("$%.0f", ch.Price)
		if enrolled {
			status = "unlocked"
		}
		fmt.Fprintf(out, "  %d. %s [%s] %s\n", ch.Order, ch.Title, ch.ID, status)
	}

	if len(detail.Reviews) > 0 {
		fmt.Fprintln(out, "\nReviews:")
		for _, r := range detail.Reviews {
			fmt.Fprintf(out, "  %s %s: %s\n", strings.Repeat("*", r.Rating), r.StudentName, r.Comment)
		}
	}
	return nil
}

func runCoursesSubjects(cmd *cobra.Command, args []string) error {
	subjects, err := application.courses.Subjects()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(subjects) == 0 {
		fmt.Fprintln(out, "No courses yet.")
		return nil
	}
	for _, s := range subjects {
		fmt.Fprintln(out, s)
	}
	return nil
}

func runCoursesReviews(cmd *cobra.Command, args []string) error {
	reviews, err := application.reviews.Reviews(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(reviews) == 0 {
		fmt.Fprintln(out, "No reviews yet.")
		return nil
	}
	for _, r := range reviews {
		fmt.Fprintf(out, "%s  %s %s: %s\n", r.CreatedAt.Format("2006-01-02"), strings.Repeat("*", r.Rating), r.StudentName, r.Comment)
	}
	return nil
}

func runCoursesCreate(cmd *cobra.Command, args []string) error {
	input := newCourse
	input.Sections = nil
	for _, title := range newSectionTitles {
		input.Sections = append(input.Sections, service.SectionInput{Title: title})
	}

	course, err := application.courses.CreateCourse(application.session, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created course %s (%s) with %d sections at $%.0f each.\n",
		course.Title, course.ID, course.NumberOfSections, course.PricePerSection)
	return nil
}
