package main

import (
	"fmt"
	"strings"
	"time"

	"edumarket/internal/models"
	"edumarket/internal/service"

	"github.com/spf13/cobra"
)

var timeNow = time.Now

var (
	signupEmail    string
	signupPassword string
	signupName     string
	signupRole     string

	loginEmail    string
	loginPassword string
)

// seedCmd writes the reference badges and demo courses
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the badge catalogue and demo courses if they are missing",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	Args:  cobra.NoArgs,
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Email address (required)")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Password (required)")
	signupCmd.Flags().StringVar(&signupName, "name", "", "Display name (required)")
	signupCmd.Flags().StringVar(&signupRole, "role", string(models.RoleStudent), "student or tutor")
	signupCmd.MarkFlagRequired("email")
	signupCmd.MarkFlagRequired("password")
	signupCmd.MarkFlagRequired("name")

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (required)")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}

func runSeed(cmd *cobra.Command, args []string) error {
	seeded, err := application.store.Seed(timeNow())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(seeded) == 0 {
		fmt.Fprintln(out, "Reference data already present, nothing written.")
		return nil
	}
	fmt.Fprintf(out, "Seeded: %s\n", strings.Join(seeded, ", "))
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	ok, err := application.auth.Signup(cmd.Context(), application.session, service.SignupInput{
		Email:    signupEmail,
		Password: signupPassword,
		Name:     signupName,
		Role:     models.Role(strings.ToLower(signupRole)),
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("an account with email %s already exists", signupEmail)
	}
	user := application.session.User()
	fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! You are signed up as a %s.\n", user.Name, user.Role)
	if user.IsTutor() {
		fmt.Fprintln(cmd.OutOrStdout(), "Take the assessment with `edumarket tutor quiz` to start teaching.")
	}
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	ok, err := application.auth.Login(application.session, loginEmail, loginPassword)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("invalid email or password")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", application.session.User().Name)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := application.auth.Logout(application.session); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	user := application.session.User()
	if user == nil {
		fmt.Fprintln(out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
	fmt.Fprintf(out, "Role: %s\n", user.Role)
	switch {
	case user.StudentProfile != nil:
		fmt.Fprintf(out, "Enrolled courses: %d\n", len(user.EnrolledCourses))
		fmt.Fprintf(out, "Badges: %d\n", len(user.Badges))
		fmt.Fprintf(out, "Streak: %d days\n", user.Streak)
	case user.TutorProfile != nil:
		fmt.Fprintf(out, "Approved: %t (score %.1f/10)\n", user.IsApproved, user.AccessScore)
		fmt.Fprintf(out, "Subjects: %s\n", strings.Join(user.Subjects, ", "))
	}
	return nil
}
