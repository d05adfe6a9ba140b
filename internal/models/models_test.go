package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestSectionPrice(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		sections int
		want     float64
	}{
		{name: "even split", total: 120, sections: 6, want: 20},
		{name: "rounds down", total: 100, sections: 3, want: 33},
		{name: "rounds half up", total: 50, sections: 4, want: 13},
		{name: "zero sections", total: 100, sections: 0, want: 0},
		{name: "free course", total: 0, sections: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SectionPrice(tt.total, tt.sections); got != tt.want {
				t.Errorf("SectionPrice(%v, %d) = %v, want %v", tt.total, tt.sections, got, tt.want)
			}
		})
	}
}

func TestChunkID(t *testing.T) {
	if got := ChunkID("42", 3); got != "42-3" {
		t.Errorf("ChunkID() = %q, want %q", got, "42-3")
	}
}

func TestCourseAddRating(t *testing.T) {
	course := Course{}
	for _, r := range []int{5, 4, 3} {
		course.AddRating(r)
	}
	if course.TotalReviews != 3 {
		t.Errorf("TotalReviews = %d, want 3", course.TotalReviews)
	}
	if course.AverageRating != 4 {
		t.Errorf("AverageRating = %v, want 4", course.AverageRating)
	}

	seeded := Course{AverageRating: 4.8, TotalReviews: 156}
	seeded.AddRating(1)
	if seeded.TotalReviews != 157 {
		t.Errorf("TotalReviews = %d, want 157", seeded.TotalReviews)
	}
	want := (4.8*156 + 1) / 157
	if seeded.AverageRating != want {
		t.Errorf("AverageRating = %v, want %v", seeded.AverageRating, want)
	}
}

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		completed, total int
		want             float64
	}{
		{0, 4, 0},
		{1, 4, 25},
		{4, 4, 100},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := CompletionPercentage(tt.completed, tt.total); got != tt.want {
			t.Errorf("CompletionPercentage(%d, %d) = %v, want %v", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestUserProgressMarkCompleted(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	p := UserProgress{UserID: "u1", CourseID: "1", CompletedChunks: []string{}}

	if !p.MarkCompleted("1-1", 2, now) {
		t.Fatal("first completion should be recorded")
	}
	if p.CompletionPercentage != 50 {
		t.Errorf("CompletionPercentage = %v, want 50", p.CompletionPercentage)
	}

	later := now.Add(time.Hour)
	if p.MarkCompleted("1-1", 2, later) {
		t.Error("repeated completion should not be recorded twice")
	}
	if len(p.CompletedChunks) != 1 {
		t.Errorf("CompletedChunks = %v, want one entry", p.CompletedChunks)
	}
	if !p.LastAccessed.Equal(later) {
		t.Errorf("LastAccessed = %v, want %v", p.LastAccessed, later)
	}

	p.MarkCompleted("1-2", 2, later)
	if !p.IsComplete() {
		t.Error("progress should be complete after every chunk")
	}
}

func TestUserRoles(t *testing.T) {
	student := &User{Role: RoleStudent, StudentProfile: NewStudentProfile()}
	tutor := &User{Role: RoleTutor, TutorProfile: NewTutorProfile()}
	var nobody *User

	if !student.IsStudent() || student.IsTutor() {
		t.Error("student role helpers disagree")
	}
	if !tutor.IsTutor() || tutor.IsApprovedTutor() {
		t.Error("new tutor should be unapproved")
	}
	tutor.IsApproved = true
	if !tutor.IsApprovedTutor() {
		t.Error("approved tutor not reported")
	}
	if nobody.IsStudent() || nobody.IsTutor() || nobody.IsEnrolled("1") || nobody.HasBadge("1") {
		t.Error("nil user should have no role")
	}
	if Role("admin").Valid() {
		t.Error("unknown role reported valid")
	}
}

func TestUserEnrollmentAndBadges(t *testing.T) {
	u := &User{Role: RoleStudent, StudentProfile: NewStudentProfile()}
	u.EnrolledCourses = append(u.EnrolledCourses, "1")
	u.Badges = append(u.Badges, "2")

	if !u.IsEnrolled("1") || u.IsEnrolled("2") {
		t.Errorf("IsEnrolled mismatch for %v", u.EnrolledCourses)
	}
	if !u.HasBadge("2") || u.HasBadge("1") {
		t.Errorf("HasBadge mismatch for %v", u.Badges)
	}
}

func TestUserCloneIsDeep(t *testing.T) {
	orig := &User{ID: "u1", Role: RoleStudent, StudentProfile: NewStudentProfile()}
	orig.EnrolledCourses = append(orig.EnrolledCourses, "1")

	c := orig.Clone()
	c.EnrolledCourses[0] = "changed"
	c.Streak = 9

	if orig.EnrolledCourses[0] != "1" {
		t.Error("clone shares the enrolled courses slice")
	}
	if orig.Streak != 0 {
		t.Error("clone shares the student profile")
	}
}

func TestUserJSONFlattensProfile(t *testing.T) {
	student := User{
		ID:             "u1",
		Email:          "a@x.com",
		Role:           RoleStudent,
		Name:           "A",
		StudentProfile: NewStudentProfile(),
	}

	data, err := json.Marshal(student)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(data)
	for _, want := range []string{`"enrolledCourses":[]`, `"badges":[]`, `"streak":0`, `"role":"student"`} {
		if !strings.Contains(s, want) {
			t.Errorf("encoded user %s missing %s", s, want)
		}
	}
	if strings.Contains(s, "isApproved") {
		t.Errorf("student encoding carries tutor fields: %s", s)
	}

	var decoded User
	if err := json.Unmarshal([]byte(`{"id":"t1","role":"tutor","subjects":["Math"],"isApproved":true,"accessScore":8}`), &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.TutorProfile == nil || decoded.StudentProfile != nil {
		t.Fatalf("decoded tutor profiles = %+v / %+v", decoded.TutorProfile, decoded.StudentProfile)
	}
	if !decoded.IsApprovedTutor() || decoded.AccessScore != 8 {
		t.Errorf("decoded tutor = %+v", decoded.TutorProfile)
	}
}
