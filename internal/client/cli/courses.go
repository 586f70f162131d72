package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/amelnikov/learnly/internal/client/api"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func (a *App) coursesCmd(ctx context.Context) {
	courses, err := a.courses.Courses(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	if len(courses) == 0 {
		fmt.Fprintln(a.out, "No courses available.")
		return
	}
	for _, c := range courses {
		premium := ""
		if c.IsPremium {
			premium = " [premium]"
		}
		fmt.Fprintf(a.out, "%4d  %-40s $%.2f%s\n", c.ID, c.Title, c.Price, premium)
	}
}

func (a *App) courseCmd(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: course <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	course, err := a.courses.Course(ctx, id)
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "%s\n%s\nPrice: $%.2f\n", course.Title, course.Description, course.Price)

	enrolled, err := a.courses.IsEnrolled(ctx, id)
	if err == nil && enrolled {
		fmt.Fprintln(a.out, "You are enrolled in this course.")
	}
}

func (a *App) videosCmd(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: videos <courseID>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	videos, err := a.courses.CourseVideos(ctx, id)
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	if len(videos) == 0 {
		fmt.Fprintln(a.out, "No videos in this course yet.")
		return
	}
	for _, v := range videos {
		fmt.Fprintf(a.out, "%4d  %2d. %s\n", v.ID, v.OrderIndex, v.Title)
	}
}

func (a *App) enrollCmd(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: enroll <courseID>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	enrollment, err := a.courses.Enroll(ctx, id)
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Enrolled in %q.\n", enrollment.CourseTitle)
}

func (a *App) enrollmentsCmd(ctx context.Context) {
	enrollments, err := a.courses.MyEnrollments(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	if len(enrollments) == 0 {
		fmt.Fprintln(a.out, "You are not enrolled in any courses.")
		return
	}
	for _, e := range enrollments {
		fmt.Fprintf(a.out, "%4d  %-40s enrolled %s\n", e.CourseID, e.CourseTitle, e.EnrolledAt)
	}
}

// playCmd prints the progressive-download URL for a video; playback itself
// is whatever player the user points at it.
func (a *App) playCmd(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: play <courseID> <videoID>")
		return
	}
	courseID, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	videoID, err := parseID(args[1])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	videos, err := a.courses.CourseVideos(ctx, courseID)
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	for _, v := range videos {
		if v.ID == videoID {
			fmt.Fprintln(a.out, api.PlaybackURL(a.config.CDNBaseURL, v))
			return
		}
	}
	fmt.Fprintln(a.out, "Video not found in that course.")
}

func (a *App) progressCmd(ctx context.Context, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(a.out, "Usage: progress <courseID> <videoID> <percent>")
		return
	}
	courseID, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	videoID, err := parseID(args[1])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	pct, err := strconv.ParseFloat(args[2], 64)
	if err != nil || pct < 0 || pct > 100 {
		fmt.Fprintln(a.out, "Percent must be a number between 0 and 100.")
		return
	}

	vp, err := a.courses.UpdateProgress(ctx, courseID, videoID, pct/100)
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Progress saved: %.0f%%\n", vp.Progress*100)
}

func (a *App) newCourseCmd(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "Course title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	priceStr, err := GetSimpleText(a.reader, "Price", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Price must be a number.")
		return
	}

	course, err := a.courses.CreateCourse(ctx, api.CreateCourseRequest{
		Title:       title,
		Description: description,
		Price:       price,
		IsPremium:   price > 0,
	})
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Course %d created.\n", course.ID)
}

func (a *App) uploadCmd(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: upload <courseID> <file>")
		return
	}
	courseID, err := parseID(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	f, err := os.Open(args[1])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer f.Close()

	name := filepath.Base(args[1])
	title, err := GetSimpleText(a.reader, fmt.Sprintf("Video title [%s]", name), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if title == "" {
		title = name
	}

	video, err := a.courses.UploadVideo(ctx, courseID, title, -1, name, f)
	if err != nil {
		a.reportError(ctx, err)
		return
	}
	fmt.Fprintf(a.out, "Uploaded video %d (%s).\n", video.ID, video.Title)
}
