package api

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amelnikov/learnly/internal/client/models"
)

// CourseAPI groups the catalog, enrollment and video endpoints. These carry
// no session logic of their own; they ride the same authenticated transport.
type CourseAPI struct {
	c *Client
}

// NewCourseAPI binds the course endpoints to the given transport.
func NewCourseAPI(c *Client) *CourseAPI {
	return &CourseAPI{c: c}
}

// CreateCourseRequest is the body of POST /course/create.
type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsPremium   bool    `json:"isPremium"`
}

// Courses lists the full catalog.
func (s *CourseAPI) Courses(ctx context.Context) ([]models.Course, error) {
	var resp models.APIResponse[[]models.Course]
	if err := s.c.Get(ctx, "/course/all", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Course fetches a single course by id.
func (s *CourseAPI) Course(ctx context.Context, id int64) (*models.Course, error) {
	var resp models.APIResponse[models.Course]
	if err := s.c.Get(ctx, fmt.Sprintf("/course/id/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UserCourses lists the courses belonging to the authenticated user.
func (s *CourseAPI) UserCourses(ctx context.Context) ([]models.Course, error) {
	var resp models.APIResponse[[]models.Course]
	if err := s.c.Get(ctx, "/course/user", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateCourse adds a course to the catalog (admin only).
func (s *CourseAPI) CreateCourse(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	var resp models.APIResponse[models.Course]
	if err := s.c.Post(ctx, "/course/create", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CourseVideos lists the lessons of a course in playback order.
func (s *CourseAPI) CourseVideos(ctx context.Context, courseID int64) ([]models.Video, error) {
	var resp models.APIResponse[[]models.Video]
	if err := s.c.Get(ctx, fmt.Sprintf("/videos/course/%d", courseID), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Enroll enrolls the authenticated user in a course.
func (s *CourseAPI) Enroll(ctx context.Context, courseID int64) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.c.Post(ctx, fmt.Sprintf("/courses/%d/enroll", courseID), nil, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// IsEnrolled checks whether the authenticated user is enrolled in a course.
func (s *CourseAPI) IsEnrolled(ctx context.Context, courseID int64) (bool, error) {
	var resp struct {
		Enrolled bool `json:"enrolled"`
	}
	if err := s.c.Get(ctx, fmt.Sprintf("/courses/%d/enrollment", courseID), &resp); err != nil {
		return false, err
	}
	return resp.Enrolled, nil
}

// MyEnrollments lists the authenticated user's enrollments.
func (s *CourseAPI) MyEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	var resp models.APIResponse[[]models.Enrollment]
	if err := s.c.Get(ctx, "/enrollments/my", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateProgress records how far the user has watched a video.
func (s *CourseAPI) UpdateProgress(ctx context.Context, courseID, videoID int64, progress float64) (*models.VideoProgress, error) {
	body := struct {
		Progress float64 `json:"progress"`
	}{Progress: progress}

	var vp models.VideoProgress
	path := fmt.Sprintf("/courses/%d/videos/%d/progress", courseID, videoID)
	if err := s.c.Post(ctx, path, body, &vp); err != nil {
		return nil, err
	}
	return &vp, nil
}

// UploadVideo streams a video file to a course as multipart/form-data.
// orderIndex < 0 lets the backend append at the end.
func (s *CourseAPI) UploadVideo(ctx context.Context, courseID int64, title string, orderIndex int, fileName string, r io.Reader) (*models.Video, error) {
	fields := map[string]string{"title": title}
	if orderIndex >= 0 {
		fields["orderIndex"] = strconv.Itoa(orderIndex)
	}

	var resp models.APIResponse[models.Video]
	path := fmt.Sprintf("/videos/upload/%d", courseID)
	if err := s.c.PostMultipart(ctx, path, fields, "file", fileName, r, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// PlaybackURL joins the CDN base URL with a video's object key. Playback is
// plain progressive download of that URL.
func PlaybackURL(cdnBaseURL string, v models.Video) string {
	return strings.TrimRight(cdnBaseURL, "/") + "/" + strings.TrimLeft(v.ObjectKey, "/")
}
