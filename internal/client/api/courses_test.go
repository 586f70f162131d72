package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amelnikov/learnly/internal/client/models"
)

// newRecordingServer serves canned JSON and records the last request line.
func newRecordingServer(t *testing.T, body string) (*httptest.Server, *http.Request) {
	t.Helper()
	last := &http.Request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*last = *r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, last
}

func TestCourseAPI_Courses(t *testing.T) {
	srv, last := newRecordingServer(t, `{"success":true,"data":[{"id":1,"title":"Go Basics"},{"id":2,"title":"SQL"}]}`)
	api := NewCourseAPI(New(srv.URL, nil, testLogger()))

	courses, err := api.Courses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/course/all", last.URL.Path)
	require.Len(t, courses, 2)
	assert.Equal(t, "Go Basics", courses[0].Title)
}

func TestCourseAPI_Course(t *testing.T) {
	srv, last := newRecordingServer(t, `{"success":true,"data":{"id":7,"title":"Go Basics"}}`)
	api := NewCourseAPI(New(srv.URL, nil, testLogger()))

	course, err := api.Course(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "/course/id/7", last.URL.Path)
	assert.Equal(t, int64(7), course.ID)
}

func TestCourseAPI_UserCoursesAndCreate(t *testing.T) {
	srv, last := newRecordingServer(t, `{"success":true,"data":[{"id":3,"title":"Mine"}]}`)
	api := NewCourseAPI(New(srv.URL, nil, testLogger()))
	ctx := context.Background()

	courses, err := api.UserCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/course/user", last.URL.Path)
	require.Len(t, courses, 1)

	srv2, last2 := newRecordingServer(t, `{"success":true,"data":{"id":8,"title":"New"}}`)
	api2 := NewCourseAPI(New(srv2.URL, nil, testLogger()))
	course, err := api2.CreateCourse(ctx, CreateCourseRequest{Title: "New", Price: 9.99, IsPremium: true})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, last2.Method)
	assert.Equal(t, "/course/create", last2.URL.Path)
	assert.Equal(t, int64(8), course.ID)
}

func TestCourseAPI_CourseVideos(t *testing.T) {
	srv, last := newRecordingServer(t, `{"success":true,"data":[{"id":1,"title":"Intro","orderIndex":0,"s3ObjectKey":"videos/1/intro.mp4"}]}`)
	api := NewCourseAPI(New(srv.URL, nil, testLogger()))

	videos, err := api.CourseVideos(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "/videos/course/7", last.URL.Path)
	require.Len(t, videos, 1)
	assert.Equal(t, "videos/1/intro.mp4", videos[0].ObjectKey)
}

func TestCourseAPI_EnrollAndCheck(t *testing.T) {
	srv, last := newRecordingServer(t, `{"id":5,"courseId":7}`)
	api := NewCourseAPI(New(srv.URL, nil, testLogger()))

	enrollment, err := api.Enroll(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/courses/7/enroll", last.URL.Path)
	assert.Equal(t, int64(5), enrollment.ID)

	srv2, last2 := newRecordingServer(t, `{"enrolled":true}`)
	api2 := NewCourseAPI(New(srv2.URL, nil, testLogger()))
	enrolled, err := api2.IsEnrolled(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "/courses/7/enrollment", last2.URL.Path)
	assert.True(t, enrolled)
}

func TestCourseAPI_UpdateProgress(t *testing.T) {
	srv, last := newRecordingServer(t, `{"videoId":3,"progress":42.5}`)
	api := NewCourseAPI(New(srv.URL, nil, testLogger()))

	vp, err := api.UpdateProgress(context.Background(), 7, 3, 42.5)
	require.NoError(t, err)
	assert.Equal(t, "/courses/7/videos/3/progress", last.URL.Path)
	assert.Equal(t, 42.5, vp.Progress)
}

func TestCourseAPI_UploadVideo_OmitsNegativeOrderIndex(t *testing.T) {
	var gotOrder []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotOrder = r.MultipartForm.Value["orderIndex"]
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":9,"title":"Intro"}}`))
	}))
	defer srv.Close()

	api := NewCourseAPI(New(srv.URL, nil, testLogger()))
	video, err := api.UploadVideo(context.Background(), 7, "Intro", -1, "intro.mp4", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Empty(t, gotOrder)
	assert.Equal(t, int64(9), video.ID)
}

func TestPlaybackURL(t *testing.T) {
	tests := []struct {
		base string
		key  string
		want string
	}{
		{"http://cdn.example.com", "videos/1/intro.mp4", "http://cdn.example.com/videos/1/intro.mp4"},
		{"http://cdn.example.com/", "videos/1/intro.mp4", "http://cdn.example.com/videos/1/intro.mp4"},
		{"http://cdn.example.com/", "/videos/1/intro.mp4", "http://cdn.example.com/videos/1/intro.mp4"},
	}
	for _, tt := range tests {
		got := PlaybackURL(tt.base, models.Video{ObjectKey: tt.key})
		assert.Equal(t, tt.want, got)
	}
}

func TestAuthAPI_Paths(t *testing.T) {
	srv, last := newRecordingServer(t, `{"token":"tok1","user":{"email":"a@b.com","firstname":"A","lastname":"B","role":"user"}}`)
	api := NewAuthAPI(New(srv.URL, nil, testLogger()))
	ctx := context.Background()

	resp, err := api.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/auth/login", last.URL.Path)
	assert.Equal(t, "tok1", resp.Token)
	assert.Equal(t, "a@b.com", resp.User.Email)

	_, err = api.Register(ctx, models.RegisterRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "/auth/signup", last.URL.Path)

	_, err = api.UpdateProfile(ctx, models.User{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, last.Method)
	assert.Equal(t, "/auth/updateprofile", last.URL.Path)
}

func TestAuthAPI_ProfileEndpoints(t *testing.T) {
	srv, last := newRecordingServer(t, `{"email":"a@b.com","firstname":"A","lastname":"B","role":"user"}`)
	api := NewAuthAPI(New(srv.URL, nil, testLogger()))
	ctx := context.Background()

	user, err := api.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/auth/profile", last.URL.Path)
	assert.Equal(t, "a@b.com", user.Email)

	user, err = api.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/users/me", last.URL.Path)
	assert.Equal(t, "A", user.FirstName)
}
