package models

// Course is a catalog entry. Videos is populated only by endpoints that
// return the course together with its lesson list.
type Course struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsPremium   bool    `json:"isPremium"`
	CreatedAt   string  `json:"createdAt"`
	Videos      []Video `json:"videos,omitempty"`
}

// Video is a single lesson. ObjectKey addresses the file on the CDN.
type Video struct {
	ID            int64  `json:"id"`
	CourseID      int64  `json:"courseId"`
	Title         string `json:"title"`
	ObjectKey     string `json:"s3ObjectKey"`
	OrderIndex    int    `json:"orderIndex"`
	FileSizeBytes int64  `json:"fileSizeBytes,omitempty"`
}

// Enrollment links a user to a course, denormalized with course details
// so enrollment lists render without extra lookups.
type Enrollment struct {
	ID                int64   `json:"id"`
	UserID            int64   `json:"userId"`
	CourseID          int64   `json:"courseId"`
	EnrolledAt        string  `json:"enrolledAt"`
	IsPremium         bool    `json:"isPremium"`
	CourseTitle       string  `json:"courseTitle"`
	CourseDescription string  `json:"courseDescription"`
	CoursePrice       float64 `json:"coursePrice"`
}

// VideoProgress records how far a user has watched a video, as a fraction
// in [0,1].
type VideoProgress struct {
	VideoID     int64   `json:"videoId"`
	CourseID    int64   `json:"courseId"`
	Progress    float64 `json:"progress"`
	LastWatched string  `json:"lastWatched"`
}

// APIResponse is the generic envelope the backend wraps list/detail
// payloads in.
type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}
