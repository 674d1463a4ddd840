package notifier

import "time"

// BookingNotification задание для сервиса рассылки о новом бронировании
type BookingNotification struct {
	BookingID  int64     `json:"bookingId"`
	CourseName string    `json:"courseName"`
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
}
