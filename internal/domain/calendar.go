package domain

import "time"

// CalendarEvent 档期日程。超过保留期的日程由定时任务自动清理。
type CalendarEvent struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	EventDate     time.Time `json:"eventDate"` // 只取日期部分
	EventHostName string    `json:"eventHostName"`
	ManagedBy     string    `json:"managedBy"`
	Location      string    `json:"location"`
	Ctime         int64     `json:"ctime"`
}

// AvailabilityState 档期状态
type AvailabilityState string

const (
	AvailabilityAvailable AvailabilityState = "available"
	AvailabilityBusy      AvailabilityState = "busy"
)

func (s AvailabilityState) String() string {
	return string(s)
}

// AvailabilityStatus 某商家在某一天的空闲/繁忙标记
type AvailabilityStatus struct {
	ID     int64             `json:"id"`
	UserID int64             `json:"userId"`
	Date   time.Time         `json:"date"`
	Status AvailabilityState `json:"status"`
}
