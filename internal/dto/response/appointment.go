package response

import "time"

type AppointmentResponse struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Service        string    `json:"service"`
	Status         string    `json:"status"`
	CalendarLink   string    `json:"calendar_link,omitempty"`
	AttachmentURLs []string  `json:"attachment_urls,omitempty"`
	Warnings       []string  `json:"warnings,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
