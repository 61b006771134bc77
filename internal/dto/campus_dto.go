package dto

type EventDTO struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Description *string `json:"description,omitempty"`
}

type DeadlineDTO struct {
	Id          string  `json:"id"`
	Title       string  `json:"title"`
	DueDate     string  `json:"dueDate"`
	Course      *string `json:"course,omitempty"`
	Urgency     string  `json:"urgency"`
	Description *string `json:"description,omitempty"`
}

type TutoringSessionDTO struct {
	Id           string `json:"id"`
	Tutor        string `json:"tutor"`
	Subject      string `json:"subject"`
	Time         string `json:"time"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
}
