package memory

import (
	"context"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

// SeedDemoData loads the demo campus records the client renders on first
// start. Only the in-memory store is seeded; a configured database is
// assumed to be managed externally.
func SeedDemoData(
	ctx context.Context,
	events contract.EventRepository,
	deadlines contract.DeadlineRepository,
	tutoring contract.TutoringSessionRepository,
) error {
	demoEvents := []*entity.Event{
		{
			Id:          uuid.New(),
			Title:       "AI Workshop: Building Campus Apps",
			Date:        "Oct 30, 2025",
			Time:        "2:00 PM - 4:00 PM",
			Location:    "Engineering Building, Room 205",
			Category:    "Academic",
			Description: strPtr("Learn how to build AI-powered applications for campus use."),
		},
		{
			Id:          uuid.New(),
			Title:       "Career Fair 2025",
			Date:        "Nov 5, 2025",
			Time:        "10:00 AM - 4:00 PM",
			Location:    "Student Center, Main Hall",
			Category:    "Career",
			Description: strPtr("Meet with top employers and explore internship opportunities."),
		},
		{
			Id:       uuid.New(),
			Title:    "Fall Concert Series",
			Date:     "Nov 8, 2025",
			Time:     "7:00 PM - 9:00 PM",
			Location: "Performing Arts Center",
			Category: "Arts",
		},
	}

	demoDeadlines := []*entity.Deadline{
		{
			Id:          uuid.New(),
			Title:       "Project Proposal Submission",
			DueDate:     "Oct 28, 2025 11:59 PM",
			Course:      strPtr("CS 401: Senior Capstone"),
			Urgency:     "today",
			Description: strPtr("Submit your final project proposal."),
		},
		{
			Id:      uuid.New(),
			Title:   "Midterm Exam",
			DueDate: "Nov 2, 2025 2:00 PM",
			Course:  strPtr("MATH 301: Linear Algebra"),
			Urgency: "thisWeek",
		},
	}

	demoTutoring := []*entity.TutoringSession{
		{
			Id:           uuid.New(),
			Tutor:        "Dr. Sarah Johnson",
			Subject:      "Calculus I & II",
			Time:         "Today, 2:00 PM - 4:00 PM",
			Location:     "Building A, Room 305",
			Availability: "Available",
		},
		{
			Id:           uuid.New(),
			Tutor:        "Prof. Michael Chen",
			Subject:      "Computer Science",
			Time:         "Tomorrow, 3:00 PM - 5:00 PM",
			Location:     "CS Lab, Room 120",
			Availability: "Limited",
		},
	}

	for _, e := range demoEvents {
		if err := events.Create(ctx, e); err != nil {
			return err
		}
	}
	for _, d := range demoDeadlines {
		if err := deadlines.Create(ctx, d); err != nil {
			return err
		}
	}
	for _, t := range demoTutoring {
		if err := tutoring.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
