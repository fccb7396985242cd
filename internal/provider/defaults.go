package provider

import "github.com/akyairhashvil/conciergerie/internal/models"

// Sample returns the demo data the app ships with.
func Sample() DataSet {
	return DataSet{
		Tasks: []models.Task{
			{ID: "1", Title: "Call with Sarah about project", Type: models.TaskReminder, Time: "2:00 PM",
				Description: "Discuss the new mobile app wireframes and timeline", Status: models.TaskPending, Priority: models.PriorityHigh},
			{ID: "2", Title: "Gym session - Upper body", Type: models.TaskSuggestion, Time: "6:00 PM",
				Description: "You have 2h free. Perfect time for your workout routine!", Status: models.TaskPending, Priority: models.PriorityMedium},
			{ID: "3", Title: "Team meeting conflicts with doctor appointment", Type: models.TaskConflict, Time: "3:00 PM",
				Description: "Both scheduled at the same time. Which one should we keep?", Status: models.TaskPending, Priority: models.PriorityHigh},
			{ID: "4", Title: "Client call - Product demo", Type: models.TaskMissed, Time: "1:00 PM",
				Description: "You missed this important call", Status: models.TaskLapsed, Priority: models.PriorityHigh},
		},
		Suggestions: []models.Suggestion{
			{ID: "1", Title: "Schedule gym time", Type: models.SuggestionSchedule, Priority: models.PriorityMedium, TimeSlot: "6:00 PM - 8:00 PM",
				Description: "You have 2 hours free this evening. Perfect for your workout routine!"},
			{ID: "2", Title: "Resolve meeting conflict", Type: models.SuggestionConflict, Priority: models.PriorityHigh, TimeSlot: "3:00 PM",
				Description: "Team meeting overlaps with doctor appointment. Choose which one to keep."},
			{ID: "3", Title: "Coffee with Sarah", Type: models.SuggestionReminder, Priority: models.PriorityLow, TimeSlot: "Tomorrow 2:00 PM",
				Description: "It's been 2 weeks since you last met. Free slot tomorrow afternoon?"},
			{ID: "4", Title: "Weekly planning session", Type: models.SuggestionHabit, Priority: models.PriorityMedium, TimeSlot: "Sunday 7:00 PM",
				Description: "Sunday evening is free. Great time to plan next week's priorities."},
			{ID: "5", Title: "Visit parents", Type: models.SuggestionReminder, Priority: models.PriorityHigh, TimeSlot: "This weekend",
				Description: "Mom's birthday is next week. Should we plan a visit this weekend?"},
			{ID: "6", Title: "Lunch break meditation", Type: models.SuggestionHabit, Priority: models.PriorityLow, TimeSlot: "12:15 PM - 12:30 PM",
				Description: "You seem stressed lately. 15-minute meditation during lunch?"},
		},
		Today: []models.TodayTask{
			{ID: "1", Title: "Morning workout", Time: "7:00 AM", Status: models.TodayDone, Category: "Health"},
			{ID: "2", Title: "Team standup meeting", Time: "9:30 AM", Status: models.TodayDone, Category: "Work"},
			{ID: "3", Title: "Client call - Project review", Time: "11:00 AM", Status: models.TodayMissed, Category: "Work"},
			{ID: "4", Title: "Lunch with Anna", Time: "12:30 PM", Status: models.TodayTodo, Category: "Personal"},
			{ID: "5", Title: "Doctor appointment", Time: "3:00 PM", Status: models.TodayTodo, Category: "Health"},
			{ID: "6", Title: "Grocery shopping", Time: "5:00 PM", Status: models.TodayTodo, Category: "Personal"},
			{ID: "7", Title: "Evening escalade session", Time: "7:00 PM", Status: models.TodayTodo, Category: "Health"},
		},
		Connections: []models.Connection{
			{ID: "google-calendar", Name: "Google Calendar", Status: models.ConnectionConnected,
				Description: "Sync all your calendar events and meetings", LastSync: "2 minutes ago", Enabled: true},
			{ID: "gmail", Name: "Gmail", Status: models.ConnectionConnected,
				Description: "Extract events and reminders from emails", LastSync: "5 minutes ago", Enabled: true},
			{ID: "whatsapp", Name: "WhatsApp", Status: models.ConnectionDisconnected,
				Description: "Get reminders from chat messages"},
			{ID: "instagram", Name: "Instagram", Status: models.ConnectionError,
				Description: "Track social events and meetups", LastSync: "Failed 1 hour ago"},
			{ID: "sms", Name: "SMS Messages", Status: models.ConnectionDisconnected,
				Description: "Parse appointments from text messages"},
		},
	}
}
