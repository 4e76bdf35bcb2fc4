package repository

import (
	"github.com/yichuanzhang/booktracker/internal/model"
)

func strPtr(s string) *string { return &s }

// PresetBooks is the catalogue loaded into an empty store on first run.
func PresetBooks() []model.Book {
	return []model.Book{
		{
			Name:           "A Sea of Unspoken Things",
			Author:         "Adrienne Young",
			Image:          "assets/covers/a_sea_of_unspoken_things_mystery.jpg",
			Category:       "Mystery",
			TotalPages:     328,
			CriticalPoints: model.CriticalPoints{{ID: 1, Text: "The Silent Chapter", Page: 1}},
			Review:         strPtr("A gripping mystery novel that explores the depths of human memory and connection."),
		},
		{
			Name:           "All the Water in the World",
			Author:         "Karen Ranney",
			Image:          "assets/covers/all_the_water_in_the_world_science_fiction.jpg",
			Category:       "Science Fiction",
			TotalPages:     456,
			CriticalPoints: model.CriticalPoints{{ID: 2, Text: "The Drought Paradox", Page: 100}},
			Review:         strPtr("A thought-provoking science fiction novel about water scarcity and survival."),
		},
		{
			Name:           "Homeseeking",
			Author:         "Chanel Miller",
			Image:          "assets/covers/homeseeking_historical_fiction.jpg",
			Category:       "Historical Fiction",
			TotalPages:     234,
			CriticalPoints: model.CriticalPoints{{ID: 3, Text: "Finding Belonging", Page: 50}},
			Review:         strPtr("A memoir of resilience and the journey to find one's place in the world."),
		},
		{
			Name:           "The Note",
			Author:         "Unknown",
			Image:          "assets/covers/the_note_mystery.jpg",
			Category:       "Mystery",
			TotalPages:     320,
			CriticalPoints: model.CriticalPoints{{ID: 4, Text: "The Hidden Message", Page: 150}},
			Review:         strPtr("A puzzling mystery that unfolds gradually."),
		},
		{
			Name:           "The Stolen Queen",
			Author:         "Unknown",
			Image:          "assets/covers/the_stolen_queen_historical_fiction.jpg",
			Category:       "Historical Fiction",
			TotalPages:     400,
			CriticalPoints: model.CriticalPoints{{ID: 5, Text: "A Royal Secret", Page: 200}},
			Review:         strPtr("An epic tale of power and betrayal in ancient times."),
		},
		{
			Name:           "The Three-Body Problem",
			Author:         "Liu Cixin",
			Image:          "assets/covers/the_three_body_problem_science_fiction.jpg",
			Category:       "Science Fiction",
			TotalPages:     400,
			CriticalPoints: model.CriticalPoints{{ID: 6, Text: "Cosmic Mystery", Page: 300}},
			Review:         strPtr("A groundbreaking science fiction novel that explores the universe."),
		},
		{
			Name:           "Gone Girl",
			Author:         "Gillian Flynn",
			Image:          "assets/covers/gone_girl_mystery.jpg",
			Category:       "Mystery",
			TotalPages:     432,
			CriticalPoints: model.CriticalPoints{{ID: 7, Text: "Unreliable Narration", Page: 50}},
			Review:         strPtr("A thrilling psychological mystery with unexpected twists."),
		},
		{
			Name:           "Memoirs of a Geisha",
			Author:         "Arthur Golden",
			Image:          "assets/covers/memoirs_of_a_geisha_historical_fiction.jpg",
			Category:       "Historical Fiction",
			TotalPages:     448,
			CriticalPoints: model.CriticalPoints{{ID: 8, Text: "Cultural Secrets", Page: 100}},
			Review:         strPtr("A moving historical saga set in pre-war Japan."),
		},
		{
			Name:           "The Nightingale",
			Author:         "Kristin Hannah",
			Image:          "assets/covers/the_nightingale_historical_fiction.jpg",
			Category:       "Historical Fiction",
			TotalPages:     448,
			CriticalPoints: model.CriticalPoints{{ID: 9, Text: "Resilience in War", Page: 200}},
			Review:         strPtr("An inspiring story of survival and courage during wartime."),
		},
	}
}
