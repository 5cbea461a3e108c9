package service

import (
	"time"

	"go-job-board/internal/model"
)

// StoryService serves the hardcoded success-story listing. No persistence
// and no auth; postedDate is stamped at request time like the original feed.
type StoryService struct{}

func NewStoryService() *StoryService {
	return &StoryService{}
}

func (s *StoryService) List() []model.Story {
	now := time.Now().UTC()
	return []model.Story{
		{
			Name:       "Alice Johnson",
			JobTitle:   "Web Developer",
			Location:   "San Francisco, CA",
			Story:      "Alice found her dream job and has been making impactful contributions to her company's product.",
			PostedDate: now,
			ImageURL:   "https://images.pexels.com/photos/762080/pexels-photo-762080.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		{
			Name:       "Michael Smith",
			JobTitle:   "Data Analyst",
			Location:   "New York, NY",
			Story:      "Michael's passion for data helped him secure a position where he now leads a team of analysts.",
			PostedDate: now,
			ImageURL:   "https://images.pexels.com/photos/819530/pexels-photo-819530.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
		{
			Name:       "Anthony Bloom",
			JobTitle:   "Graphic Designer",
			Location:   "Austin, TX",
			Story:      "Anthony's creativity caught the eye of an advertising agency. He now works internationally.",
			PostedDate: now,
			ImageURL:   "https://images.pexels.com/photos/2102416/pexels-photo-2102416.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
		},
	}
}
