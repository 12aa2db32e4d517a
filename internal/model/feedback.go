package model

// Feedback is a course feedback entry. The course field is free-form text,
// not a foreign key into the catalogue.
type Feedback struct {
	ID      int    `json:"id"`
	Course  string `json:"course"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateFeedbackRequest is the payload for submitting feedback.
type CreateFeedbackRequest struct {
	Course  string `json:"course" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}
