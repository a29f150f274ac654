package dto

import (
	"hotelops/internal/domains/feedback/model"
	"hotelops/shared"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// CreateFeedbackRequest binds both guest_name and guestName style payloads; keys are
// normalised before decoding.
type CreateFeedbackRequest struct {
	GuestName  string `json:"guest_name"  validate:"required,max=100"`
	Email      string `json:"email"       validate:"required,email"`
	RoomNumber string `json:"room_number" validate:"omitempty,max=10"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	Category   string `json:"category"    validate:"required,oneof=service cleanliness food amenities other"`
	Comments   string `json:"comments"    validate:"required,max=2000"`
}

func (c *CreateFeedbackRequest) ToModel(user string) model.Feedback {
	return model.Feedback{
		ID:         uuid.NewString(),
		GuestName:  strings.TrimSpace(c.GuestName),
		Email:      strings.ToLower(strings.TrimSpace(c.Email)),
		RoomNumber: strings.TrimSpace(c.RoomNumber),
		Rating:     c.Rating,
		Category:   c.Category,
		Comments:   strings.TrimSpace(c.Comments),
		Metadata:   gModel.NewMetadata(user),
	}
}

type FeedbackResponse struct {
	ID         string `json:"id"`
	GuestName  string `json:"guest_name"`
	Email      string `json:"email"`
	RoomNumber string `json:"room_number,omitempty"`
	Rating     int    `json:"rating"`
	Category   string `json:"category"`
	Comments   string `json:"comments"`
	gDto.Metadata
}

func (r *FeedbackResponse) FromModel(model model.Feedback) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.Email = model.Email
	r.RoomNumber = model.RoomNumber
	r.Rating = model.Rating
	r.Category = model.Category
	r.Comments = model.Comments
	r.Metadata.FromModel(model.Metadata)
}

type GetFeedbackResponse struct {
	Feedback  []FeedbackResponse `json:"feedback"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetFeedbackResponse) FromModels(models []model.Feedback, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Feedback = make([]FeedbackResponse, len(models))
	for i, m := range models {
		r.Feedback[i].FromModel(m)
	}
}

type SummaryResponse struct {
	TotalFeedback int            `json:"total_feedback"`
	AverageRating float64        `json:"average_rating"`
	Ratings       map[string]int `json:"ratings"`
}

// FromCounts fills every rating from 1 to 5, including those nobody gave.
func (r *SummaryResponse) FromCounts(counts []model.RatingCount) {
	r.Ratings = make(map[string]int, model.MaxRating)
	for rating := model.MinRating; rating <= model.MaxRating; rating++ {
		r.Ratings[strconv.Itoa(rating)] = 0
	}

	sum := 0

	for _, count := range counts {
		r.Ratings[strconv.Itoa(count.Rating)] = count.Total
		r.TotalFeedback += count.Total
		sum += count.Rating * count.Total
	}

	if r.TotalFeedback == 0 {
		return
	}

	r.AverageRating = math.Round(float64(sum)/float64(r.TotalFeedback)*100) / 100 //nolint:mnd
}
