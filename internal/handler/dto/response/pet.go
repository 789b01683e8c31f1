package response

import (
	"time"

	"petcare-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PetResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	PhotoURL  string    `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromPetView(v *usecase.PetView) *PetResponse {
	var resp PetResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromPetViews(views []*usecase.PetView) []*PetResponse {
	out := make([]*PetResponse, len(views))
	for i, v := range views {
		out[i] = FromPetView(v)
	}
	return out
}
