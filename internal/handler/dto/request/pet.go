package request

import "petcare-booking/internal/usecase"

type PetRequest struct {
	Name     string `json:"name" binding:"required"`
	Breed    string `json:"breed" binding:"required"`
	Age      *int   `json:"age" binding:"required,gte=0"`
	PhotoURL string `json:"photo_url,omitempty"`
}

func (r PetRequest) ToParams() usecase.PetParams {
	return usecase.PetParams{
		Name:     r.Name,
		Breed:    r.Breed,
		Age:      *r.Age,
		PhotoURL: r.PhotoURL,
	}
}
