package api

import (
	"errors"
	"net/http"

	reqdto "petcare-booking/internal/handler/dto/request"
	resdto "petcare-booking/internal/handler/dto/response"
	"petcare-booking/internal/handler/middleware"
	"petcare-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PetHandler struct {
	petUseCase usecase.PetUseCase
}

func NewPetHandler(petUseCase usecase.PetUseCase) *PetHandler {
	return &PetHandler{
		petUseCase: petUseCase,
	}
}

// @Summary List pets
// @Description Pets owned by the authenticated user
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PetResponse
// @Failure 401 {object} map[string]string
// @Router /pets [get]
func (h *PetHandler) ListPets(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.petUseCase.ListPets(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetViews(views))
}

// @Summary Add pet
// @Description Register a pet profile for the authenticated user
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PetRequest true "Pet profile"
// @Success 201 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pets [post]
func (h *PetHandler) AddPet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.petUseCase.AddPet(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPetData):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid pet data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPetView(view))
}

// @Summary Update pet
// @Description Replace the profile of an owned pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Param request body reqdto.PetRequest true "Pet profile"
// @Success 200 {object} resdto.PetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pets/{id} [put]
func (h *PetHandler) UpdatePet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pet ID format",
		})
		return
	}

	var req reqdto.PetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.petUseCase.UpdatePet(c.Request.Context(), userID, petID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPetNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pet not found",
			})
		case errors.Is(err, usecase.ErrInvalidPetData):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid pet data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPetView(view))
}

// @Summary Delete pet
// @Description Remove an owned pet; deleting an absent pet is a no-op
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pet ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /pets/{id} [delete]
func (h *PetHandler) DeletePet(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pet ID format",
		})
		return
	}

	if err := h.petUseCase.DeletePet(c.Request.Context(), userID, petID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
