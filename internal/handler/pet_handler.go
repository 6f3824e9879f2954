package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"petclinic/internal/errors"
	"petclinic/internal/model"
	"petclinic/internal/service"
)

//go:generate mockgen -source=../service/pet_service.go -destination=mocks/pet_service_mock.go -package=mocks PetService

const dateLayout = "2006-01-02"

// PetHandler handles pet endpoints.
type PetHandler struct {
	petService service.PetService
}

// NewPetHandler creates a new pet handler.
func NewPetHandler(petService service.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

// PetRequest represents a pet registration request.
type PetRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Species   string `json:"species" validate:"required,max=50"`
	Breed     string `json:"breed" validate:"required,max=100"`
	BirthDate string `json:"birthDate" validate:"required" example:"2020-05-01"`
}

// PetResponse is the public view of a pet.
type PetResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Species       string  `json:"species"`
	Breed         string  `json:"breed"`
	BirthDate     string  `json:"birthDate"`
	LastVisitDate *string `json:"lastVisitDate,omitempty"`
}

func newPetResponse(p *model.Pet, lastVisit *time.Time) PetResponse {
	resp := PetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		BirthDate: time.Time(p.BirthDate).Format(dateLayout),
	}
	if lastVisit != nil {
		formatted := lastVisit.Format(dateLayout)
		resp.LastVisitDate = &formatted
	}
	return resp
}

// Create godoc
// @Summary Register a pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PetRequest true "Pet data"
// @Success 201 {object} PetResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /pets [post]
func (h *PetHandler) Create(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req PetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	birth, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "birthDate must look like 2020-05-01",
			Code:  "INVALID_DATE",
		})
	}

	pet, err := h.petService.AddPet(c.Request().Context(), p, service.PetInput{
		Name:      req.Name,
		Species:   req.Species,
		Breed:     req.Breed,
		BirthDate: birth,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, newPetResponse(pet, nil))
}

// List godoc
// @Summary List the caller's pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} PetResponse
// @Router /pets [get]
func (h *PetHandler) List(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	pets, err := h.petService.ListPets(c.Request().Context(), p)
	if err != nil {
		return domainError(err)
	}
	resp := make([]PetResponse, 0, len(pets))
	for i := range pets {
		resp = append(resp, newPetResponse(&pets[i].Pet, pets[i].LastVisitDate))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get one of the caller's pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} PetResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /pets/{id} [get]
func (h *PetHandler) Get(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	pet, err := h.petService.GetPet(c.Request().Context(), p, id)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, newPetResponse(pet, nil))
}

// Delete godoc
// @Summary Delete a pet with its appointments and medical records
// @Tags pets
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /pets/{id} [delete]
func (h *PetHandler) Delete(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.petService.DeletePet(c.Request().Context(), p, id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
