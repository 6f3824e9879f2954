package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"

	apperrors "petclinic/internal/errors"
	"petclinic/internal/handler/mocks"
	"petclinic/internal/model"
	"petclinic/internal/service"
)

func newPetTestServer(t *testing.T) (*mocks.MockPetService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockPetService(ctrl)
	h := NewPetHandler(mockService)
	e, g := newTestEcho(ownerClaims)
	g.POST("/pets", h.Create)
	g.GET("/pets", h.List)
	g.GET("/pets/:id", h.Get)
	g.DELETE("/pets/:id", h.Delete)
	return mockService, e
}

func TestPetHandler_CreateAndList(t *testing.T) {
	mockService, srv := newPetTestServer(t)
	birth := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	rex := model.Pet{ID: 5, OwnerID: 1, Name: "Rex", Species: "dog", Breed: "lab", BirthDate: datatypes.Date(birth)}
	lastVisit := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

	mockService.EXPECT().AddPet(gomock.Any(), gomock.Any(), service.PetInput{
		Name: "Rex", Species: "dog", Breed: "lab", BirthDate: birth,
	}).Return(&rex, nil)
	mockService.EXPECT().ListPets(gomock.Any(), gomock.Any()).Return([]service.PetSummary{
		{Pet: rex, LastVisitDate: &lastVisit},
	}, nil)

	rec := serve(t, srv, http.MethodPost, "/api/pets", `{"name":"Rex","species":"dog","breed":"lab","birthDate":"2020-05-01"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(t, srv, http.MethodGet, "/api/pets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []PetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2020-05-01", got[0].BirthDate)
	require.NotNil(t, got[0].LastVisitDate)
	assert.Equal(t, "2025-11-22", *got[0].LastVisitDate)
}

func TestPetHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(*mocks.MockPetService)
		wantStatus int
		wantCode   string
	}{
		{
			name: "invalid birth date", method: http.MethodPost, path: "/api/pets",
			body:       `{"name":"Rex","species":"dog","breed":"lab","birthDate":"01/05/2020"}`,
			setup:      func(m *mocks.MockPetService) {},
			wantStatus: http.StatusBadRequest, wantCode: "INVALID_DATE",
		},
		{
			name: "foreign pet is hidden", method: http.MethodGet, path: "/api/pets/6",
			setup: func(m *mocks.MockPetService) {
				m.EXPECT().GetPet(gomock.Any(), gomock.Any(), uint(6)).Return(nil, apperrors.ErrPetNotFound)
			},
			wantStatus: http.StatusNotFound, wantCode: "PET_NOT_FOUND",
		},
		{
			name: "delete foreign pet", method: http.MethodDelete, path: "/api/pets/6",
			setup: func(m *mocks.MockPetService) {
				m.EXPECT().DeletePet(gomock.Any(), gomock.Any(), uint(6)).Return(apperrors.ErrNotOwner)
			},
			wantStatus: http.StatusForbidden, wantCode: "NOT_OWNER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, srv := newPetTestServer(t)
			tt.setup(mockService)

			rec := serve(t, srv, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec)["code"])
		})
	}
}
