package volunteering

import (
	"ZamCare/internal/auth"
	"ZamCare/pkg/apperr"
	"ZamCare/pkg/response"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VolunteeringHandler struct {
	service *VolunteeringService
}

func NewVolunteeringHandler(service *VolunteeringService) *VolunteeringHandler {
	return &VolunteeringHandler{service: service}
}

// Task handlers

func (h *VolunteeringHandler) GetTasks(c echo.Context) error {
	tasks, err := h.service.ListTasks(c.Request().Context())
	if err != nil {
		return response.Err(c, err)
	}
	return response.List(c, tasks, len(tasks))
}

func (h *VolunteeringHandler) GetTask(c echo.Context) error {
	task, err := h.service.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, task)
}

func (h *VolunteeringHandler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	task, err := h.service.CreateTask(c.Request().Context(), req)
	if err != nil {
		return response.Err(c, err)
	}
	return response.Created(c, task)
}

func (h *VolunteeringHandler) UpdateTask(c echo.Context) error {
	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	task, err := h.service.UpdateTask(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, task)
}

func (h *VolunteeringHandler) AssignVolunteer(c echo.Context) error {
	var req AssignVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	task, err := h.service.AssignVolunteer(c.Request().Context(), c.Param("id"), req.VolunteerID)
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, task)
}

// Volunteer handlers

func (h *VolunteeringHandler) GetVolunteers(c echo.Context) error {
	volunteers, err := h.service.ListVolunteers(c.Request().Context())
	if err != nil {
		return response.Err(c, err)
	}
	return response.List(c, volunteers, len(volunteers))
}

func (h *VolunteeringHandler) GetVolunteer(c echo.Context) error {
	volunteer, err := h.service.GetVolunteer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, volunteer)
}

func (h *VolunteeringHandler) CreateVolunteer(c echo.Context) error {
	var req CreateVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}

	// Public route with optional auth: link the applicant's account if known.
	var userID *primitive.ObjectID
	if claims, ok := auth.ClaimsFrom(c); ok {
		if oid, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
			userID = &oid
		}
	}

	volunteer, err := h.service.CreateVolunteer(c.Request().Context(), req, userID)
	if err != nil {
		return response.Err(c, err)
	}
	return response.Created(c, volunteer)
}

func (h *VolunteeringHandler) UpdateVolunteer(c echo.Context) error {
	var req UpdateVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	volunteer, err := h.service.UpdateVolunteer(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, volunteer)
}

func (h *VolunteeringHandler) LogHours(c echo.Context) error {
	var req LogHoursRequest
	if err := c.Bind(&req); err != nil {
		return response.Err(c, apperr.New(apperr.Validation, "Invalid request"))
	}
	total, err := h.service.LogHours(c.Request().Context(), c.Param("id"), req.Hours.String())
	if err != nil {
		return response.Err(c, err)
	}
	return response.OK(c, map[string]float64{"totalHours": total})
}
