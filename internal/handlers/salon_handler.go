package handlers

import (
	"fmt"
	"log"
	"strings"

	"salonstore/internal/models"
	"salonstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SalonHandler handles HTTP requests for salon administration: salons,
// their staff and the treatments they offer.
type SalonHandler struct {
	service  *services.SalonService
	validate *validator.Validate
}

// NewSalonHandler creates a new SalonHandler.
func NewSalonHandler(service *services.SalonService) *SalonHandler {
	return &SalonHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public salon read routes.
func (h *SalonHandler) RegisterRoutes(router fiber.Router) {
	salonRoutes := router.Group("/salons")
	salonRoutes.Get("/", h.HandleGetSalons)
	salonRoutes.Get("/:id", h.HandleGetSalonByID)
	salonRoutes.Get("/:id/staff", h.HandleGetStaff)
	salonRoutes.Get("/:id/treatments", h.HandleGetTreatments)
}

// RegisterAdminRoutes registers the salon mutation routes, intended to be
// mounted behind authentication.
func (h *SalonHandler) RegisterAdminRoutes(router fiber.Router) {
	salonRoutes := router.Group("/salons")
	salonRoutes.Post("/", h.HandleCreateSalon)
	salonRoutes.Put("/:id", h.HandleUpdateSalon)
	salonRoutes.Delete("/:id", h.HandleDeleteSalon)
	salonRoutes.Post("/:id/staff", h.HandleCreateStaff)
	salonRoutes.Post("/:id/treatments", h.HandleCreateTreatment)

	router.Delete("/staff/:id", h.HandleDeleteStaff)
	router.Delete("/treatments/:id", h.HandleDeleteTreatment)
}

func (h *SalonHandler) validationResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

func notFoundStatus(err error) int {
	if strings.Contains(err.Error(), "not found") {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

// HandleGetSalons lists all salons.
func (h *SalonHandler) HandleGetSalons(c *fiber.Ctx) error {
	salons, err := h.service.GetSalons()
	if err != nil {
		log.Printf("Error getting salons: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve salons",
			"error":   err.Error(),
		})
	}
	return c.JSON(salons)
}

// HandleGetSalonByID retrieves a single salon by its ID.
func (h *SalonHandler) HandleGetSalonByID(c *fiber.Ctx) error {
	salonID := c.Params("id")
	salon, err := h.service.GetSalonByID(salonID)
	if err != nil {
		log.Printf("Error getting salon by ID %s: %v", salonID, err)
		return c.Status(notFoundStatus(err)).JSON(fiber.Map{
			"message": "Could not retrieve salon",
			"error":   err.Error(),
		})
	}
	return c.JSON(salon)
}

// HandleCreateSalon creates a new salon.
func (h *SalonHandler) HandleCreateSalon(c *fiber.Ctx) error {
	var salon models.Salon
	if err := c.BodyParser(&salon); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(salon); err != nil {
		return h.validationResponse(c, err)
	}

	if err := h.service.CreateSalon(&salon); err != nil {
		log.Printf("Error creating salon: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create salon",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(salon)
}

// HandleUpdateSalon updates an existing salon.
func (h *SalonHandler) HandleUpdateSalon(c *fiber.Ctx) error {
	var salon models.Salon
	if err := c.BodyParser(&salon); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	salon.ID = c.Params("id")
	if err := h.validate.Struct(salon); err != nil {
		return h.validationResponse(c, err)
	}

	if err := h.service.UpdateSalon(&salon); err != nil {
		log.Printf("Error updating salon %s: %v", salon.ID, err)
		return c.Status(notFoundStatus(err)).JSON(fiber.Map{
			"message": "Could not update salon",
			"error":   err.Error(),
		})
	}
	return c.JSON(salon)
}

// HandleDeleteSalon deletes a salon by its ID.
func (h *SalonHandler) HandleDeleteSalon(c *fiber.Ctx) error {
	salonID := c.Params("id")
	if err := h.service.DeleteSalon(salonID); err != nil {
		log.Printf("Error deleting salon %s: %v", salonID, err)
		return c.Status(notFoundStatus(err)).JSON(fiber.Map{
			"message": "Could not delete salon",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Salon %s deleted successfully", salonID),
	})
}

// HandleCreateStaff adds a staff member to a salon.
func (h *SalonHandler) HandleCreateStaff(c *fiber.Ctx) error {
	var staff models.Staff
	if err := c.BodyParser(&staff); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	staff.SalonID = c.Params("id")
	if err := h.validate.Struct(staff); err != nil {
		return h.validationResponse(c, err)
	}

	if err := h.service.CreateStaff(&staff); err != nil {
		log.Printf("Error creating staff member for salon %s: %v", staff.SalonID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create staff member",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(staff)
}

// HandleGetStaff lists all staff members of a salon.
func (h *SalonHandler) HandleGetStaff(c *fiber.Ctx) error {
	salonID := c.Params("id")
	staff, err := h.service.GetStaffBySalon(salonID)
	if err != nil {
		log.Printf("Error getting staff for salon %s: %v", salonID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve staff",
			"error":   err.Error(),
		})
	}
	return c.JSON(staff)
}

// HandleDeleteStaff removes a staff member.
func (h *SalonHandler) HandleDeleteStaff(c *fiber.Ctx) error {
	staffID := c.Params("id")
	if err := h.service.DeleteStaff(staffID); err != nil {
		log.Printf("Error deleting staff member %s: %v", staffID, err)
		return c.Status(notFoundStatus(err)).JSON(fiber.Map{
			"message": "Could not delete staff member",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Staff member %s deleted successfully", staffID),
	})
}

// HandleCreateTreatment adds a treatment to a salon's offering.
func (h *SalonHandler) HandleCreateTreatment(c *fiber.Ctx) error {
	var treatment models.Treatment
	if err := c.BodyParser(&treatment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	treatment.SalonID = c.Params("id")
	if err := h.validate.Struct(treatment); err != nil {
		return h.validationResponse(c, err)
	}

	if err := h.service.CreateTreatment(&treatment); err != nil {
		log.Printf("Error creating treatment for salon %s: %v", treatment.SalonID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create treatment",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(treatment)
}

// HandleGetTreatments lists all treatments offered by a salon.
func (h *SalonHandler) HandleGetTreatments(c *fiber.Ctx) error {
	salonID := c.Params("id")
	treatments, err := h.service.GetTreatmentsBySalon(salonID)
	if err != nil {
		log.Printf("Error getting treatments for salon %s: %v", salonID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve treatments",
			"error":   err.Error(),
		})
	}
	return c.JSON(treatments)
}

// HandleDeleteTreatment removes a treatment.
func (h *SalonHandler) HandleDeleteTreatment(c *fiber.Ctx) error {
	treatmentID := c.Params("id")
	if err := h.service.DeleteTreatment(treatmentID); err != nil {
		log.Printf("Error deleting treatment %s: %v", treatmentID, err)
		return c.Status(notFoundStatus(err)).JSON(fiber.Map{
			"message": "Could not delete treatment",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Treatment %s deleted successfully", treatmentID),
	})
}
