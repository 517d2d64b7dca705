package handlers

import (
	"fmt"
	"log"

	"salonstore/internal/models"
	"salonstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookingHandler handles HTTP requests for appointments.
type BookingHandler struct {
	service  *services.BookingService
	validate *validator.Validate
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *services.BookingService) *BookingHandler {
	return &BookingHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the booking routes with the Fiber app.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Post("/", h.HandleCreateBooking)
	bookingRoutes.Get("/", h.HandleGetBookings)
	bookingRoutes.Get("/:id", h.HandleGetBookingByID)
	bookingRoutes.Patch("/:id/status", h.HandleUpdateBookingStatus)
	bookingRoutes.Delete("/:id", h.HandleCancelBooking)
}

// HandleCreateBooking books a treatment for the authenticated user.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User identity is missing from the request context",
		})
	}

	var req services.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create booking request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
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

	booking, err := h.service.CreateBooking(userID, req)
	if err != nil {
		log.Printf("Error creating booking for user %s: %v", userID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not create booking",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// HandleGetBookings lists the authenticated user's bookings.
func (h *BookingHandler) HandleGetBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User identity is missing from the request context",
		})
	}

	bookings, err := h.service.GetBookingsByUser(userID)
	if err != nil {
		log.Printf("Error getting bookings for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve bookings",
			"error":   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// HandleGetBookingByID retrieves a single booking.
func (h *BookingHandler) HandleGetBookingByID(c *fiber.Ctx) error {
	bookingID := c.Params("id")
	booking, err := h.service.GetBookingByID(bookingID)
	if err != nil {
		log.Printf("Error getting booking by ID %s: %v", bookingID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not retrieve booking",
			"error":   err.Error(),
		})
	}
	return c.JSON(booking)
}

// HandleUpdateBookingStatus updates the status of a booking.
func (h *BookingHandler) HandleUpdateBookingStatus(c *fiber.Ctx) error {
	bookingID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for booking status update.",
		})
	}

	if err := h.service.UpdateBookingStatus(bookingID, models.BookingStatus(updateData.Status)); err != nil {
		log.Printf("Error updating booking status for booking %s: %v", bookingID, err)
		status := statusForError(err)
		if status == fiber.StatusInternalServerError && !models.BookingStatus(updateData.Status).Valid() {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"message": "Could not update booking status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Booking %s status updated successfully to %s", bookingID, updateData.Status),
	})
}

// HandleCancelBooking cancels a booking, freeing the staff member's slot.
func (h *BookingHandler) HandleCancelBooking(c *fiber.Ctx) error {
	bookingID := c.Params("id")
	if err := h.service.CancelBooking(bookingID); err != nil {
		log.Printf("Error cancelling booking %s: %v", bookingID, err)
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"message": "Could not cancel booking",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Booking %s cancelled", bookingID),
	})
}
