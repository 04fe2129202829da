package handler

import (
	"errors"
	"net/http"
	"time"

	"vendor-service/internal/api"
	"vendor-service/internal/model"
	"vendor-service/internal/store"
	"vendor-service/pkg/logger"
	"vendor-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ContactRequest defines the structure for contact creation requests.
// VendorID is supplied by the caller and is not validated against the
// vendor collection.
type ContactRequest struct {
	VendorID    int    `json:"vendorId"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// ContactHandler exposes the contact-person facade over HTTP.
type ContactHandler struct {
	contacts api.ContactService
}

// NewContactHandler creates a contact handler backed by the given
// service
func NewContactHandler(contacts api.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// ListByVendor retrieves the contact persons of one vendor
func (h *ContactHandler) ListByVendor(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordContactOperation("list")

	defer prometheus.TrackStoreOperation("query")(time.Now())

	contacts, err := h.contacts.ListByVendor(c.Request().Context(), c.Param("id"))
	if err != nil {
		log.Error("Failed to list contacts", zap.String("vendor_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to retrieve contacts"})
	}

	log.Info("Contacts retrieved",
		zap.String("vendor_id", c.Param("id")),
		zap.Int("count", len(contacts)))
	return c.JSON(http.StatusOK, echo.Map{"data": contacts})
}

// Get retrieves a contact person by ID
func (h *ContactHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordContactOperation("get")

	defer prometheus.TrackStoreOperation("query")(time.Now())

	contact, err := h.contacts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Contact not found", zap.String("contact_id", c.Param("id")))
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Contact person not found"})
		}
		log.Error("Failed to get contact", zap.String("contact_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to retrieve contact"})
	}

	return c.JSON(http.StatusOK, contact)
}

// Create creates a new contact person for a vendor
func (h *ContactHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordContactOperation("create")

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	defer prometheus.TrackStoreOperation("insert")(time.Now())

	contact, err := h.contacts.Create(c.Request().Context(), model.ContactPerson{
		VendorID:    req.VendorID,
		Name:        req.Name,
		Designation: req.Designation,
		Email:       req.Email,
		Phone:       req.Phone,
	})
	if err != nil {
		log.Error("Failed to create contact", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create contact"})
	}

	log.Info("Contact created",
		zap.Int("id", contact.ID),
		zap.Int("vendor_id", contact.VendorID),
		zap.String("name", contact.Name))
	return c.JSON(http.StatusCreated, contact)
}

// Update applies a partial update to an existing contact person
func (h *ContactHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordContactOperation("update")

	var patch model.ContactPersonPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.String("contact_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	defer prometheus.TrackStoreOperation("update")(time.Now())

	contact, err := h.contacts.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Contact not found for update", zap.String("contact_id", c.Param("id")))
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Contact person not found"})
		}
		log.Error("Failed to update contact", zap.String("contact_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update contact"})
	}

	log.Info("Contact updated",
		zap.Int("id", contact.ID),
		zap.String("name", contact.Name))
	return c.JSON(http.StatusOK, contact)
}

// Delete removes a contact person. Deleting an absent contact still
// succeeds.
func (h *ContactHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordContactOperation("delete")

	defer prometheus.TrackStoreOperation("delete")(time.Now())

	result, err := h.contacts.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		log.Error("Failed to delete contact", zap.String("contact_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to delete contact"})
	}

	log.Info("Contact deleted", zap.String("contact_id", c.Param("id")))
	return c.JSON(http.StatusOK, result)
}
