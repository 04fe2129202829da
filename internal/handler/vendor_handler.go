package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vendor-service/internal/api"
	"vendor-service/internal/model"
	"vendor-service/internal/store"
	"vendor-service/pkg/logger"
	"vendor-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// VendorRequest defines the structure for vendor creation requests
type VendorRequest struct {
	Name   string       `json:"name"`
	Code   string       `json:"code"`
	Email  string       `json:"email"`
	Phone  string       `json:"phone"`
	Status model.Status `json:"status"`
}

// VendorHandler exposes the vendor facade over HTTP. The service is
// injected so the handler works identically against the simulator or a
// real client.
type VendorHandler struct {
	vendors api.VendorService
}

// NewVendorHandler creates a vendor handler backed by the given service
func NewVendorHandler(vendors api.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

// List retrieves a filtered, sorted, paginated page of vendors
func (h *VendorHandler) List(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordVendorOperation("list")

	q := store.Query{
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
	q.Page, _ = strconv.Atoi(c.QueryParam("page"))
	q.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	defer prometheus.TrackStoreOperation("query")(time.Now())

	page, err := h.vendors.List(c.Request().Context(), q)
	if err != nil {
		log.Error("Failed to list vendors", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to retrieve vendors"})
	}

	log.Info("Vendors retrieved",
		zap.Int("count", len(page.Data)),
		zap.Int("total", page.Total),
		zap.String("search", q.Search))
	return c.JSON(http.StatusOK, page)
}

// Get retrieves a vendor by ID
func (h *VendorHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordVendorOperation("get")

	defer prometheus.TrackStoreOperation("query")(time.Now())

	vendor, err := h.vendors.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Vendor not found", zap.String("vendor_id", c.Param("id")))
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Vendor not found"})
		}
		log.Error("Failed to get vendor", zap.String("vendor_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to retrieve vendor"})
	}

	return c.JSON(http.StatusOK, vendor)
}

// Create creates a new vendor
func (h *VendorHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordVendorOperation("create")

	var req VendorRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	defer prometheus.TrackStoreOperation("insert")(time.Now())

	vendor, err := h.vendors.Create(c.Request().Context(), model.Vendor{
		Name:   req.Name,
		Code:   req.Code,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: req.Status,
	})
	if err != nil {
		log.Error("Failed to create vendor", zap.String("name", req.Name), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create vendor"})
	}

	go h.updateVendorCount(log)

	log.Info("Vendor created",
		zap.Int("id", vendor.ID),
		zap.String("name", vendor.Name),
		zap.String("code", vendor.Code))
	return c.JSON(http.StatusCreated, vendor)
}

// Update applies a partial update to an existing vendor
func (h *VendorHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordVendorOperation("update")

	var patch model.VendorPatch
	if err := c.Bind(&patch); err != nil {
		log.Error("Invalid request data", zap.String("vendor_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request data"})
	}

	defer prometheus.TrackStoreOperation("update")(time.Now())

	vendor, err := h.vendors.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("Vendor not found for update", zap.String("vendor_id", c.Param("id")))
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Vendor not found"})
		}
		log.Error("Failed to update vendor", zap.String("vendor_id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update vendor"})
	}

	log.Info("Vendor updated",
		zap.Int("id", vendor.ID),
		zap.String("name", vendor.Name),
		zap.String("status", string(vendor.Status)))
	return c.JSON(http.StatusOK, vendor)
}

// updateVendorCount refreshes the vendor-count gauge from the backend
func (h *VendorHandler) updateVendorCount(log *zap.Logger) {
	page, err := h.vendors.List(context.Background(), store.Query{Limit: 1})
	if err != nil {
		log.Warn("Failed to refresh vendor count", zap.Error(err))
		return
	}
	prometheus.UpdateVendorCount(page.Total)
}
