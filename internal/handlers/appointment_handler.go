package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/httpresp"
	"github.com/sharpcutlabs/barbershop-api/internal/middleware"
	ucAppointment "github.com/sharpcutlabs/barbershop-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	reserve         *ucAppointment.ReserveAppointment
	availability    *ucAppointment.GetAvailability
	updateStatus    *ucAppointment.UpdateStatus
	listAll         *ucAppointment.ListAppointments
	listByUser      *ucAppointment.ListAppointmentsByUser
	listByBarber    *ucAppointment.ListAppointmentsByBarber
	listByBarberDay *ucAppointment.ListAppointmentsByBarberAndDay
	loc             *time.Location
}

func NewAppointmentHandler(
	reserve *ucAppointment.ReserveAppointment,
	availability *ucAppointment.GetAvailability,
	updateStatus *ucAppointment.UpdateStatus,
	listAll *ucAppointment.ListAppointments,
	listByUser *ucAppointment.ListAppointmentsByUser,
	listByBarber *ucAppointment.ListAppointmentsByBarber,
	listByBarberDay *ucAppointment.ListAppointmentsByBarberAndDay,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		reserve:         reserve,
		availability:    availability,
		updateStatus:    updateStatus,
		listAll:         listAll,
		listByUser:      listByUser,
		listByBarber:    listByBarber,
		listByBarberDay: listByBarberDay,
		loc:             loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReserveAppointmentRequest struct {
	BarberID   uint   `json:"barber_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1"`
	Time       string `json:"time" binding:"required"`
	Comment    string `json:"comment"`
}

type UpdateStatusRequest struct {
	NewStatus string `json:"new_status" binding:"required"`
}

// ======================================================
// RESERVE
// ======================================================

func (h *AppointmentHandler) Reserve(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ReserveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed booking request.")
		return
	}

	start, err := parseInstant(h.loc, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Appointment time must be an ISO-8601 instant.")
		return
	}

	ap, err := h.reserve.Execute(c.Request.Context(), ucAppointment.ReserveInput{
		UserID:     userID,
		BarberID:   req.BarberID,
		ServiceIDs: req.ServiceIDs,
		Time:       start,
		Comment:    req.Comment,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be numeric.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDate(h.loc, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	serviceIDs, err := parseIDList(c.Query("service_ids"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_ids", "service_ids must be a comma-separated id list.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		BarberID:   barberID,
		Date:       date,
		ServiceIDs: serviceIDs,
	})
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	appointmentID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Appointment id must be numeric.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "new_status is required.")
		return
	}

	ap, err := h.updateStatus.Execute(
		c.Request.Context(),
		appointmentID,
		req.NewStatus,
		ucAppointment.Actor{UserID: userID, Role: role},
	)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// LISTINGS
// ======================================================

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	aps, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listByUser.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListBarberBook(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	aps, err := h.listByBarber.Execute(c.Request.Context(), barberID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByBarberAndDay(c *gin.Context) {
	barberID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be numeric.")
		return
	}

	dayStr := c.Query("day")
	if dayStr == "" {
		httperr.BadRequest(c, "missing_day", "Day is required.")
		return
	}

	day, err := parseDate(h.loc, dayStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_day", "Day must be YYYY-MM-DD.")
		return
	}

	aps, err := h.listByBarberDay.Execute(c.Request.Context(), barberID, day)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}
	httpresp.List(c, aps)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	return uint(id), err
}

func parseIDList(s string) ([]uint, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := parseID(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
