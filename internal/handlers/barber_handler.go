package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sharpcutlabs/barbershop-api/internal/audit"
	domain "github.com/sharpcutlabs/barbershop-api/internal/domain/appointment"
	"github.com/sharpcutlabs/barbershop-api/internal/httperr"
	"github.com/sharpcutlabs/barbershop-api/internal/httpresp"
	"github.com/sharpcutlabs/barbershop-api/internal/media"
	"github.com/sharpcutlabs/barbershop-api/internal/middleware"
	"github.com/sharpcutlabs/barbershop-api/internal/models"
)

const maxPhotoBytes = 5 << 20

type BarberHandler struct {
	db      *gorm.DB
	audit   *audit.Dispatcher
	storage *media.S3Storage
}

func NewBarberHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, storage *media.S3Storage) *BarberHandler {
	return &BarberHandler{db: db, audit: auditDispatcher, storage: storage}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type WorkingDayConfig struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsWorking bool   `json:"is_working"`
}

type UpdateScheduleRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// ======================================================
// PUBLIC LIST
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Preload("WorkingSchedule", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		}).
		Where("role = ?", models.RoleBarber).
		Order("id ASC").
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Could not list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// CREATE (owner)
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and password are required.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "A user with this email already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create barber.")
		return
	}

	barber := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         models.RoleBarber,
		// New barbers start with a complete all-days-off schedule; the owner
		// opens days explicitly afterwards.
		WorkingSchedule: defaultSchedule(),
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "barber_created",
		Entity:   "user",
		EntityID: &barber.ID,
	})

	c.JSON(http.StatusCreated, barber)
}

func defaultSchedule() []models.WorkingSchedule {
	days := make([]models.WorkingSchedule, 0, 7)
	for day := 0; day < 7; day++ {
		days = append(days, models.WorkingSchedule{
			DayOfWeek: day,
			StartTime: "00:00",
			EndTime:   "00:00",
			IsWorking: false,
		})
	}
	return days
}

// ======================================================
// DELETE (owner)
// ======================================================

func (h *BarberHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be numeric.")
		return
	}

	res := h.db.Where("id = ? AND role = ?", barberID, models.RoleBarber).Delete(&models.User{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete barber.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "barber_deleted",
		Entity:   "user",
		EntityID: &barberID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// REPLACE SCHEDULE (owner)
// ======================================================

// The whole week is replaced at once; there is no per-day patch.
func (h *BarberHandler) UpdateSchedule(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, err := parseID(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barber id must be numeric.")
		return
	}

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", barberID, models.RoleBarber).
		First(&barber).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "days is required.")
		return
	}

	if err := validateScheduleDays(req.Days); err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	toCreate := make([]models.WorkingSchedule, 0, len(req.Days))
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkingSchedule{
			BarberID:  barberID,
			DayOfWeek: d.DayOfWeek,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			IsWorking: d.IsWorking,
		})
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("barber_id = ?", barberID).Delete(&models.WorkingSchedule{}).Error; err != nil {
			return err
		}
		return tx.Create(&toCreate).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Could not save working schedule.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "schedule_replaced",
		Entity:   "user",
		EntityID: &barberID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func validateScheduleDays(days []WorkingDayConfig) error {
	if len(days) != 7 {
		return httperr.ErrValidation("incomplete_schedule", "A schedule must define all 7 weekdays.")
	}

	var seen [7]bool
	for _, d := range days {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return httperr.ErrValidation("invalid_weekday", "day_of_week must be between 0 and 6.")
		}
		if seen[d.DayOfWeek] {
			return httperr.ErrValidation("duplicate_weekday", "Each weekday may appear only once.")
		}
		seen[d.DayOfWeek] = true

		if !d.IsWorking {
			continue
		}
		if !domain.IsValidClock(d.StartTime) || !domain.IsValidClock(d.EndTime) {
			return httperr.ErrValidation("invalid_time_format", "Working hours must be HH:MM.")
		}
		if d.StartTime >= d.EndTime {
			return httperr.ErrValidation("inverted_window", "start_time must be before end_time on working days.")
		}
	}
	return nil
}

// ======================================================
// PROFILE PHOTO
// ======================================================

func (h *BarberHandler) UploadPhoto(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if !h.storage.Configured() {
		httperr.Write(c, http.StatusServiceUnavailable, "media_not_configured", "Photo storage is not configured.")
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "A photo file is required.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Could not read the uploaded photo.")
		return
	}
	if len(data) > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "Photo must be at most 5 MB.")
		return
	}

	encoded, err := media.EncodeProfilePhoto(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Photo must be a valid JPEG or PNG image.")
		return
	}

	key := fmt.Sprintf("profiles/%d.webp", userID)
	url, err := h.storage.Put(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_store_photo", "Could not store the photo.")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_picture", url).Error; err != nil {

		httperr.Internal(c, "failed_to_save_photo_url", "Could not save the photo.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_picture": url})
}
