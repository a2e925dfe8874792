package controllers

import (
	"errors"

	"cargoflow/models"
	"cargoflow/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type GroupageController struct {
	DB *gorm.DB
}

var groupageInput struct {
	TransitaireCode       string  `json:"transitaire_code" validate:"required"`
	MaxPallets            int     `json:"max_pallets" validate:"required,gt=0"`
	MaxWeightKg           float64 `json:"max_weight_kg" validate:"required,gt=0"`
	MaxVolumeM3           float64 `json:"max_volume_m3" validate:"required,gt=0"`
	DangerousGoodsAllowed bool    `json:"dangerous_goods_allowed"`
	Etd                   string  `json:"etd"`
	Eta                   string  `json:"eta"`
	Remarks               string  `json:"remarks"`
}

var bookingInput struct {
	OrderID        uint    `json:"order_id" validate:"required"`
	PalettesBooked int     `json:"palettes_booked" validate:"required,gt=0"`
	WeightBookedKg float64 `json:"weight_booked_kg" validate:"required,gt=0"`
	VolumeBookedM3 float64 `json:"volume_booked_m3" validate:"required,gt=0"`
}

func NewGroupageController(db *gorm.DB) *GroupageController {
	return &GroupageController{DB: db}
}

func (c *GroupageController) CreateGroupage(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&groupageInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(groupageInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var transitaire models.Transitaire
	if err := c.DB.First(&transitaire, "transitaire_code = ?", groupageInput.TransitaireCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transitaire not found"})
	}

	groupageNo, err := repositories.NewSequenceRepository(c.DB).NextNumber(repositories.PrefixGroupage)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// A fresh groupage is fully available.
	groupage := models.Groupage{
		GroupageNo:            groupageNo,
		TransitaireID:         transitaire.ID,
		MaxPallets:            groupageInput.MaxPallets,
		MaxWeightKg:           groupageInput.MaxWeightKg,
		MaxVolumeM3:           groupageInput.MaxVolumeM3,
		AvailablePallets:      groupageInput.MaxPallets,
		AvailableWeightKg:     groupageInput.MaxWeightKg,
		AvailableVolumeM3:     groupageInput.MaxVolumeM3,
		DangerousGoodsAllowed: groupageInput.DangerousGoodsAllowed,
		Etd:                   groupageInput.Etd,
		Eta:                   groupageInput.Eta,
		Remarks:               groupageInput.Remarks,
		CreatedBy:             int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&groupage).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Groupage created successfully", "data": groupage})
}

func (c *GroupageController) GetAllGroupages(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Transitaire")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var groupages []models.Groupage
	if err := query.Find(&groupages).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Groupages found", "data": groupages})
}

func (c *GroupageController) GetGroupageByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var groupage models.Groupage
	if err := c.DB.Preload("Transitaire").Preload("Bookings.Order.Supplier").
		First(&groupage, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Groupage not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Groupage found",
		"data":    fiber.Map{"groupage": groupage, "booked_load": groupage.BookedLoad()},
	})
}

func (c *GroupageController) UpdateGroupage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Etd     string `json:"etd"`
		Eta     string `json:"eta"`
		Remarks string `json:"remarks"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res := c.DB.Model(&models.Groupage{}).Where("id = ?", id).Updates(map[string]interface{}{
		"etd":        input.Etd,
		"eta":        input.Eta,
		"remarks":    input.Remarks,
		"updated_by": int(ctx.Locals("userID").(float64)),
	})
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Groupage not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Groupage updated successfully"})
}

func (c *GroupageController) DeleteGroupage(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var groupage models.Groupage
	if err := c.DB.First(&groupage, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Groupage not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var active int64
	c.DB.Model(&models.Booking{}).
		Where("groupage_id = ? AND booking_status <> ?", id, models.BookingCancelled).
		Count(&active)
	if active > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Groupage still has active bookings"})
	}

	groupage.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&groupage).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&groupage).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Groupage deleted successfully", "data": groupage})
}

// CreateBooking reserves capacity on the groupage for an order.
func (c *GroupageController) CreateBooking(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&bookingInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(bookingInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, err := repositories.NewBookingRepository(c.DB).Create(repositories.BookingRequest{
		GroupageID:     uint(id),
		OrderID:        bookingInput.OrderID,
		PalettesBooked: bookingInput.PalettesBooked,
		WeightBookedKg: bookingInput.WeightBookedKg,
		VolumeBookedM3: bookingInput.VolumeBookedM3,
		UserID:         int(ctx.Locals("userID").(float64)),
	})
	if err != nil {
		var refusal *repositories.Refusal
		switch {
		case errors.As(err, &refusal):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"message": "Booking refused",
				"data":    fiber.Map{"reason": refusal.Reason},
			})
		case errors.Is(err, repositories.ErrCapacityExhausted):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Booking refused",
				"data":    fiber.Map{"reason": err.Error()},
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Groupage or order not found"})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Booking created successfully", "data": booking})
}

func (c *GroupageController) GetBookings(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var bookings []models.Booking
	if err := c.DB.Preload("Order.Supplier").Where("groupage_id = ?", id).Find(&bookings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Bookings found", "data": bookings})
}

func (c *GroupageController) ConfirmBooking(ctx *fiber.Ctx) error {
	bookingID, err := ctx.ParamsInt("booking_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	userID := int(ctx.Locals("userID").(float64))
	if err := repositories.NewBookingRepository(c.DB).Confirm(uint(bookingID), userID); err != nil {
		var refusal *repositories.Refusal
		if errors.As(err, &refusal) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": refusal.Reason})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Booking confirmed"})
}

// CancelBooking restores capacity exactly once; a second cancel hits the
// status guard and reports a conflict.
func (c *GroupageController) CancelBooking(ctx *fiber.Ctx) error {
	bookingID, err := ctx.ParamsInt("booking_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking ID"})
	}

	userID := int(ctx.Locals("userID").(float64))
	if err := repositories.NewBookingRepository(c.DB).Cancel(uint(bookingID), userID); err != nil {
		if errors.Is(err, repositories.ErrAlreadyCancelled) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Booking cancelled"})
}
