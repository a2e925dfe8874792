package controllers

import (
	"errors"

	"cargoflow/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClientController struct {
	DB *gorm.DB
}

var clientInput struct {
	ClientCode    string `json:"client_code" validate:"required,min=2"`
	ClientName    string `json:"client_name" validate:"required,min=2"`
	ClientAddress string `json:"client_address"`
	ClientCity    string `json:"client_city"`
	ClientCountry string `json:"client_country"`
	ClientPhone   string `json:"client_phone"`
	ClientEmail   string `json:"client_email" validate:"omitempty,email"`
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

func (c *ClientController) CreateClient(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&clientInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(clientInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	client := models.Client{
		ClientCode:    clientInput.ClientCode,
		ClientName:    clientInput.ClientName,
		ClientAddress: clientInput.ClientAddress,
		ClientCity:    clientInput.ClientCity,
		ClientCountry: clientInput.ClientCountry,
		ClientPhone:   clientInput.ClientPhone,
		ClientEmail:   clientInput.ClientEmail,
		CreatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&client).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client created successfully", "data": client})
}

func (c *ClientController) GetAllClients(ctx *fiber.Ctx) error {
	var clients []models.Client
	if err := c.DB.Find(&clients).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Clients found", "data": clients})
}

func (c *ClientController) GetClientByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var client models.Client
	if err := c.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client found", "data": client})
}

func (c *ClientController) UpdateClient(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&clientInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	client := models.Client{
		ClientCode:    clientInput.ClientCode,
		ClientName:    clientInput.ClientName,
		ClientAddress: clientInput.ClientAddress,
		ClientCity:    clientInput.ClientCity,
		ClientCountry: clientInput.ClientCountry,
		ClientPhone:   clientInput.ClientPhone,
		ClientEmail:   clientInput.ClientEmail,
		UpdatedBy:     int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&client).Where("id = ?", id).Updates(client).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client updated successfully", "data": client})
}

func (c *ClientController) DeleteClient(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var client models.Client
	if err := c.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	client.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&client).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&client).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Client deleted successfully", "data": client})
}
