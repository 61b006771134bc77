package controller

import (
	"github.com/gofiber/fiber/v2"

	"campus-assistant-be/internal/pkg/serverutils"
	"campus-assistant-be/internal/service"
)

type ICampusController interface {
	RegisterRoutes(r fiber.Router)
	GetEvents(ctx *fiber.Ctx) error
	GetDeadlines(ctx *fiber.Ctx) error
	GetTutoringSessions(ctx *fiber.Ctx) error
}

type campusController struct {
	service service.ICampusService
}

func NewCampusController(service service.ICampusService) ICampusController {
	return &campusController{service: service}
}

func (c *campusController) RegisterRoutes(r fiber.Router) {
	r.Get("/events", c.GetEvents)
	r.Get("/deadlines", c.GetDeadlines)
	r.Get("/tutoring", c.GetTutoringSessions)
}

func (c *campusController) GetEvents(ctx *fiber.Ctx) error {
	res, err := c.service.GetEvents(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("events retrieved", res))
}

func (c *campusController) GetDeadlines(ctx *fiber.Ctx) error {
	res, err := c.service.GetDeadlines(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("deadlines retrieved", res))
}

func (c *campusController) GetTutoringSessions(ctx *fiber.Ctx) error {
	res, err := c.service.GetTutoringSessions(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("tutoring sessions retrieved", res))
}
