package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// MetaData adalah bagian metaData dari amplop respons seragam.
type MetaData struct {
	Message      string `json:"message"`
	Code         int    `json:"code"`
	ResponseCode string `json:"response_code"`
}

// Envelope adalah amplop respons seragam { response, metaData }.
type Envelope struct {
	Response interface{} `json:"response"`
	MetaData MetaData    `json:"metaData"`
}

// Success mengirim payload dengan code 200 dan response_code "0000".
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Response: data,
		MetaData: MetaData{Message: message, Code: fiber.StatusOK, ResponseCode: "0000"},
	})
}

// Fail mengirim amplop error dengan response_code "0001".
func Fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(Envelope{
		Response: struct{}{},
		MetaData: MetaData{Message: message, Code: code, ResponseCode: "0001"},
	})
}

// Error memetakan jenis error inti ke kode HTTP. Isi error internal tidak
// pernah bocor ke pemanggil, hanya pesan yang sudah dibungkus service.
func Error(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return Fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation):
		return Fail(c, fiber.StatusBadRequest, err.Error())
	default:
		return Fail(c, fiber.StatusInternalServerError, err.Error())
	}
}
