package handler

import "github.com/gofiber/fiber/v2"

// Claims JWT disimpan middleware di Locals; angka hasil parse selalu
// float64 sehingga level perlu dikonversi di sini.
func penggunaID(c *fiber.Ctx) string {
	id, _ := c.Locals("id_pengguna").(string)
	return id
}

func jabatanID(c *fiber.Ctx) string {
	id, _ := c.Locals("id_jabatan").(string)
	return id
}

func levelPengguna(c *fiber.Ctx) int {
	if lvl, ok := c.Locals("level").(float64); ok {
		return int(lvl)
	}
	return 0
}
