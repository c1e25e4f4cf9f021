package routes

import (
	"github.com/gofiber/fiber/v2"

	"meghmart/storage"
)

// uploadImage stores every file from the multipart "images" field and returns
// their public URLs. Storage is all-or-nothing: one bad file rolls back the
// batch.
func (r *Router) uploadImage(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "invalid multipart form")
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		return badRequest(c, "no images provided")
	}

	files := make([]storage.File, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	defer func() {
		for _, closeFile := range closers {
			closeFile()
		}
	}()
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return badRequest(c, "could not read uploaded file")
		}
		closers = append(closers, f.Close)
		files = append(files, storage.File{Name: h.Filename, Reader: f})
	}

	urls, err := r.Blobs.SaveAll(files)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store images"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"urls": urls})
}
