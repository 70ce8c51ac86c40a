package csvutil

import (
	"github.com/gocarina/gocsv"
	"github.com/gofiber/fiber/v2"
)

// Send marshals records to CSV and writes them as a file attachment.
// records must be a pointer to a slice of structs with csv tags.
func Send(c *fiber.Ctx, filename string, records interface{}) error {
	data, err := gocsv.MarshalBytes(records)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
