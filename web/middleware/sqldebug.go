package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mehran282/off-board-v1/database"
)

// SQLDebug counts the SQL queries executed while serving each request and
// exposes the number via a response header and the request locals.
func SQLDebug(queries *database.QueryLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if queries == nil {
			return c.Next()
		}

		before := len(queries.GetQueries())

		err := c.Next()

		executed := len(queries.GetQueries()) - before
		if executed < 0 {
			executed = 0
		}
		c.Locals("SQLQueryCount", executed)
		c.Set("X-SQL-Query-Count", strconv.Itoa(executed))

		return err
	}
}
