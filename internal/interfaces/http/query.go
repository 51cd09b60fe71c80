package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cafetal-api/internal/application/dto"
	"github.com/jhoicas/cafetal-api/internal/domain"
)

// queryID lee un ID opcional del query string; las columnas de ID son INTEGER.
func queryID(c *fiber.Ctx, key string) (*int64, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: %s debe ser un entero positivo de 32 bits", domain.ErrInvalidInput, key)
	}
	return &n, nil
}

// requiredID como queryID pero obligatorio.
func requiredID(c *fiber.Ctx, key string) (int64, error) {
	id, err := queryID(c, key)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, key)
	}
	return *id, nil
}

func pageRequest(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Page: c.QueryInt("page"), PageSize: c.QueryInt("pageSize")}
}
