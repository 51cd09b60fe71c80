package dto

import "math"

// Límites de paginación por defecto.
const (
	DefaultPageSize = 25
	MaxPageSize     = 200

	KardexDefaultPageSize = 100
	KardexMaxPageSize     = 1000
)

// PageRequest paginación por número de página (base 1).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Normalize aplica valores por defecto, acota PageSize a max y Page para que el offset quepa en 32 bits.
func (p *PageRequest) Normalize(def, max int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = def
	}
	if p.PageSize > max {
		p.PageSize = max
	}
	if maxPage := math.MaxInt32/p.PageSize + 1; p.Page > maxPage {
		p.Page = maxPage
	}
}

// Offset desplazamiento SQL de la página.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
