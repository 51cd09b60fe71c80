package entity

// UnitOfMeasure unidad de medida (kg, und, saco...).
type UnitOfMeasure struct {
	ID          int64
	Code        string
	Description string
}
