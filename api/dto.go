/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY AND DATES ON THE WIRE:
  Money is serialized as a float already rounded to centavos; dates as
  "YYYY-MM-DD". The decimal representation stays internal.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/input.go: CalculationJSON request shape
*/
package api

import (
	"github.com/warp/rescisao-engine/statement"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ItemDTO is one settlement line in API responses.
type ItemDTO struct {
	Description string   `json:"description"`
	Reference   string   `json:"reference,omitempty"`
	Value       float64  `json:"value"`
	Basis       *float64 `json:"calculation_basis,omitempty"`
	Type        string   `json:"type"`
	Group       string   `json:"group"`
}

// ResultDTO is the full settlement statement.
type ResultDTO struct {
	Items            []ItemDTO `json:"items"`
	TotalEarnings    float64   `json:"total_earnings"`
	TotalDeductions  float64   `json:"total_deductions"`
	NetTotal         float64   `json:"net_total"`
	ProjectedEndDate string    `json:"projected_end_date"`
	NoticeDays       int       `json:"notice_days"`
}

// CalculationDTO wraps a computed (and possibly stored) settlement.
type CalculationDTO struct {
	ID           string    `json:"id,omitempty"`
	EmployeeName string    `json:"employee_name"`
	Result       ResultDTO `json:"result"`
	CreatedAt    string    `json:"created_at,omitempty"`
}

// CalculationSummaryDTO is the listing row for stored calculations.
type CalculationSummaryDTO struct {
	ID              string  `json:"id"`
	EmployeeName    string  `json:"employee_name"`
	TerminationType string  `json:"termination_type"`
	NetTotal        float64 `json:"net_total"`
	CreatedAt       string  `json:"created_at"`
}

// ScenarioDTO describes a preset demo calculation.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toItemDTO(it statement.Item) ItemDTO {
	dto := ItemDTO{
		Description: it.Description,
		Reference:   it.Reference,
		Value:       it.Value.Float64(),
		Type:        string(it.Type),
		Group:       string(it.Group),
	}
	if !it.Basis.IsZero() {
		b := it.Basis.Float64()
		dto.Basis = &b
	}
	return dto
}

func toResultDTO(r *statement.Result) ResultDTO {
	items := make([]ItemDTO, len(r.Items))
	for i, it := range r.Items {
		items[i] = toItemDTO(it)
	}
	return ResultDTO{
		Items:            items,
		TotalEarnings:    r.TotalEarnings.Float64(),
		TotalDeductions:  r.TotalDeductions.Float64(),
		NetTotal:         r.NetTotal.Float64(),
		ProjectedEndDate: r.ProjectedEndDate.String(),
		NoticeDays:       r.NoticeDays,
	}
}
