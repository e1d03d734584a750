/*
Package factory converts JSON calculation requests into engine inputs.

PURPOSE:
  The form layer and the demo scenarios both speak JSON; the engine speaks
  typed Input records. This package owns that conversion: date parsing,
  enum mapping, defaults, and field-level rejection of malformed payloads.

JSON SCHEMA:
  {
    "employee_name": "Maria Souza",
    "salary": 3000,
    "start_date": "2020-01-15",
    "end_date": "2024-01-15",
    "termination_type": "sem_justa_causa",
    "notice_type": "indenizado",
    "notice_start_date": "2024-01-16",
    "notice_end_date": "2024-02-14",
    "vacation_overdue": 0,
    "dependents": 1,
    "additional_hours": 250.0,
    "additional_danger": false,
    "additional_night": true,
    "fgts_balance": 15000,
    "apply_fine_467": false,
    "apply_fine_477": false
  }

USAGE:
  var req factory.CalculationJSON
  json.NewDecoder(r.Body).Decode(&req)
  input, err := factory.ParseInput(req)

SEE ALSO:
  - rescisao/types.go: Input definition
  - api/dto.go: Response shapes
*/
package factory

import (
	"github.com/warp/rescisao-engine/rescisao"
	"github.com/warp/rescisao-engine/statement"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// CalculationJSON is the wire representation of a calculation input.
type CalculationJSON struct {
	EmployeeName     string  `json:"employee_name"`
	Salary           float64 `json:"salary"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	TerminationType  string  `json:"termination_type"`
	NoticeType       string  `json:"notice_type"`
	NoticeStartDate  string  `json:"notice_start_date,omitempty"`
	NoticeEndDate    string  `json:"notice_end_date,omitempty"`
	VacationOverdue  int     `json:"vacation_overdue,omitempty"`
	Dependents       int     `json:"dependents,omitempty"`
	AdditionalHours  float64 `json:"additional_hours,omitempty"`
	AdditionalDanger bool    `json:"additional_danger,omitempty"`
	AdditionalNight  bool    `json:"additional_night,omitempty"`
	FGTSBalance      float64 `json:"fgts_balance,omitempty"`
	ApplyFine467     bool    `json:"apply_fine_467,omitempty"`
	ApplyFine477     bool    `json:"apply_fine_477,omitempty"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseInput converts a JSON payload into a typed engine input. Every
// rejection is a statement.ValidationError naming the field, so handlers
// can map it straight to a 400.
func ParseInput(j CalculationJSON) (rescisao.Input, error) {
	in := rescisao.Input{
		EmployeeName:     j.EmployeeName,
		Salary:           statement.NewMoney(j.Salary),
		VacationOverdue:  j.VacationOverdue,
		Dependents:       j.Dependents,
		AdditionalHours:  statement.NewMoney(j.AdditionalHours),
		AdditionalDanger: j.AdditionalDanger,
		AdditionalNight:  j.AdditionalNight,
		FGTSBalance:      statement.NewMoney(j.FGTSBalance),
		ApplyFine467:     j.ApplyFine467,
		ApplyFine477:     j.ApplyFine477,
	}

	var err error
	if in.StartDate, err = parseDateField("start_date", j.StartDate, true); err != nil {
		return rescisao.Input{}, err
	}
	if in.EndDate, err = parseDateField("end_date", j.EndDate, true); err != nil {
		return rescisao.Input{}, err
	}
	if in.NoticeStartDate, err = parseDateField("notice_start_date", j.NoticeStartDate, false); err != nil {
		return rescisao.Input{}, err
	}
	if in.NoticeEndDate, err = parseDateField("notice_end_date", j.NoticeEndDate, false); err != nil {
		return rescisao.Input{}, err
	}

	in.TerminationType = rescisao.TerminationType(j.TerminationType)
	if !in.TerminationType.Valid() {
		return rescisao.Input{}, statement.Invalid("termination_type", "unknown termination type")
	}

	in.NoticeType = rescisao.NoticeType(j.NoticeType)
	if j.NoticeType == "" {
		// Forms omit the notice modality for types where it changes
		// nothing; indemnified is the common default.
		in.NoticeType = rescisao.Indenizado
	}
	if !in.NoticeType.Valid() {
		return rescisao.Input{}, statement.Invalid("notice_type", "unknown notice type")
	}

	return in, nil
}

func parseDateField(field, value string, required bool) (statement.Date, error) {
	if value == "" {
		if required {
			return statement.Date{}, statement.Invalid(field, "required")
		}
		return statement.Date{}, nil
	}
	d, err := statement.ParseDate(value)
	if err != nil {
		return statement.Date{}, statement.Invalid(field, "must be YYYY-MM-DD")
	}
	return d, nil
}
