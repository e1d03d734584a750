package rescisao

import (
	"github.com/warp/rescisao-engine/statement"
)

// Validate rejects structurally invalid inputs before any math runs. The
// original form layer allowed malformed facts through and produced garbage
// numbers; here every rejection is a single structured error naming the
// offending field.
func Validate(in Input) error {
	if !in.Salary.IsPositive() {
		return statement.Invalid("salary", "must be greater than zero")
	}
	if in.StartDate.IsZero() {
		return statement.Invalid("start_date", "required")
	}
	if in.EndDate.IsZero() {
		return statement.Invalid("end_date", "required")
	}
	if !in.EndDate.After(in.StartDate) {
		return statement.Invalid("end_date", "must be after start_date")
	}
	if !in.TerminationType.Valid() {
		return statement.Invalid("termination_type", "unknown termination type")
	}
	if !in.NoticeType.Valid() {
		return statement.Invalid("notice_type", "unknown notice type")
	}
	if in.NoticeType == Trabalhado {
		if in.NoticeStartDate.IsZero() {
			return statement.Invalid("notice_start_date", "required when notice is worked")
		}
		if in.NoticeEndDate.IsZero() {
			return statement.Invalid("notice_end_date", "required when notice is worked")
		}
		if in.NoticeEndDate.Before(in.NoticeStartDate) {
			return statement.Invalid("notice_end_date", "must not be before notice_start_date")
		}
	}
	if in.VacationOverdue < 0 {
		return statement.Invalid("vacation_overdue", "must not be negative")
	}
	if in.Dependents < 0 {
		return statement.Invalid("dependents", "must not be negative")
	}
	if in.AdditionalHours.IsNegative() {
		return statement.Invalid("additional_hours", "must not be negative")
	}
	if in.FGTSBalance.IsNegative() {
		return statement.Invalid("fgts_balance", "must not be negative")
	}
	return nil
}
