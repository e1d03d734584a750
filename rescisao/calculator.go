/*
calculator.go - The settlement calculation pipeline

PIPELINE:
  1. Remuneration basis (basis.go): additive pay components
  2. Notice period (notice.go): resolves the projected end date
  3. Salary balance (accrual.go)
  4. Vacation, overdue + proportional (accrual.go)
  5. 13th salary, proportional (accrual.go)
  6. FGTS deposit + 40% penalty (fgts.go)
  7. Discretionary fines (fgts.go)
  8. Aggregation (statement.Builder.Build)

  The steps run unconditionally in this order (each with its own skip
  branches): steps 6-7 sum the items steps 1-5 already appended, and the
  item order is the presentation order of the final statement.
*/
package rescisao

import (
	"github.com/warp/rescisao-engine/statement"
)

// Calculate validates the input and produces the itemized settlement.
// It is pure: no clock, no I/O, no shared state.
func Calculate(in Input) (*statement.Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	sb := statement.NewBuilder()

	b := buildBasis(in, sb)
	notice := applyNotice(in, b, sb)
	applySalaryBalance(in, b, sb)
	applyVacation(in, b, notice.ProjectedEnd, sb)
	applyThirteenth(in, b, notice.ProjectedEnd, sb)
	applyFGTS(in, sb)
	applyFines(in, sb)

	return sb.Build(notice.ProjectedEnd, notice.NoticeDays), nil
}
