/*
accrual.go - Salary balance, vacation, and 13th-salary accrual

PURPOSE:
  Steps 3-5 of the settlement: pay for days worked in the final month,
  vacation periods (overdue and anniversary-proportional) with the
  constitutional one-third, and the month-by-month proportional 13th.

DATE ARITHMETIC:
  Vacation accrues against the contract anniversary: the start date's
  month/day anchored to the projected-end year, stepped back one year when
  that anchor falls after the projected end. A month counts once 15 days
  of it are covered; both accruals cap at 12/12.

  The 13th accrues within the calendar year of the projected end only,
  walking month by month and counting every month whose active span is at
  least 15 days.
*/
package rescisao

import (
	"fmt"

	"github.com/warp/rescisao-engine/statement"
)

// =============================================================================
// STEP 3 - SALARY BALANCE
// =============================================================================

// applySalaryBalance pays the days worked in the final month. Skipped when
// the notice was worked (the worked-notice item already covers those days).
// Every termination type owes it, including for-cause dismissal.
func applySalaryBalance(in Input, b basis, sb *statement.Builder) {
	if in.NoticeType == Trabalhado {
		return
	}
	days := in.EndDate.Day()
	remuneration := b.Remuneration()
	sb.Append(statement.Item{
		Description: "Saldo de Salário",
		Reference:   fmt.Sprintf("%d dias", days),
		Value:       remuneration.DivInt(30).MulInt(days),
		Basis:       remuneration,
		Type:        statement.TypeEarning,
		Group:       statement.GroupRescisorias,
		Kind:        statement.KindSalaryBalance,
	})
}

// =============================================================================
// STEP 4 - VACATION
// =============================================================================

// lastAnniversary anchors the contract start's month/day to the projected
// end's year, stepping back one year if that date has not been reached yet.
func lastAnniversary(start, projectedEnd statement.Date) statement.Date {
	anniversary := statement.NewDate(projectedEnd.Year(), start.Month(), start.Day())
	if anniversary.After(projectedEnd) {
		anniversary = anniversary.AddYears(-1)
	}
	return anniversary
}

// proportionalMonths converts a day span into accrued twelfths: one month
// per 30 days, plus one more when the remainder reaches 15 days, capped at 12.
func proportionalMonths(days int) int {
	if days < 0 {
		return 0
	}
	months := days / 30
	if days%30 >= 15 {
		months++
	}
	if months > 12 {
		months = 12
	}
	return months
}

// applyVacation emits overdue vacation periods and the anniversary-
// proportional accrual, each with its constitutional third. For-cause
// dismissal forfeits all vacation items.
func applyVacation(in Input, b basis, projectedEnd statement.Date, sb *statement.Builder) {
	if in.TerminationType == JustaCausa {
		return
	}
	remuneration := b.Remuneration()

	if in.VacationOverdue > 0 {
		overdue := remuneration.MulInt(in.VacationOverdue)
		sb.Append(statement.Item{
			Description: "Férias Vencidas",
			Reference:   fmt.Sprintf("%d período(s)", in.VacationOverdue),
			Value:       overdue,
			Basis:       remuneration,
			Type:        statement.TypeEarning,
			Group:       statement.GroupFerias,
			Kind:        statement.KindVacation,
		})
		sb.Append(statement.Item{
			Description: "1/3 Férias Vencidas",
			Reference:   "1/3",
			Value:       overdue.DivInt(3),
			Basis:       overdue,
			Type:        statement.TypeEarning,
			Group:       statement.GroupFerias,
			Kind:        statement.KindVacation,
		})
	}

	// Proportional accrual always runs, regardless of overdue periods.
	anniversary := lastAnniversary(in.StartDate, projectedEnd)
	months := proportionalMonths(statement.DaysBetween(anniversary, projectedEnd))
	proportional := remuneration.DivInt(12).MulInt(months)
	sb.Append(statement.Item{
		Description: "Férias Proporcionais",
		Reference:   fmt.Sprintf("%d/12 avos", months),
		Value:       proportional,
		Basis:       remuneration,
		Type:        statement.TypeEarning,
		Group:       statement.GroupFerias,
		Kind:        statement.KindVacation,
	})
	sb.Append(statement.Item{
		Description: "1/3 Férias Proporcionais",
		Reference:   "1/3",
		Value:       proportional.DivInt(3),
		Basis:       proportional,
		Type:        statement.TypeEarning,
		Group:       statement.GroupFerias,
		Kind:        statement.KindVacation,
	})
}

// =============================================================================
// STEP 5 - 13TH SALARY (PROPORTIONAL)
// =============================================================================

// thirteenthMonths walks month by month from the later of the contract
// start and January 1 of the projected end's year, counting every month
// whose active span within it reaches 15 days. Capped at 12.
func thirteenthMonths(start, projectedEnd statement.Date) int {
	from := statement.StartOfYear(projectedEnd.Year()).Max(start)
	if from.After(projectedEnd) {
		return 0
	}

	months := 0
	cursor := statement.StartOfMonth(from)
	for cursor.BeforeOrEqual(projectedEnd) {
		spanStart := cursor.Max(from)
		spanEnd := statement.EndOfMonth(cursor)
		if projectedEnd.Before(spanEnd) {
			spanEnd = projectedEnd
		}
		if statement.DaysBetween(spanStart, spanEnd)+1 >= 15 {
			months++
		}
		cursor = statement.StartOfMonth(cursor).AddMonths(1)
	}
	if months > 12 {
		months = 12
	}
	return months
}

// applyThirteenth emits the proportional 13th salary. Forfeited on
// for-cause dismissal.
func applyThirteenth(in Input, b basis, projectedEnd statement.Date, sb *statement.Builder) {
	if in.TerminationType == JustaCausa {
		return
	}
	months := thirteenthMonths(in.StartDate, projectedEnd)
	remuneration := b.Remuneration()
	sb.Append(statement.Item{
		Description: "13º Salário Proporcional",
		Reference:   fmt.Sprintf("%d/12 avos", months),
		Value:       remuneration.DivInt(12).MulInt(months),
		Basis:       remuneration,
		Type:        statement.TypeEarning,
		Group:       statement.GroupDecimo,
		Kind:        statement.KindThirteenth,
	})
}
