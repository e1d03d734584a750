/*
notice.go - Aviso prévio (statutory notice period)

RULES:
  Law 12.506/2011: 30 days of notice plus 3 per full year of service,
  capped at 90 days. Owed by the employer on dismissal without cause and
  mutual fault; owed by the employee on resignation (deducted when waived).

  CLT art. 484-A (termination by mutual agreement): half the indemnified
  notice. For-cause dismissal forfeits notice entirely.

PROJECTED END DATE:
  Indemnified notice extends the contract's effective last day by the
  notice length; worked notice extends it to the notice end date. Later
  accrual steps (vacation, 13th) count up to the projected end, which is
  how the notice period itself accrues benefits.
*/
package rescisao

import (
	"fmt"

	"github.com/warp/rescisao-engine/statement"
)

// =============================================================================
// STEP 2 - NOTICE PERIOD
// =============================================================================

const (
	noticeBaseDays    = 30
	noticeDaysPerYear = 3
	noticeCapDays     = 90
	daysPerYear       = 365.25
)

// statutoryNoticeDays returns the notice length for a contract span:
// 30 days plus 3 per full year employed, capped at 90.
func statutoryNoticeDays(start, end statement.Date) int {
	years := int(float64(statement.DaysBetween(start, end)) / daysPerYear)
	days := noticeBaseDays + noticeDaysPerYear*years
	if days > noticeCapDays {
		days = noticeCapDays
	}
	return days
}

// workedNoticeDays counts the worked notice span, inclusive of both ends.
func workedNoticeDays(start, end statement.Date) int {
	d := statement.DaysBetween(start, end)
	if d < 0 {
		d = -d
	}
	return d + 1
}

// noticeOutcome is what step 2 feeds forward: the effective contract end
// after folding the notice in, and the statutory length for the header.
type noticeOutcome struct {
	ProjectedEnd statement.Date
	NoticeDays   int
}

// applyNotice emits the notice-period items and resolves the projected end
// date. Branches by termination type:
//
//   - SemJustaCausa / CulpaReciproca: full statutory notice, indemnified
//     or worked (worked notice salary carries its own 8% FGTS line).
//   - PedidoDemissao: waived notice is deducted at one base salary; worked
//     notice is paid but deposits no FGTS.
//   - AcordoComum: half the indemnified notice (art. 484-A).
//   - JustaCausa: nothing.
func applyNotice(in Input, b basis, sb *statement.Builder) noticeOutcome {
	out := noticeOutcome{ProjectedEnd: in.EndDate}
	remuneration := b.Remuneration()
	dailyRate := remuneration.DivInt(30)

	switch in.TerminationType {
	case SemJustaCausa, CulpaReciproca:
		out.NoticeDays = statutoryNoticeDays(in.StartDate, in.EndDate)

		switch in.NoticeType {
		case Indenizado:
			sb.Append(statement.Item{
				Description: "Aviso Prévio Indenizado",
				Reference:   fmt.Sprintf("%d dias", out.NoticeDays),
				Value:       dailyRate.MulInt(out.NoticeDays),
				Basis:       remuneration,
				Type:        statement.TypeEarning,
				Group:       statement.GroupRescisorias,
				Kind:        statement.KindNotice,
			})
			out.ProjectedEnd = in.EndDate.AddDays(out.NoticeDays)

		case Trabalhado:
			days := workedNoticeDays(in.NoticeStartDate, in.NoticeEndDate)
			workedPay := dailyRate.MulInt(days).Round2()
			sb.Append(statement.Item{
				Description: "Saldo de Salário (Aviso Trabalhado)",
				Reference:   fmt.Sprintf("%d dias", days),
				Value:       workedPay,
				Basis:       remuneration,
				Type:        statement.TypeEarning,
				Group:       statement.GroupRescisorias,
				Kind:        statement.KindWorkedNotice,
			})
			// The worked notice deposits FGTS like any month of work; it is
			// excluded from the settlement-wide FGTS base in step 6.
			sb.Append(statement.Item{
				Description: "FGTS sobre Aviso Trabalhado",
				Reference:   "8%",
				Value:       workedPay.Percent(8),
				Basis:       workedPay,
				Type:        statement.TypeEarning,
				Group:       statement.GroupFGTS,
				Kind:        statement.KindFGTS,
			})
			out.ProjectedEnd = in.NoticeEndDate.Max(in.EndDate)
		}

	case PedidoDemissao:
		switch in.NoticeType {
		case DispensadoNaoCumprido:
			// Waived, unworked notice is discounted at one base salary,
			// not the composed remuneration.
			sb.Append(statement.Item{
				Description: "Desconto Aviso Prévio",
				Reference:   "30 dias",
				Value:       in.Salary,
				Type:        statement.TypeDeduction,
				Group:       statement.GroupRescisorias,
				Kind:        statement.KindNotice,
			})
		case Trabalhado:
			days := workedNoticeDays(in.NoticeStartDate, in.NoticeEndDate)
			sb.Append(statement.Item{
				Description: "Saldo de Salário (Aviso Trabalhado)",
				Reference:   fmt.Sprintf("%d dias", days),
				Value:       dailyRate.MulInt(days),
				Basis:       remuneration,
				Type:        statement.TypeEarning,
				Group:       statement.GroupRescisorias,
				Kind:        statement.KindWorkedNotice,
			})
			out.ProjectedEnd = in.NoticeEndDate.Max(in.EndDate)
		}

	case AcordoComum:
		if in.NoticeType == Indenizado {
			half := statutoryNoticeDays(in.StartDate, in.EndDate) / 2
			out.NoticeDays = half
			sb.Append(statement.Item{
				Description: "Aviso Prévio Indenizado (Acordo)",
				Reference:   fmt.Sprintf("%d dias", half),
				Value:       dailyRate.MulInt(half),
				Basis:       remuneration,
				Type:        statement.TypeEarning,
				Group:       statement.GroupRescisorias,
				Kind:        statement.KindNotice,
			})
			out.ProjectedEnd = in.EndDate.AddDays(half)
		}

	case JustaCausa:
		// For-cause dismissal forfeits the notice period.
	}

	return out
}
