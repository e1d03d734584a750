package rescisao

import (
	"github.com/warp/rescisao-engine/statement"
)

// =============================================================================
// STEP 1 - REMUNERATION BASIS
// =============================================================================

// basis carries the composed remuneration the later steps divide by 30 or 12.
// Components stay unrounded here; rounding happens when items are emitted.
type basis struct {
	Salary      statement.Money
	DangerPay   statement.Money
	NightPay    statement.Money
	DSRNight    statement.Money
	Overtime    statement.Money
	DSROvertime statement.Money
}

// Remuneration is base salary plus every additive component.
func (b basis) Remuneration() statement.Money {
	return b.Salary.
		Add(b.DangerPay).
		Add(b.NightPay).
		Add(b.DSRNight).
		Add(b.Overtime).
		Add(b.DSROvertime)
}

// buildBasis computes the additive components on top of base salary and
// emits each non-zero one as its own earning, in fixed order, before any
// rescission-specific item.
func buildBasis(in Input, sb *statement.Builder) basis {
	b := basis{Salary: in.Salary}

	if in.AdditionalDanger {
		b.DangerPay = in.Salary.Percent(30)
		sb.Append(statement.Item{
			Description: "Adicional de Periculosidade",
			Reference:   "30%",
			Value:       b.DangerPay,
			Basis:       in.Salary,
			Type:        statement.TypeEarning,
			Group:       statement.GroupOutros,
			Kind:        statement.KindAdditional,
		})
	}

	if in.AdditionalNight {
		b.NightPay = in.Salary.Percent(20)
		// Weekly-rest reflex approximated as one sixth of the component.
		b.DSRNight = b.NightPay.DivInt(6)
		sb.Append(statement.Item{
			Description: "Adicional Noturno",
			Reference:   "20%",
			Value:       b.NightPay,
			Basis:       in.Salary,
			Type:        statement.TypeEarning,
			Group:       statement.GroupOutros,
			Kind:        statement.KindAdditional,
		})
		sb.Append(statement.Item{
			Description: "DSR sobre Adicional Noturno",
			Reference:   "1/6",
			Value:       b.DSRNight,
			Basis:       b.NightPay,
			Type:        statement.TypeEarning,
			Group:       statement.GroupOutros,
			Kind:        statement.KindAdditional,
		})
	}

	if in.AdditionalHours.IsPositive() {
		b.Overtime = in.AdditionalHours
		b.DSROvertime = b.Overtime.DivInt(6)
		sb.Append(statement.Item{
			Description: "Horas Extras (média)",
			Reference:   "valor médio mensal",
			Value:       b.Overtime,
			Type:        statement.TypeEarning,
			Group:       statement.GroupOutros,
			Kind:        statement.KindAdditional,
		})
		sb.Append(statement.Item{
			Description: "DSR sobre Horas Extras",
			Reference:   "1/6",
			Value:       b.DSROvertime,
			Basis:       b.Overtime,
			Type:        statement.TypeEarning,
			Group:       statement.GroupOutros,
			Kind:        statement.KindAdditional,
		})
	}

	return b
}
