/*
fgts.go - FGTS deposits, the 40% penalty, and discretionary fines

PURPOSE:
  Steps 6-7 of the settlement. Both steps sum over the items already in
  the statement, never over raw input, so they must run after every
  accrual step has appended its items.

FGTS BASE:
  The 8% deposit applies to settlement earnings except:
  - FGTS-group items (a deposit does not compound on itself),
  - vacation items (indemnified vacation is not FGTS base by law),
  - the worked-notice salary (it carries its own 8% line from step 2).
  Exclusion is by group and structured item kind, not description text.
*/
package rescisao

import (
	"github.com/warp/rescisao-engine/statement"
)

// =============================================================================
// STEP 6 - FGTS
// =============================================================================

const (
	fgtsDepositRate = 8
	fgtsPenaltyRate = 40
)

// applyFGTS emits the 8% deposit over the settlement earnings and, for
// dismissal without cause, the 40% penalty over every FGTS amount in play
// (deposits emitted here plus the previously accumulated fund balance).
// Resignation and for-cause dismissal skip the step entirely.
func applyFGTS(in Input, sb *statement.Builder) {
	if in.TerminationType == PedidoDemissao || in.TerminationType == JustaCausa {
		return
	}

	base := sb.SumEarningsWhere(func(it statement.Item) bool {
		return it.Group != statement.GroupFGTS &&
			it.Group != statement.GroupFerias &&
			it.Kind != statement.KindWorkedNotice
	})
	if base.IsPositive() {
		sb.Append(statement.Item{
			Description: "FGTS sobre Rescisão",
			Reference:   "8%",
			Value:       base.Percent(fgtsDepositRate),
			Basis:       base,
			Type:        statement.TypeEarning,
			Group:       statement.GroupFGTS,
			Kind:        statement.KindFGTS,
		})
	}

	if in.TerminationType == SemJustaCausa {
		penaltyBase := sb.SumEarningsByGroup(statement.GroupFGTS).Add(in.FGTSBalance)
		sb.Append(statement.Item{
			Description: "Multa 40% FGTS",
			Reference:   "40%",
			Value:       penaltyBase.Percent(fgtsPenaltyRate),
			Basis:       penaltyBase,
			Type:        statement.TypeEarning,
			Group:       statement.GroupFGTS,
			Kind:        statement.KindFGTS,
		})
	}
}

// =============================================================================
// STEP 7 - DISCRETIONARY FINES
// =============================================================================

// applyFines emits the optional statutory fines:
//
//   - Art. 477 CLT (late settlement payment): one base salary, applicable
//     to dismissal without cause.
//   - Art. 467 CLT (uncontested amounts unpaid at the first hearing): 50%
//     of the rescission-group earnings present when the fine is appended.
func applyFines(in Input, sb *statement.Builder) {
	if in.ApplyFine477 && in.TerminationType == SemJustaCausa {
		sb.Append(statement.Item{
			Description: "Multa Art. 477 CLT",
			Reference:   "1 salário",
			Value:       in.Salary,
			Type:        statement.TypeEarning,
			Group:       statement.GroupMultas,
			Kind:        statement.KindFine,
		})
	}

	if in.ApplyFine467 {
		base := sb.SumEarningsByGroup(statement.GroupRescisorias)
		sb.Append(statement.Item{
			Description: "Multa Art. 467 CLT",
			Reference:   "50%",
			Value:       base.Percent(50),
			Basis:       base,
			Type:        statement.TypeEarning,
			Group:       statement.GroupMultas,
			Kind:        statement.KindFine,
		})
	}
}
