/*
Package rescisao calculates Brazilian labor-law termination settlements
(rescisão trabalhista, CLT).

PURPOSE:
  Given the facts of an employment contract at termination time (salary,
  dates, termination and notice modality, variable-pay flags), produce an
  itemized settlement statement: every statutory earning and deduction as
  its own auditable line, plus exact totals.

RULES COVERED:
  - Aviso prévio (notice period): indemnified, worked, or waived; length
    of 30 days plus 3 per full year of service, capped at 90.
  - Saldo de salário: pay for days worked in the final month.
  - Férias: overdue periods, anniversary-proportional accrual, and the
    constitutional one-third on both.
  - 13º salário: month-by-month proportional accrual within the final year.
  - FGTS: the 8% deposit over settlement earnings and the 40% penalty on
    the accumulated fund for unjustified dismissal.
  - Multas: Art. 477 and Art. 467 CLT fines.

PURITY:
  Calculate is referentially transparent: no clock, no I/O, no shared
  state. Identical input always yields identical output, so it is safe to
  call concurrently from any number of goroutines.

USAGE:
  in := rescisao.Input{
      Salary:          statement.NewMoney(3000),
      StartDate:       statement.NewDate(2020, time.January, 15),
      EndDate:         statement.NewDate(2024, time.January, 15),
      TerminationType: rescisao.SemJustaCausa,
      NoticeType:      rescisao.Indenizado,
  }
  result, err := rescisao.Calculate(in)

SEE ALSO:
  - calculator.go: The calculation pipeline
  - validate.go: Boundary validation
  - statement package: Money, Date, Item, Result
*/
package rescisao

import (
	"github.com/warp/rescisao-engine/statement"
)

// =============================================================================
// TERMINATION AND NOTICE MODALITIES
// =============================================================================

type TerminationType string

const (
	// SemJustaCausa is dismissal without cause: full benefits, FGTS 40%
	// penalty, notice owed.
	SemJustaCausa TerminationType = "sem_justa_causa"
	// PedidoDemissao is employee resignation: no FGTS access, notice owed
	// by the employee.
	PedidoDemissao TerminationType = "pedido_demissao"
	// JustaCausa is for-cause dismissal: only the salary balance survives.
	JustaCausa TerminationType = "justa_causa"
	// CulpaReciproca is termination by mutual fault recognized in court.
	CulpaReciproca TerminationType = "culpa_reciproca"
	// AcordoComum is termination by mutual agreement (CLT art. 484-A).
	AcordoComum TerminationType = "acordo_comum"
)

func (t TerminationType) Valid() bool {
	switch t {
	case SemJustaCausa, PedidoDemissao, JustaCausa, CulpaReciproca, AcordoComum:
		return true
	}
	return false
}

type NoticeType string

const (
	// Indenizado: the employer pays the notice period instead of it being worked.
	Indenizado NoticeType = "indenizado"
	// Trabalhado: the notice period was worked through NoticeStartDate..NoticeEndDate.
	Trabalhado NoticeType = "trabalhado"
	// DispensadoNaoCumprido: the employee waived the notice and did not work it.
	DispensadoNaoCumprido NoticeType = "dispensado_nao_cumprido"
)

func (n NoticeType) Valid() bool {
	switch n {
	case Indenizado, Trabalhado, DispensadoNaoCumprido:
		return true
	}
	return false
}

// =============================================================================
// CALCULATOR INPUT
// =============================================================================

// Input is the immutable fact record for one settlement calculation.
// Validation of required fields happens in Validate; Calculate assumes a
// structurally valid Input.
type Input struct {
	EmployeeName string // display only, not used in math

	Salary    statement.Money
	StartDate statement.Date
	EndDate   statement.Date

	TerminationType TerminationType
	NoticeType      NoticeType

	// Required only when NoticeType == Trabalhado.
	NoticeStartDate statement.Date
	NoticeEndDate   statement.Date

	// VacationOverdue counts fully accrued vacation periods not yet paid.
	VacationOverdue int
	// Dependents is informational; carried for the report header.
	Dependents int

	// AdditionalHours is the average monthly overtime VALUE in currency,
	// not a count of hours.
	AdditionalHours  statement.Money
	AdditionalDanger bool // hazard pay, 30% of base salary
	AdditionalNight  bool // night shift, 20% of base salary

	// FGTSBalance is the fund balance accumulated before this settlement,
	// used only as part of the 40% penalty base.
	FGTSBalance statement.Money

	ApplyFine467 bool
	ApplyFine477 bool
}
