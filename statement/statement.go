/*
statement.go - Ordered statement of earnings and deductions

PURPOSE:
  An append-only builder for settlement line items plus the frozen Result
  returned to callers. Totals are computed as exact sums over the item list;
  there is no independent computation path for any aggregate.

ORDERING INVARIANT:
  Items are presented in the exact order they were appended. Contribution
  and fine bases are sums over the items appended so far, so appending out
  of order changes the numbers. The Builder exposes the running sums the
  calculation steps need (by type, by group, by kind filter).

ITEM KINDS:
  Kind is a structured tag recording what produced an item. Sums that must
  exclude certain items (e.g. the FGTS contribution base excludes the
  worked-notice salary, which carries its own FGTS line) filter on Kind
  rather than matching description text.

SEE ALSO:
  - money.go: Money type
  - errors.go: Validation errors
*/
package statement

// =============================================================================
// ITEM - One line of the statement
// =============================================================================

type ItemType string

const (
	TypeEarning   ItemType = "earning"
	TypeDeduction ItemType = "deduction"
)

type Group string

const (
	GroupRescisorias Group = "Rescisórias"
	GroupFerias      Group = "Férias"
	GroupDecimo      Group = "13º Salário"
	GroupFGTS        Group = "FGTS"
	GroupMultas      Group = "Multas"
	GroupOutros      Group = "Outros"
)

// Kind tags the rule that produced an item. Not serialized; used only for
// structured sum filters during calculation.
type Kind string

const (
	KindAdditional    Kind = "additional"     // hazard/night/overtime components
	KindNotice        Kind = "notice"         // indemnified notice, notice deduction
	KindWorkedNotice  Kind = "worked_notice"  // salary for worked notice days
	KindSalaryBalance Kind = "salary_balance" // final-month salary balance
	KindVacation      Kind = "vacation"       // overdue/proportional vacation + thirds
	KindThirteenth    Kind = "thirteenth"     // proportional 13th salary
	KindFGTS          Kind = "fgts"           // FGTS deposits and the 40% penalty
	KindFine          Kind = "fine"           // Art. 467 / Art. 477 fines
)

type Item struct {
	Description string
	Reference   string
	Value       Money
	// Basis is the amount the value was computed from, when meaningful for
	// audit display (zero Money means not applicable).
	Basis Money
	Type  ItemType
	Group Group
	Kind  Kind
}

// =============================================================================
// BUILDER - Append-only ordered item list with running sums
// =============================================================================

type Builder struct {
	items []Item
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds an item to the statement. The value is rounded to centavos
// here, exactly once; callers pass unrounded amounts.
func (b *Builder) Append(it Item) {
	it.Value = it.Value.Round2()
	if !it.Basis.IsZero() {
		it.Basis = it.Basis.Round2()
	}
	b.items = append(b.items, it)
}

// Items returns the in-progress item sequence. Callers must not mutate it.
func (b *Builder) Items() []Item { return b.items }

// SumByType sums the values of all items of the given type appended so far.
func (b *Builder) SumByType(t ItemType) Money {
	total := ZeroMoney()
	for _, it := range b.items {
		if it.Type == t {
			total = total.Add(it.Value)
		}
	}
	return total
}

// SumEarningsByGroup sums earning items of the given group appended so far.
func (b *Builder) SumEarningsByGroup(g Group) Money {
	total := ZeroMoney()
	for _, it := range b.items {
		if it.Type == TypeEarning && it.Group == g {
			total = total.Add(it.Value)
		}
	}
	return total
}

// SumEarningsWhere sums earning items appended so far that satisfy keep.
func (b *Builder) SumEarningsWhere(keep func(Item) bool) Money {
	total := ZeroMoney()
	for _, it := range b.items {
		if it.Type == TypeEarning && keep(it) {
			total = total.Add(it.Value)
		}
	}
	return total
}

// Build freezes the statement into a Result. The builder must not be used
// after Build.
func (b *Builder) Build(projectedEnd Date, noticeDays int) *Result {
	earnings := b.SumByType(TypeEarning)
	deductions := b.SumByType(TypeDeduction)
	return &Result{
		Items:            b.items,
		TotalEarnings:    earnings,
		TotalDeductions:  deductions,
		NetTotal:         earnings.Sub(deductions),
		ProjectedEndDate: projectedEnd,
		NoticeDays:       noticeDays,
	}
}

// =============================================================================
// RESULT - Frozen statement
// =============================================================================

type Result struct {
	Items            []Item
	TotalEarnings    Money
	TotalDeductions  Money
	NetTotal         Money
	ProjectedEndDate Date
	NoticeDays       int
}

// FindItem returns the first item with the given description, or nil.
func (r *Result) FindItem(description string) *Item {
	for i := range r.Items {
		if r.Items[i].Description == description {
			return &r.Items[i]
		}
	}
	return nil
}

// ItemsByGroup returns the items of a group, in statement order.
func (r *Result) ItemsByGroup(g Group) []Item {
	var out []Item
	for _, it := range r.Items {
		if it.Group == g {
			out = append(out, it)
		}
	}
	return out
}
