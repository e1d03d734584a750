/*
scenarios.go - Preset demo calculations

PURPOSE:
  Ships a handful of representative settlement scenarios so the frontend
  (and anyone poking the API with curl) can see the engine's behavior
  without inventing contract facts. Scenarios are computed on demand and
  never stored.

SCENARIOS:
  dismissal-4-years:      Dismissal without cause, 4 years, indemnified notice
  worked-notice:          Dismissal without cause with a worked notice period
  resignation-waived:     Resignation with waived notice (salary discount)
  just-cause:             For-cause dismissal (salary balance only)
  mutual-agreement:       Termination by agreement, half indemnified notice
  night-shift-hazard:     Variable pay: night shift + hazard + overtime

SEE ALSO:
  - handlers.go: Route wiring
  - factory/input.go: CalculationJSON shape
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/rescisao-engine/factory"
	"github.com/warp/rescisao-engine/rescisao"
)

// Scenario pairs a preset input with its catalog entry.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Input       factory.CalculationJSON
}

var scenarios = []Scenario{
	{
		ID:          "dismissal-4-years",
		Name:        "Dispensa sem justa causa, 4 anos",
		Description: "Aviso indenizado de 42 dias, FGTS com multa de 40%.",
		Input: factory.CalculationJSON{
			EmployeeName:    "Maria Souza",
			Salary:          3000,
			StartDate:       "2020-01-15",
			EndDate:         "2024-01-15",
			TerminationType: string(rescisao.SemJustaCausa),
			NoticeType:      string(rescisao.Indenizado),
			FGTSBalance:     15000,
		},
	},
	{
		ID:          "worked-notice",
		Name:        "Dispensa com aviso trabalhado",
		Description: "Aviso cumprido em serviço, com FGTS próprio de 8%.",
		Input: factory.CalculationJSON{
			EmployeeName:    "João Lima",
			Salary:          2500,
			StartDate:       "2021-03-01",
			EndDate:         "2024-02-29",
			TerminationType: string(rescisao.SemJustaCausa),
			NoticeType:      string(rescisao.Trabalhado),
			NoticeStartDate: "2024-03-01",
			NoticeEndDate:   "2024-04-02",
			FGTSBalance:     6000,
		},
	},
	{
		ID:          "resignation-waived",
		Name:        "Pedido de demissão, aviso não cumprido",
		Description: "Desconto de um salário pelo aviso dispensado.",
		Input: factory.CalculationJSON{
			EmployeeName:    "Carlos Pereira",
			Salary:          2200,
			StartDate:       "2022-06-01",
			EndDate:         "2024-05-20",
			TerminationType: string(rescisao.PedidoDemissao),
			NoticeType:      string(rescisao.DispensadoNaoCumprido),
		},
	},
	{
		ID:          "just-cause",
		Name:        "Dispensa por justa causa",
		Description: "Apenas saldo de salário.",
		Input: factory.CalculationJSON{
			EmployeeName:    "Ana Castro",
			Salary:          1800,
			StartDate:       "2019-09-10",
			EndDate:         "2024-04-18",
			TerminationType: string(rescisao.JustaCausa),
			NoticeType:      string(rescisao.Indenizado),
		},
	},
	{
		ID:          "mutual-agreement",
		Name:        "Rescisão por acordo (art. 484-A)",
		Description: "Metade do aviso indenizado.",
		Input: factory.CalculationJSON{
			EmployeeName:    "Paulo Mendes",
			Salary:          4000,
			StartDate:       "2018-02-01",
			EndDate:         "2024-02-01",
			TerminationType: string(rescisao.AcordoComum),
			NoticeType:      string(rescisao.Indenizado),
			FGTSBalance:     22000,
		},
	},
	{
		ID:          "night-shift-hazard",
		Name:        "Adicionais: noturno, periculosidade, horas extras",
		Description: "Base de remuneração composta com reflexos de DSR.",
		Input: factory.CalculationJSON{
			EmployeeName:     "Rita Amaral",
			Salary:           3200,
			StartDate:        "2020-08-01",
			EndDate:          "2024-06-10",
			TerminationType:  string(rescisao.SemJustaCausa),
			NoticeType:       string(rescisao.Indenizado),
			AdditionalDanger: true,
			AdditionalNight:  true,
			AdditionalHours:  400,
			VacationOverdue:  1,
			FGTSBalance:      9500,
		},
	},
}

// findScenario returns the scenario with the given ID, or nil.
func findScenario(id string) *Scenario {
	for i := range scenarios {
		if scenarios[i].ID == id {
			return &scenarios[i]
		}
	}
	return nil
}

// ListScenarios returns the scenario catalog.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = ScenarioDTO{ID: s.ID, Name: s.Name, Description: s.Description}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RunScenario computes a preset scenario without storing it.
// POST /api/scenarios/{id}/run
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	s := findScenario(chi.URLParam(r, "id"))
	if s == nil {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}

	input, err := factory.ParseInput(s.Input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Scenario input is invalid", err)
		return
	}
	result, err := rescisao.Calculate(input)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Scenario calculation failed", err)
		return
	}

	writeJSON(w, http.StatusOK, CalculationDTO{
		EmployeeName: input.EmployeeName,
		Result:       toResultDTO(result),
	})
}
