package domain

// DefaultPlanName plano usado como padrão em importações e consultas de preço.
const DefaultPlanName = "Básico"

// DefaultPlanPrice preço do plano padrão, usado como último recurso quando
// nem o catálogo conhece o nome consultado.
const DefaultPlanPrice = 30

// Plan define um plano do catálogo: nome, preço mensal e descrição.
type Plan struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// DefaultPlans retorna o catálogo inicial com os três planos padrão.
func DefaultPlans() []Plan {
	return []Plan{
		{Name: "Básico", Price: 30, Description: "Plano básico com canais essenciais"},
		{Name: "Premium", Price: 50, Description: "Plano premium com mais canais e qualidade HD"},
		{Name: "Ultimate", Price: 70, Description: "Plano completo com todos os canais e 4K"},
	}
}

// CatalogPrice procura o preço de um plano no catálogo. Nomes desconhecidos
// caem no preço do Básico; se nem o Básico existir, vale o preço padrão (30).
func CatalogPrice(plans []Plan, name string) float64 {
	for _, p := range plans {
		if p.Name == name {
			return p.Price
		}
	}
	for _, p := range plans {
		if p.Name == DefaultPlanName {
			return p.Price
		}
	}
	return DefaultPlanPrice
}
