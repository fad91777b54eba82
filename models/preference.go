package models

type PreferenceProfile struct {
	Cities        []string `json:"cities"`
	PropertyTypes []string `json:"propertyTypes"`
	BudgetCeiling *int64   `json:"budgetCeiling,omitempty"`
	Project       *string  `json:"project,omitempty"`
}
