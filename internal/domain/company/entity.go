package company

// Company record as stored in the "companies" collection.
type Company struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	SIRET   string `json:"siret,omitempty"`
}
