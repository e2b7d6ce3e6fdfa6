package catalog

type Barbershop struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Phones      []string  `json:"phones"`
	Services    []Service `json:"services,omitempty"`
}

type Service struct {
	ID           string  `json:"id"`
	BarbershopID string  `json:"barbershop_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
}

type QuickSearchOption struct {
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
}

func QuickSearchOptions() []QuickSearchOption {
	return []QuickSearchOption{
		{ImageURL: "/hair.png", Title: "Cabelo"},
		{ImageURL: "/moustache.png", Title: "Barba"},
		{ImageURL: "/razor.png", Title: "Acabamento"},
		{ImageURL: "/eyebrow.png", Title: "Sobrancelha"},
		{ImageURL: "/towel.png", Title: "Massagem"},
		{ImageURL: "/hydration.png", Title: "Hidratação"},
	}
}
