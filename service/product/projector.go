package product

// Response is the externally visible product shape. Fields are never
// omitted: an unpriced product still carries current_price with empty strings.
type Response struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	CurrentPrice CurrentPrice `json:"current_price"`
}

type CurrentPrice struct {
	Value        string `json:"value"`
	CurrencyCode string `json:"currency_code"`
}

// Project maps p onto the response. Attributes, condition and SKU are not exposed.
func Project(p Product) Response {
	return Response{
		ID:   p.Information.ProductID,
		Name: p.Information.Title,
		CurrentPrice: CurrentPrice{
			Value:        p.Price.Value,
			CurrencyCode: p.Price.CurrencyCode,
		},
	}
}
