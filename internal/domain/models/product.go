package models

// Product is the normalized shape every provider adapter maps its raw
// results into. All fields are best-effort: a provider that does not carry
// a field leaves it empty rather than failing the item.
//
// Price is kept as a string on purpose: providers return a mix of numbers,
// formatted strings and the literal "N/A", and re-parsing them would lose
// the provider's own representation.
//
// JSON keys follow the public API contract (Portuguese).
//
// swagger:model Product
type Product struct {
	Title    string `json:"titulo" example:"Tênis Casual Masculino"`
	Price    string `json:"preco" example:"199.90"`
	Currency string `json:"moeda,omitempty" example:"BRL"`
	URL      string `json:"url,omitempty" example:"https://example.com/p/123"`
	Image    string `json:"imagem,omitempty" example:"https://example.com/img/123.jpg"`
	Snippet  string `json:"snippet,omitempty" example:"Tênis casual em couro..."`
}
