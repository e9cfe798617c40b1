package dto

// SearchRequest is the JSON body accepted by POST /buscar-produtos.
//
// Categoria is the only required field; the remaining fields refine the
// query when present. Field names match the public API contract.
type SearchRequest struct {
	Categoria string `json:"categoria" binding:"required" example:"tênis"`
	Genero    string `json:"genero,omitempty" example:"masculino"`
	Cor       string `json:"cor,omitempty" example:"preto"`
	Estilo    string `json:"estilo,omitempty" example:"casual"`
}
