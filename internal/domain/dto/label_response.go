package dto

// LabelResponse is the JSON body returned by POST /classificar-imagem.
//
// swagger:model LabelResponse
type LabelResponse struct {
	Rotulo    string  `json:"rotulo" example:"sneaker"`
	Confianca float64 `json:"confianca" example:"0.93"`
}
