package atleta

// AtletaCreate é o payload de POST /atletas.
type AtletaCreate struct {
	Nome              string  `json:"nome" validate:"required,max=255"`
	CPF               string  `json:"cpf" validate:"required,len=11"`
	CentroTreinamento *string `json:"centro_treinamento" validate:"omitempty,max=255"`
	Categoria         *string `json:"categoria" validate:"omitempty,max=255"`
}

type AtletaResponse struct {
	ID                uint    `json:"id"`
	Nome              string  `json:"nome"`
	CPF               string  `json:"cpf"`
	CentroTreinamento *string `json:"centro_treinamento"`
	Categoria         *string `json:"categoria"`
}

func (c AtletaCreate) toModel() Atleta {
	return Atleta{
		Nome:              c.Nome,
		CPF:               c.CPF,
		CentroTreinamento: c.CentroTreinamento,
		Categoria:         c.Categoria,
	}
}

func toResponse(a Atleta) AtletaResponse {
	return AtletaResponse{
		ID:                a.ID,
		Nome:              a.Nome,
		CPF:               a.CPF,
		CentroTreinamento: a.CentroTreinamento,
		Categoria:         a.Categoria,
	}
}

func toResponses(list []Atleta) []AtletaResponse {
	out := make([]AtletaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toResponse(a))
	}
	return out
}
