package domain

// Customer é um cliente validado e pronto para gravação. A chave de conflito
// é o e-mail, sempre em minúsculas.
type Customer struct {
	Email            string
	RazaoSocial      *string
	Fantasia         *string
	InscricaoFederal *string
	Telefone         *string
	Celular          *string
	Pais             *string
	UF               *string
	CEP              *string
	Bairro           *string
	Logradouro       *string
	Numero           *string
	Complemento      *string
	Cidade           *string
}
