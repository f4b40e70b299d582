package domain

// Order is a purchase record created once a pechincha is accepted and the
// buyer confirms payment. Field names follow the original wire format,
// including the capitalized NomeVendedor.
type Order struct {
	ID             string  `json:"id" bson:"id"`
	Endereco       string  `json:"endereco" bson:"endereco"`
	OpcaoEnvio     string  `json:"opcaoEnvio" bson:"opcaoEnvio"`
	FormaPagamento string  `json:"formaPagamento" bson:"formaPagamento"`
	IDProduto      string  `json:"idProduto" bson:"idProduto"`
	Name           string  `json:"name" bson:"name"`
	Price          float64 `json:"price" bson:"price"`
	Image          string  `json:"image" bson:"image"`
	NomeVendedor   string  `json:"NomeVendedor" bson:"NomeVendedor"`
	Comprador      string  `json:"comprador" bson:"comprador"`
	Status         string  `json:"status" bson:"status"`
}
