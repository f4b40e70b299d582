package client

// Wire types mirror the server's JSON documents.

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Seller      string  `json:"seller"`
	Image       string  `json:"image"`
}

type Pechincha struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Discount  float64 `json:"discount"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Buyer     string  `json:"buyer"`
	Seller    string  `json:"seller"`
	Pstatus   string  `json:"pstatus"`
}

type Pedido struct {
	ID             string  `json:"id"`
	Endereco       string  `json:"endereco"`
	OpcaoEnvio     string  `json:"opcaoEnvio"`
	FormaPagamento string  `json:"formaPagamento"`
	IDProduto      string  `json:"idProduto"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"`
	NomeVendedor   string  `json:"NomeVendedor"`
	Comprador      string  `json:"comprador"`
	Status         string  `json:"status"`
}

type Review struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
	Buyer   string `json:"buyer"`
	Seller  string `json:"seller"`
	Rate    int    `json:"rate"`
	Message string `json:"message"`
}

// Form types are what the UI submits; they carry the client-side schema
// the backend revalidates.

type ProductForm struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Seller      string  `json:"seller" validate:"required"`
	Image       string  `json:"image"`
}

type PechinchaForm struct {
	IDProduct string  `json:"idProduct" validate:"required"`
	Discount  float64 `json:"discount" validate:"required,gt=0"`
	Buyer     string  `json:"buyer" validate:"required"`
}

type PechinchaUpdateForm struct {
	ProductID string  `json:"productId" validate:"required"`
	Discount  float64 `json:"discount" validate:"required,gt=0"`
	Price     float64 `json:"price"`
	Buyer     string  `json:"buyer" validate:"required"`
	Seller    string  `json:"seller"`
	Pstatus   string  `json:"pstatus" validate:"required,oneof=pendente aceito pago"`
}

type PedidoForm struct {
	Endereco       string  `json:"endereco" validate:"required"`
	OpcaoEnvio     string  `json:"opcaoEnvio"`
	FormaPagamento string  `json:"formaPagamento"`
	IDProduto      string  `json:"idProduto"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Image          string  `json:"image"`
	NomeVendedor   string  `json:"NomeVendedor"`
	Comprador      string  `json:"comprador" validate:"required"`
	Status         string  `json:"status"`
	IDPechincha    string  `json:"idPechincha,omitempty"`
}

type ReviewForm struct {
	OrderID string `json:"orderId" validate:"required"`
	Buyer   string `json:"buyer" validate:"required"`
	Seller  string `json:"seller"`
	Rate    int    `json:"rate" validate:"gte=0,lte=5"`
	Message string `json:"message"`
}
