package domain

// Pechincha states. A pechincha is created pending, accepted by the seller,
// and paid when the buyer's order for it is placed. Cancelling deletes the
// record outright instead of marking it.
const (
	PechinchaPendente = "pendente"
	PechinchaAceito   = "aceito"
	PechinchaPago     = "pago"
)

// Pechincha is a negotiated-price offer on a product. Image, Price and
// Seller are snapshots copied from the product at offer time.
type Pechincha struct {
	ID        string  `json:"id" bson:"id"`
	ProductID string  `json:"productId" bson:"productId"`
	Discount  float64 `json:"discount" bson:"discount"`
	Image     string  `json:"image" bson:"image"`
	Price     float64 `json:"price" bson:"price"`
	Buyer     string  `json:"buyer" bson:"buyer"`
	Seller    string  `json:"seller" bson:"seller"`
	Pstatus   string  `json:"pstatus" bson:"pstatus"`
}

// pechinchaTransitions holds the legal pstatus moves. Same-state rewrites
// are allowed for non-terminal states so the buyer can edit a pending offer.
var pechinchaTransitions = map[string][]string{
	PechinchaPendente: {PechinchaPendente, PechinchaAceito},
	PechinchaAceito:   {PechinchaAceito, PechinchaPago},
	PechinchaPago:     {},
}

// CanTransition reports whether a pechincha may move from one pstatus to
// another.
func CanTransition(from, to string) bool {
	for _, next := range pechinchaTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
