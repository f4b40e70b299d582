package domain

// Review is a buyer's rating of a completed order.
type Review struct {
	ID      string `json:"id" bson:"id"`
	OrderID string `json:"orderId" bson:"orderId"`
	Buyer   string `json:"buyer" bson:"buyer"`
	Seller  string `json:"seller" bson:"seller"`
	Rate    int    `json:"rate" bson:"rate"`
	Message string `json:"message" bson:"message"`
}
