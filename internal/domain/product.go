package domain

// Product is a marketplace listing. Seller is the username of the account
// that listed it; Image is a public URL under /images.
type Product struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Description string  `json:"description" bson:"description"`
	Category    string  `json:"category" bson:"category"`
	Seller      string  `json:"seller" bson:"seller"`
	Image       string  `json:"image" bson:"image"`
}
