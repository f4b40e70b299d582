package domain

// Collection names match the tables provisioned for the original Cargoshop
// deployment so an existing store can be pointed at directly.
const (
	TableUsers      = "CargoshopUsers"
	TableProducts   = "CargoshopProducts"
	TablePechinchas = "CargoshopPechinchas"
	TableOrders     = "CargoshopOrders"
	TableReviews    = "CargoshopReviews"
)

// Tables lists every collection, in scan/stat order.
var Tables = []string{
	TableUsers,
	TableProducts,
	TablePechinchas,
	TableOrders,
	TableReviews,
}

// TableKeys maps each collection to its key attribute. Users are keyed by
// username, everything else by a generated id.
var TableKeys = map[string]string{
	TableUsers:      "username",
	TableProducts:   "id",
	TablePechinchas: "id",
	TableOrders:     "id",
	TableReviews:    "id",
}

// KeyAttr returns the key attribute for a collection, defaulting to "id".
func KeyAttr(table string) string {
	if k, ok := TableKeys[table]; ok {
		return k
	}
	return "id"
}
