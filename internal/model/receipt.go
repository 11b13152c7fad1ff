package model

// Receipt is the outcome of a completed purchase. It is returned to the
// caller but never persisted; only the resulting balance is stored.
type Receipt struct {
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	Price        int    `json:"price"`
	PointsUsed   int    `json:"pointsUsed"`
	Discount     int    `json:"discount"`
	FinalPrice   int    `json:"finalPrice"`
	PointsEarned int    `json:"pointsEarned"`
	NewBalance   int    `json:"newBalance"`
}
