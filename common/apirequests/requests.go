package apirequests

// AddToCartRequest is the body of POST /cart/items. Quantity defaults to 1
// when omitted.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,lte=99"`
}

// Normalize applies the default quantity.
func (r *AddToCartRequest) Normalize() {
	if r.Quantity == 0 {
		r.Quantity = 1
	}
}
