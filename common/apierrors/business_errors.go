package apierrors

// Business error codes
const (
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"    // Product id not in the catalog
	ErrCodeInsufficientStock  = "INSUFFICIENT_STOCK"   // Requested quantity exceeds inventory
	ErrCodeInvalidProductData = "INVALID_PRODUCT_DATA" // Catalog record breaks a product rule
	ErrCodeDuplicateProductID = "DUPLICATE_PRODUCT_ID" // Two catalog records share an id
	ErrCodeCartLimitExceeded  = "CART_LIMIT_EXCEEDED"  // Cart counter would pass its limit
)
