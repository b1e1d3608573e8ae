package constants

// Roles
const (
	ROLE_ADMIN = "ADMIN"
)

// Order statuses
const (
	ORDER_STATUS_PENDING   = "pending"
	ORDER_STATUS_CONFIRMED = "confirmed"
	ORDER_STATUS_SHIPPED   = "shipped"
	ORDER_STATUS_DELIVERED = "delivered"
	ORDER_STATUS_CANCELLED = "cancelled"
)

var OrderStatuses = []string{
	ORDER_STATUS_PENDING,
	ORDER_STATUS_CONFIRMED,
	ORDER_STATUS_SHIPPED,
	ORDER_STATUS_DELIVERED,
	ORDER_STATUS_CANCELLED,
}

// Payment statuses
const (
	PAYMENT_STATUS_UNPAID = "unpaid"
	PAYMENT_STATUS_PAID   = "paid"
)

var PaymentStatuses = []string{
	PAYMENT_STATUS_UNPAID,
	PAYMENT_STATUS_PAID,
}

// Payment methods
const (
	PAYMENT_METHOD_COD   = "cod"
	PAYMENT_METHOD_BKASH = "bkash"
)

var PaymentMethods = []string{
	PAYMENT_METHOD_COD,
	PAYMENT_METHOD_BKASH,
}

// Customer types
const (
	CUSTOMER_TYPE_NEW    = "N"
	CUSTOMER_TYPE_REPEAT = "R"
)

// STANDARD_DELIVERY_FEE is the default domestic delivery charge (BDT)
const STANDARD_DELIVERY_FEE = 60

// Messages
const (
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Username does not exist"
	INVALID_PASSWORD         = "Password does not match"
	ACCOUNT_NOT_ACTIVE       = "Account is disabled"
	NOT_ADMIN                = "Admin only"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_INPUT              = "Invalid input"
	DATA_INPUT_IS_NOT_NUMBER = "Input is not a number"
	STORE_CLOSED             = "Orders are temporarily closed"
	ORDER_NOT_FOUND          = "Order not found"
	INVALID_ORDER_STATUS     = "Invalid order status"
	INVALID_PAYMENT_STATUS   = "Invalid payment status"
	INVALID_PAYMENT_METHOD   = "Invalid payment method"
	INVALID_PHONE            = "Phone must be 11 digits starting with 01"
	INVALID_PACK             = "Selected pack is not available"
	DELETE_NOT_CONFIRMED     = "Deletion must be confirmed"
)
