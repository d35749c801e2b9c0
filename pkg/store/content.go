package store

// Fixed page copy the storefront renders. Verification compares extracted
// text against these constants.

// Toggle button labels; exactly one of the two is shown at any time.
const (
	AddToCartLabel = "Add to cart"
	RemoveLabel    = "Remove"
)

// Page titles shown in the header.
const (
	ProductsTitle         = "Products"
	CartTitle             = "Your Cart"
	CheckoutStepOneTitle  = "Checkout: Your Information"
	CheckoutOverviewTitle = "Checkout: Overview"
	CheckoutCompleteTitle = "Checkout: Complete!"
)

// Checkout information field placeholders.
const (
	FirstNamePlaceholder  = "First Name"
	LastNamePlaceholder   = "Last Name"
	PostalCodePlaceholder = "Zip/Postal Code"
)

// Order completion copy.
const (
	CompleteHeader     = "Thank you for your order!"
	CompleteText       = "Your order has been dispatched, and will arrive just as fast as the pony can get there!"
	BackHomeButtonText = "Back Home"
)

// Login error banners.
const (
	LockedOutError        = "Epic sadface: Sorry, this user has been locked out."
	CredentialsError      = "Epic sadface: Username and password do not match any user in this service"
	UsernameRequiredError = "Epic sadface: Username is required"
	PasswordRequiredError = "Epic sadface: Password is required"
)

// Item detail copy for an unknown item ID.
const (
	ItemNotFoundName        = "Item not found"
	ItemNotFoundDescription = "We're sorry, but your call could not be completed as dialled. Please check your number, and try your call again. If you are in need of assistance, please dial 0 to be connected with an operator. This is a recording. 4 T 1."
)
