package pharmacy

import "errors"

// Validation sentinels. All of them mark recoverable input conditions: the
// caller's prompt loop reports the message and asks again. None of them can
// corrupt loaded or persisted state.
var (
	ErrInvalidName               = errors.New("the customer is not valid, enter a valid name or ID")
	ErrInvalidProduct            = errors.New("the product is not valid, enter a valid product name or ID")
	ErrInvalidQuantity           = errors.New("the quantity is not valid, enter a positive integer")
	ErrInvalidPrescriptionAnswer = errors.New("the answer is not valid, enter y or n")
	ErrInvalidPrice              = errors.New("the price is not valid, enter a non-negative amount")
	ErrInvalidRate               = errors.New("the rate is not valid, enter a positive number")
)
