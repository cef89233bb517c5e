package application

import "errors"

// ErrQuotaExceeded signals a basic-role owner already reached the monthly
// creation cap at the moment a new movie was about to be persisted.
var ErrQuotaExceeded = errors.New("limit of added movies on the basic account has been exceeded")
