package booking

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

var (
	ErrUnauthenticated   = httperr.ErrBusiness("unauthenticated")
	ErrInvalidDate       = httperr.ErrBusiness("invalid_date")
	ErrInvalidDateOrTime = httperr.ErrBusiness("invalid_date_or_time")
)

// ErrInvalidSelection means no service or no date-time was chosen.
var ErrInvalidSelection = httperr.ErrBusiness("invalid_selection")
