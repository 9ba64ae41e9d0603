package verification

import (
	"github.com/m04kA/SMC-BeautyBooking/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
