package verification

import "errors"

var (
	// ErrProfileNotFound возвращается, когда заявка на верификацию не найдена
	ErrProfileNotFound = errors.New("verification.repository: profile not found")

	// ErrProfileExists возвращается при повторной подаче заявки
	ErrProfileExists = errors.New("verification.repository: profile already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("verification.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("verification.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("verification.repository: failed to scan row")
)
