package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда мастер ещё не сохранял расписание
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrIncompleteSchedule возвращается, когда в БД хранится не семь дней
	ErrIncompleteSchedule = errors.New("schedule.repository: stored schedule is incomplete")

	// ErrTransaction возвращается при попытке заменить расписание вне транзакции
	ErrTransaction = errors.New("schedule.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
