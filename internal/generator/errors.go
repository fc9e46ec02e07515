package generator

import "errors"

var (
	// ErrInvalidParams - параметры генерации несогласованы
	ErrInvalidParams = errors.New("invalid generator params")
	// ErrInvalidDistribution - вектор весов не является распределением
	ErrInvalidDistribution = errors.New("invalid categorical distribution")
	// ErrInfeasibleReconciliation - в пуле доноров меньше строк, чем требуется
	ErrInfeasibleReconciliation = errors.New("infeasible carrier reconciliation")
	// ErrDegenerateCost - суммарная стоимость не позволяет масштабирование
	ErrDegenerateCost = errors.New("degenerate cost aggregate")
)
