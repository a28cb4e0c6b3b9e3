package delete_equipment

import "context"

type EquipmentService interface {
	Deactivate(ctx context.Context, id int64, orgID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
